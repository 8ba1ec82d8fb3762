package tzprocessor

import "strings"

// GenerateStartUntilTimes is Step 4 of transition generation: walk
// transitions (the active pool for one InitForYear call, across every
// matching era) in order, and for each one compute:
//
//  1. the previous transition's UntilDt, which is simply this
//     transition's own (not-yet-shifted) TransitionTime;
//  2. this transition's StartDt, by re-expressing TransitionTime — which
//     is stamped using the PREVIOUS transition's UTC offset — in terms of
//     its own offset and delta;
//  3. this transition's StartEpochSeconds, computed from the normalised
//     StartDt rather than directly from TransitionTime, since
//     TransitionTime can denote a nominally illegal wall time (e.g.
//     24:00) before normalisation.
//
// The very last transition's UntilDt instead comes from its matching
// era's own Until, expanded into 'w' using the last transition's offset.
func GenerateStartUntilTimes(e Epoch, transitions []*Transition) {
	if len(transitions) == 0 {
		return
	}

	prev := transitions[0]
	isAfterFirst := false
	for _, t := range transitions {
		tt := t.TransitionTime
		if isAfterFirst {
			prev.UntilDt = tt
		}

		seconds := tt.Seconds + (-prev.OffsetSeconds - prev.DeltaSeconds + t.OffsetSeconds + t.DeltaSeconds)
		t.StartDt = NormalizeDateTuple(DateTuple{Year: tt.Year, Month: tt.Month, Day: tt.Day, Seconds: seconds, Suffix: tt.Suffix})

		st := t.StartDt
		offsetSeconds := st.Seconds - t.totalOffsetSeconds()
		days := e.DaysFromDate(st.Year, st.Month, st.Day)
		t.StartEpochSeconds = days*86400 + offsetSeconds

		prev = t
		isAfterFirst = true
	}

	w, _, _ := ExpandDateTuple(prev.Match.Until, prev.OffsetSeconds, prev.DeltaSeconds)
	prev.UntilDt = w
}

// createAbbreviation synthesises a zone abbreviation from a ZoneEra's
// FORMAT column, a transition's DST delta, and (if the era has a named
// policy) the matched rule's LETTER substitution:
//
//   - FORMAT containing '%' (the compiler condenses the source TZDB's
//     "%s" down to a single '%'): substitute letter for every '%' (e.g.
//     "P%T" + "D" -> "PDT"). A simple, ruleless era carries letter as a
//     pointer to the empty string, which substitutes '%' away entirely
//     rather than leaving it in the output; letter is nil only when a
//     caller genuinely has none to give, in which case FORMAT is copied
//     verbatim instead of substituting. The substituted letter can
//     itself be multiple characters ("CAT", "+02", "DD").
//   - FORMAT containing '/': the head before '/' when deltaSeconds==0
//     (standard half, e.g. "GMT/BST" -> "GMT"), otherwise the tail after
//     it (e.g. -> "BST").
//   - Otherwise: FORMAT verbatim (deltaSeconds and letter unused).
//
// The result is truncated to abbrevSize-1 bytes, mirroring the on-disk
// format's fixed-size, NUL-terminated buffer even though Go's string here
// carries no terminator.
func createAbbreviation(format string, deltaSeconds int32, letter *string) string {
	return createAbbreviationWithCapacity(format, deltaSeconds, letter, abbrevSize-1)
}

// createAbbreviationWithCapacity is createAbbreviation generalised over the
// truncation length, so it can be exercised against capacities other than
// the package's own fixed abbrevSize (the reference scenarios describe the
// same truncation rule at a destination capacity of 6).
func createAbbreviationWithCapacity(format string, deltaSeconds int32, letter *string, maxLen int) string {
	if strings.Contains(format, "%") {
		if letter == nil {
			return truncate(format, maxLen)
		}
		return truncate(strings.ReplaceAll(format, "%", *letter), maxLen)
	}

	if idx := strings.IndexByte(format, '/'); idx >= 0 {
		if deltaSeconds == 0 {
			return truncate(format[:idx], maxLen)
		}
		return truncate(format[idx+1:], maxLen)
	}

	return truncate(format, maxLen)
}

func truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen]
	}
	return s
}

// CalcAbbreviations is Step 5: fill in Abbrev for every transition in the
// active pool, using each transition's own matching era's FORMAT.
func CalcAbbreviations(transitions []*Transition) {
	for _, t := range transitions {
		t.Abbrev = createAbbreviation(t.Match.Era.Format, t.DeltaSeconds, t.Letter)
	}
}
