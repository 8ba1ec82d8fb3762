package tzprocessor

// monthDay is the (month, day) calcStartDayOfMonth resolves a rule's
// ON-column anchor to for one particular year.
type monthDay struct {
	Month uint8
	Day   uint8
}

// calcStartDayOfMonth resolves a ZoneRule's ON-column anchor — encoded as
// §4.8 describes it: onDayOfWeek 0 means "exactly onDayOfMonth", a
// positive onDayOfMonth means "on or after", 0 means "the last such
// weekday of the month", and negative means "on or before |onDayOfMonth|"
// — into a concrete (month, day) for the given year. A day that would
// fall in the adjacent month rolls forward or backward into it: TZDB
// rules that anchor within a handful of days of a month boundary can spill
// over (e.g. "Sun>=29" in a 30-day month can land on one of the first
// days of the following month, and "Sun<=1" on one of the last days of
// the previous month).
func calcStartDayOfMonth(year int16, month, onDayOfWeek uint8, onDayOfMonth int8) monthDay {
	if onDayOfWeek == 0 {
		return monthDay{Month: month, Day: uint8(onDayOfMonth)}
	}

	if onDayOfMonth >= 0 {
		daysInMonth := DaysInMonth(year, month)
		if onDayOfMonth == 0 {
			onDayOfMonth = int8(daysInMonth) - 6
		}
		dow := uint8(DayOfWeek(year, month, uint8(onDayOfMonth)))
		dayOfWeekShift := (onDayOfWeek - dow + 7) % 7
		day := uint8(onDayOfMonth) + dayOfWeekShift
		if day > daysInMonth {
			// Does not carry into the following year; TZDB rules never
			// anchor close enough to December's end to need it.
			day -= daysInMonth
			month++
		}
		return monthDay{Month: month, Day: day}
	}

	absDayOfMonth := -onDayOfMonth
	dow := uint8(DayOfWeek(year, month, uint8(absDayOfMonth)))
	dayOfWeekShift := (int8(dow) - int8(onDayOfWeek) + 7) % 7
	day := absDayOfMonth - dayOfWeekShift
	if day < 1 {
		// Does not carry into the previous year; same reasoning as above.
		month--
		daysInPrevMonth := DaysInMonth(year, month)
		day += int8(daysInPrevMonth)
	}
	return monthDay{Month: month, Day: uint8(day)}
}

// getTransitionTime computes the wall-clock instant at which rule takes
// effect in year, expressed as a DateTuple tagged with rule's AT suffix.
func getTransitionTime(year int16, rule *ZoneRule) DateTuple {
	md := calcStartDayOfMonth(year, rule.InMonth, rule.OnDayOfWeek, rule.OnDayOfMonth)
	return DateTuple{Year: year, Month: md.Month, Day: md.Day, Seconds: rule.At.Seconds(), Suffix: rule.At.Suffix()}
}

// createTransitionForYear builds the Transition for rule in year within
// match. rule is nil for a simple (ruleless) matching era, in which case
// the transition is anchored at match's own start instead of a rule's AT
// time and carries no DST delta beyond the era's own fixed one.
func createTransitionForYear(year int16, rule *ZoneRule, match *MatchingEra, ctx *ZoneContext) *Transition {
	t := &Transition{
		Match:         match,
		Rule:          rule,
		OffsetSeconds: match.Era.stdOffsetSeconds(),
	}
	if rule != nil {
		t.TransitionTime = getTransitionTime(year, rule)
		t.DeltaSeconds = rule.dstOffsetSeconds()
		letter := ctx.letterAt(rule.LetterIndex)
		t.Letter = &letter
	} else {
		t.TransitionTime = match.Start
		t.DeltaSeconds = match.Era.dstOffsetSeconds()
		emptyLetter := ""
		t.Letter = &emptyLetter
	}
	return t
}

// createTransitionsFromSimpleMatch handles a matching era whose ZoneEra
// has no named policy (RULES column "-" or a fixed numeric save): exactly
// one transition, anchored at the era's own start, goes straight into the
// active pool with no candidate-selection pass needed.
func createTransitionsFromSimpleMatch(ts *TransitionStorage, match *MatchingEra) {
	freeAgent := ts.GetFreeAgent()
	*freeAgent = *createTransitionForYear(0, nil, match, ts.zoneInfo.Context)
	freeAgent.MatchStatus = matchStatusExactMatch
	match.LastOffsetSeconds = freeAgent.OffsetSeconds
	match.LastDeltaSeconds = freeAgent.DeltaSeconds
	ts.AddFreeAgentToActivePool()
}

// calcInteriorYears appends to years every year in [fromYear, toYear]
// that also falls in [startYear, endYear], stopping at maxInteriorYears
// entries (never exceeded by a real 14-month matching-era window).
func calcInteriorYears(fromYear, toYear, startYear, endYear int16) []int16 {
	years := make([]int16, 0, maxInteriorYears)
	for year := startYear; year <= endYear; year++ {
		if fromYear <= year && year <= toYear {
			years = append(years, year)
			if len(years) >= maxInteriorYears {
				break
			}
		}
	}
	return years
}

// getMostRecentPriorYear returns the most recent year before startYear at
// which a rule valid over [fromYear, toYear] could still be in effect, or
// invalidYear if the rule's range starts at or after startYear (so it has
// no "prior" contribution — its first interior year already covers it).
func getMostRecentPriorYear(fromYear, toYear, startYear int16) int16 {
	if fromYear < startYear {
		if toYear < startYear {
			return toYear
		}
		return startYear - 1
	}
	return invalidYear
}

// findCandidateTransitions runs Pass 1 of named-era transition
// generation: for every rule in match's policy, generate a transition for
// each interior year plus (if applicable) one more for the most recent
// year before the window that the rule could still apply to, fuzzy-filter
// each against match's window, and route it to the candidate pool, the
// reserved "most recent prior" slot, or discard it as far-future.
func findCandidateTransitions(ts *TransitionStorage, match *MatchingEra) {
	policy := match.Era.Policy
	startYear := match.Start.Year
	endYear := match.Until.Year

	prior := ts.ReservePrior()
	prior.IsValidPrior = false
	ctx := ts.zoneInfo.Context

	for i := range policy.Rules {
		rule := &policy.Rules[i]

		for _, year := range calcInteriorYears(rule.FromYear, rule.ToYear, startYear, endYear) {
			t := ts.GetFreeAgent()
			*t = *createTransitionForYear(year, rule, match, ctx)
			switch CompareTransitionToMatchFuzzy(t, match) {
			case matchStatusPrior:
				ts.SetFreeAgentAsPriorIfValid()
			case matchStatusWithinMatch:
				ts.AddFreeAgentToCandidatePool()
			default: // far future: let the free agent be reused
			}
		}

		priorYear := getMostRecentPriorYear(rule.FromYear, rule.ToYear, startYear)
		if priorYear != invalidYear {
			t := ts.GetFreeAgent()
			*t = *createTransitionForYear(priorYear, rule, match, ctx)
			ts.SetFreeAgentAsPriorIfValid()
		}
	}

	prior = ts.transitions[ts.indexPrior]
	if prior.IsValidPrior {
		ts.AddPriorToCandidatePool()
	}
}

// processTransitionMatchStatus computes transition's MatchStatus against
// its own match, and demotes whichever of {transition, *prior} is no
// longer the best candidate for "the transition most recently before
// match's start" to far-past — a candidate that is neither the active
// interior match nor that single best prior is irrelevant once selection
// finishes.
func processTransitionMatchStatus(transition *Transition, prior **Transition) {
	status := CompareTransitionToMatch(transition, transition.Match)
	transition.MatchStatus = status

	switch status {
	case matchStatusExactMatch:
		if *prior != nil {
			(*prior).MatchStatus = matchStatusFarPast
		}
		*prior = transition
	case matchStatusPrior:
		if *prior != nil {
			if CompareDateTuple((*prior).TransitionTimeU, transition.TransitionTimeU) <= 0 {
				(*prior).MatchStatus = matchStatusFarPast
				*prior = transition
			} else {
				transition.MatchStatus = matchStatusFarPast
			}
		} else {
			*prior = transition
		}
	}
}

// selectActiveTransitions runs Pass 3: classify every candidate's
// MatchStatus against match, keeping only the single best "prior"
// candidate and demoting the rest of the prior-status candidates to
// far-past. The surviving prior (if any) is then shifted to start exactly
// at match's own start, since a "prior" transition by definition began
// before the match window and its first truly-in-window instant is the
// window's own start.
func selectActiveTransitions(candidates []*Transition) {
	var prior *Transition
	for _, t := range candidates {
		processTransitionMatchStatus(t, &prior)
	}
	if prior != nil {
		prior.TransitionTime = prior.Match.Start
	}
}

// createTransitionsFromNamedMatch handles a matching era whose ZoneEra
// has a named policy, running the full three-pass pipeline: find
// candidates across whole years (Pass 1), normalise every candidate's
// transition time to 'w' (Pass 2), then classify and promote the active
// subset into the active pool (Pass 3).
func createTransitionsFromNamedMatch(ts *TransitionStorage, match *MatchingEra) {
	ts.ResetCandidatePool()

	findCandidateTransitions(ts, match)

	FixTransitionTimes(ts.CandidatePool())

	selectActiveTransitions(ts.CandidatePool())
	lastTransition := ts.AddActiveCandidatesToActivePool()
	match.LastOffsetSeconds = lastTransition.OffsetSeconds
	match.LastDeltaSeconds = lastTransition.DeltaSeconds
}

// createTransitionsForMatch dispatches to the simple or named pipeline
// depending on whether match's era carries a RULES policy.
func createTransitionsForMatch(ts *TransitionStorage, match *MatchingEra) {
	if match.Era.Policy == nil {
		createTransitionsFromSimpleMatch(ts, match)
	} else {
		createTransitionsFromNamedMatch(ts, match)
	}
}

// createTransitions runs createTransitionsForMatch over every matching
// era in order, each one contributing to the same TransitionStorage.
func createTransitions(ts *TransitionStorage, matches []*MatchingEra) {
	for _, match := range matches {
		createTransitionsForMatch(ts, match)
	}
}
