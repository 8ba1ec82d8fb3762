package tzprocessor

// maxMatches bounds the number of matching eras retained for one target
// year: the 14-month viewing window (December of year-1 through February
// of year+1) can straddle at most 3 era boundaries, plus one more for a
// zone whose eras change unusually often, so 4 is never exceeded by any
// real TZDB zone.
const maxMatches = 4

// maxInteriorYears bounds how many calendar years a single ZoneRule can
// contribute transitions for within one matching era's 14-month window.
const maxInteriorYears = 4

// yearMonth is a (year, month) pair used only to express the half-open
// [start, until) viewing window findMatches walks the era list against.
type yearMonth struct {
	Year  int16
	Month uint8
}

// MatchingEra is one ZoneEra's overlap with a target year's 14-month
// viewing window: its effective start and until, clamped to the window,
// and a back-reference to the previous MatchingEra needed to interpret
// its own start (a matching era's start is always the previous era's
// UNTIL).
type MatchingEra struct {
	Start DateTuple
	Until DateTuple

	Era *ZoneEra

	PrevMatch *MatchingEra

	// LastOffsetSeconds and LastDeltaSeconds are filled in by
	// createTransitionsForMatch once this era's transitions are known:
	// the offset and delta of its last transition, which is what the
	// *next* MatchingEra needs to interpret its own (inherited) start.
	LastOffsetSeconds int32
	LastDeltaSeconds  int32
}

// eraUntilParts returns era's UNTIL as (year, month, day, timeCode),
// substituting ctx.UntilYear+1 (January 1st, midnight) for a zone's final
// era, whose UNTIL is by convention left undefined to mean "forever".
func eraUntilParts(era *ZoneEra, ctx *ZoneContext) (year int16, month, day uint8, timeCode int16) {
	if !era.Until.Defined {
		return ctx.UntilYear + 1, 1, 1, 0
	}
	return era.Until.Year, era.Until.Month, era.Until.Day, era.Until.Time.Code
}

// compareEraToYearMonth reports how era's UNTIL compares to (year, month):
// +1 if UNTIL is strictly after, -1 if strictly before, 0 if
// UNTIL falls exactly on the first instant of (year, month). It ignores
// the day and time-of-day entirely except to distinguish "exactly
// (year, month, 1, 00:00)" from "later within (year, month)", since every
// caller only needs month-granularity.
func compareEraToYearMonth(era *ZoneEra, ctx *ZoneContext, year int16, month uint8) int8 {
	untilYear, untilMonth, untilDay, untilCode := eraUntilParts(era, ctx)
	if untilYear < year {
		return -1
	}
	if untilYear > year {
		return 1
	}
	if untilMonth < month {
		return -1
	}
	if untilMonth > month {
		return 1
	}
	if untilDay > 1 {
		return 1
	}
	if untilCode > 0 {
		return 1
	}
	return 0
}

// eraOverlapsInterval reports whether era overlaps the half-open interval
// [startYm, untilYm). The era's effective start is the previous era's
// UNTIL (prevEra nil means "the era before all recorded time"). This
// needn't be exact: startYm/untilYm already carry a month of slop on each
// side, so the day/time fields of the comparison can be ignored.
func eraOverlapsInterval(prevEra, era *ZoneEra, ctx *ZoneContext, startYm, untilYm yearMonth) bool {
	startsBeforeUntil := prevEra == nil || compareEraToYearMonth(prevEra, ctx, untilYm.Year, untilYm.Month) < 0
	endsAfterStart := compareEraToYearMonth(era, ctx, startYm.Year, startYm.Month) > 0
	return startsBeforeUntil && endsAfterStart
}

// createMatchingEra builds the MatchingEra for era, clamping its start
// (inherited from prevMatch's era's UNTIL, or the dawn of time if
// prevMatch is nil) and until to the [startYm, untilYm) window.
func createMatchingEra(prevMatch *MatchingEra, era *ZoneEra, ctx *ZoneContext, startYm, untilYm yearMonth) *MatchingEra {
	var startDate DateTuple
	if prevMatch == nil {
		startDate = DateTuple{Year: invalidYear, Month: 1, Day: 1, Seconds: 0, Suffix: SuffixWall}
	} else {
		u := prevMatch.Era.Until
		startDate = DateTuple{Year: u.Year, Month: u.Month, Day: u.Day, Seconds: u.Time.Seconds(), Suffix: u.Time.Suffix()}
	}
	lowerBound := DateTuple{Year: startYm.Year, Month: startYm.Month, Day: 1, Seconds: 0, Suffix: SuffixWall}
	if CompareDateTuple(startDate, lowerBound) < 0 {
		startDate = lowerBound
	}

	untilYear, untilMonth, untilDay, _ := eraUntilParts(era, ctx)
	untilDate := DateTuple{Year: untilYear, Month: untilMonth, Day: untilDay, Seconds: era.Until.Time.Seconds(), Suffix: era.Until.Time.Suffix()}
	upperBound := DateTuple{Year: untilYm.Year, Month: untilYm.Month, Day: 1, Seconds: 0, Suffix: SuffixWall}
	if CompareDateTuple(upperBound, untilDate) < 0 {
		untilDate = upperBound
	}

	return &MatchingEra{
		Start:     startDate,
		Until:     untilDate,
		Era:       era,
		PrevMatch: prevMatch,
	}
}

// findMatches walks zoneInfo's eras in UNTIL-ascending order and returns
// the (at most maxMatches) MatchingEras overlapping [startYm, untilYm).
func findMatches(zoneInfo *ZoneInfo, startYm, untilYm yearMonth) []*MatchingEra {
	matches := make([]*MatchingEra, 0, maxMatches)
	var prevMatch *MatchingEra
	var prevEra *ZoneEra
	for i := range zoneInfo.Eras {
		era := &zoneInfo.Eras[i]
		if eraOverlapsInterval(prevEra, era, zoneInfo.Context, startYm, untilYm) {
			if len(matches) < maxMatches {
				match := createMatchingEra(prevMatch, era, zoneInfo.Context, startYm, untilYm)
				matches = append(matches, match)
				prevMatch = match
				prevEra = era
			}
		}
	}
	return matches
}
