package tzprocessor

import "fmt"

// ZoneProcessor resolves a single time zone's transitions for one target
// year at a time. It owns a mutable 1-entry cache keyed on
// (zone info, year): rebinding to a different zone or a different year
// discards the cache and reruns the matching/generation/assignment
// pipeline (§§4.5-4.7). It is not safe for concurrent use — one processor
// per concurrent caller, each with its own embedded TransitionStorage.
type ZoneProcessor struct {
	epoch Epoch

	zoneInfo *ZoneInfo // already resolved past any LINK

	filled bool
	year   int16

	matches     []*MatchingEra
	transitions TransitionStorage
}

// NewZoneProcessor returns a processor with no zone bound yet; call
// InitForZoneInfo before any find.
func NewZoneProcessor(epoch Epoch) *ZoneProcessor {
	return &ZoneProcessor{epoch: epoch}
}

// Epoch returns the epoch configuration p was constructed with, so a
// caller converting between epoch seconds and calendar fields (as
// tzfacade does) can share the same day-counting anchor.
func (p *ZoneProcessor) Epoch() Epoch {
	return p.epoch
}

// InitForZoneInfo rebinds p to zoneInfo, invalidating the cache if it
// names a different zone (resolving LINK redirection first, so relinking
// to the same target zone via a different link name is a no-op).
func (p *ZoneProcessor) InitForZoneInfo(zoneInfo *ZoneInfo) {
	resolved := zoneInfo.resolve()
	if p.zoneInfo == resolved {
		return
	}
	p.zoneInfo = resolved
	p.filled = false
	p.matches = nil
}

// InitForYear fills the cache for year, unless it is already filled for
// that exact year. year must be within
// [zoneInfo.Context.StartYear-1, zoneInfo.Context.UntilYear]; outside
// that range the compiled data isn't guaranteed to cover the transitions
// a correct answer would need.
func (p *ZoneProcessor) InitForYear(year int16) error {
	if p.filled && p.year == year {
		return nil
	}
	if p.zoneInfo == nil {
		return fmt.Errorf("tzprocessor: no zone bound")
	}

	ctx := p.zoneInfo.Context
	if year < ctx.StartYear-1 || ctx.UntilYear < year {
		return fmt.Errorf("tzprocessor: year %d outside compiled range [%d, %d]", year, ctx.StartYear-1, ctx.UntilYear)
	}

	p.year = year
	p.transitions.Init(p.zoneInfo)

	startYm := yearMonth{Year: year - 1, Month: 12}
	untilYm := yearMonth{Year: year + 1, Month: 2}

	// Step 1: find matches.
	p.matches = findMatches(p.zoneInfo, startYm, untilYm)

	// Step 2: create transitions.
	createTransitions(&p.transitions, p.matches)

	// Step 3: fix transition times of the active transitions.
	active := p.transitions.transitions[0:p.transitions.indexPrior]
	FixTransitionTimes(active)

	// Step 4: generate start/until times.
	GenerateStartUntilTimes(p.epoch, active)

	// Step 5: calculate abbreviations.
	CalcAbbreviations(active)

	p.filled = true
	return nil
}

// InitForEpochSeconds fills the cache for whichever year epochSeconds
// (interpreted as a plain UTC instant, ignoring any zone offset) falls
// in.
func (p *ZoneProcessor) InitForEpochSeconds(epochSeconds int32) error {
	year, _, _ := p.epoch.DateFromDays(floorDivInt32(epochSeconds, 86400))
	return p.InitForYear(year)
}
