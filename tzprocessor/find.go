package tzprocessor

import "errors"

// errNotFound is returned alongside a FindResultNotFound result: the
// target instant fell beyond every matching era's transitions, which a
// well-formed compiled zone (always anchored by a far-past transition)
// should only produce for a year outside the processor's valid range.
var errNotFound = errors.New("tzprocessor: local date-time not found in any transition")

// floorDivInt32 is integer division rounding toward negative infinity,
// needed because Go's native / truncates toward zero and epochSeconds
// before the epoch is negative.
func floorDivInt32(a, b int32) int32 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// FindResultType classifies the outcome of a find-by-epoch-seconds or
// find-by-local-date-time query.
type FindResultType uint8

const (
	FindResultNotFound FindResultType = iota
	FindResultExact
	FindResultGap
	FindResultOverlap
)

// Disambiguate selects which of two candidate transitions to use when a
// find-by-local-date-time query lands in a gap or an overlap.
type Disambiguate uint8

const (
	DisambiguateCompatible Disambiguate = iota
	DisambiguateEarlier
	DisambiguateLater
	DisambiguateReversed
)

// Resolved records, on the output side, which disambiguation actually
// applied: Unique means the target matched exactly one transition and no
// disambiguation was needed.
type Resolved uint8

const (
	ResolvedUnique Resolved = iota
	ResolvedOverlapEarlier
	ResolvedOverlapLater
	ResolvedGapEarlier
	ResolvedGapLater
)

// FindResult is the outcome of resolving either an epoch-seconds value or
// a local date-time against a zone's active transitions.
type FindResult struct {
	Type FindResultType

	// StdOffsetSeconds/DstOffsetSeconds are the target transition's own
	// offsets: the ones in force at the resolved instant.
	StdOffsetSeconds int32
	DstOffsetSeconds int32

	// ReqStdOffsetSeconds/ReqDstOffsetSeconds are the offsets implied by
	// the caller's request before disambiguation — equal to the target
	// offsets everywhere except inside a gap, where the request is
	// interpreted against one transition's offsets but normalises into
	// the other's.
	ReqStdOffsetSeconds int32
	ReqDstOffsetSeconds int32

	Abbrev string

	// Fold is 0 or 1, meaningful only when Type is FindResultOverlap: it
	// distinguishes the two occurrences of a wall instant that repeats
	// across a fall-back boundary.
	Fold uint8

	Resolved Resolved
}

// FindByEpochSeconds resolves epochSeconds (relative to p's epoch) against
// the zone this processor is currently bound to, re-running §4.5-4.7 first
// if the target year differs from the cached one. Resolved is always
// ResolvedUnique: epoch-seconds never need a caller-supplied disambiguation
// since unlike a wall clock, they never repeat.
func (p *ZoneProcessor) FindByEpochSeconds(epochSeconds int32) (FindResult, error) {
	year, _, _ := p.epoch.DateFromDays(floorDivInt32(epochSeconds, 86400))
	if err := p.InitForYear(year); err != nil {
		return FindResult{}, err
	}

	tfs := p.transitions.FindForSeconds(epochSeconds)
	t := tfs.Curr
	if t == nil {
		return FindResult{Type: FindResultNotFound}, errNotFound
	}

	result := FindResult{
		StdOffsetSeconds:    t.OffsetSeconds,
		DstOffsetSeconds:    t.DeltaSeconds,
		ReqStdOffsetSeconds: t.OffsetSeconds,
		ReqDstOffsetSeconds: t.DeltaSeconds,
		Abbrev:              t.Abbrev,
		Fold:                tfs.Fold,
		Resolved:            ResolvedUnique,
	}
	if tfs.Num == 2 {
		result.Type = FindResultOverlap
	} else {
		result.Type = FindResultExact
	}
	return result, nil
}

// FindByLocalDateTime resolves the wall-clock (year, month, day,
// secondsOfDay) against the zone this processor is currently bound to,
// applying disambiguate to pick a transition when the target falls in a
// gap or an overlap. Per §4.10: in an overlap, earlier/compatible select
// the first (earlier-clock) transition and later/reversed the second,
// with requested and target offsets equal; in a gap, earlier/reversed
// report the previous transition as in force but interpret the request
// against the next transition's offsets (the wall time typed normalises
// forward across the gap into it), while later/compatible do the
// reverse.
func (p *ZoneProcessor) FindByLocalDateTime(year int16, month, day uint8, secondsOfDay int32, disambiguate Disambiguate) (FindResult, error) {
	if err := p.InitForYear(year); err != nil {
		return FindResult{}, err
	}

	tfd := p.transitions.FindForDateTime(year, month, day, secondsOfDay)

	if tfd.Num == 1 {
		t := tfd.Curr
		return FindResult{
			Type:                FindResultExact,
			StdOffsetSeconds:    t.OffsetSeconds,
			DstOffsetSeconds:    t.DeltaSeconds,
			ReqStdOffsetSeconds: t.OffsetSeconds,
			ReqDstOffsetSeconds: t.DeltaSeconds,
			Abbrev:              t.Abbrev,
			Resolved:            ResolvedUnique,
		}, nil
	}

	if tfd.Prev == nil || tfd.Curr == nil {
		return FindResult{Type: FindResultNotFound}, errNotFound
	}

	var target *Transition
	var reqStd, reqDst int32
	var resultType FindResultType
	var resolved Resolved

	if tfd.Num == 0 {
		// The requested offsets and the target transition are DIFFERENT
		// transitions here: the caller's wall-clock reading is interpreted
		// against one transition's offset, but that instant then
		// normalises across the gap into the other transition's regime,
		// which is what's actually reported as in force.
		resultType = FindResultGap
		switch disambiguate {
		case DisambiguateEarlier, DisambiguateReversed:
			resolved = ResolvedGapEarlier
			reqStd, reqDst = tfd.Curr.OffsetSeconds, tfd.Curr.DeltaSeconds
			target = tfd.Prev
		default: // compatible, later
			resolved = ResolvedGapLater
			reqStd, reqDst = tfd.Prev.OffsetSeconds, tfd.Prev.DeltaSeconds
			target = tfd.Curr
		}
	} else { // overlap
		resultType = FindResultOverlap
		switch disambiguate {
		case DisambiguateLater, DisambiguateReversed:
			resolved = ResolvedOverlapLater
			target = tfd.Curr
		default: // compatible, earlier
			resolved = ResolvedOverlapEarlier
			target = tfd.Prev
		}
		reqStd, reqDst = target.OffsetSeconds, target.DeltaSeconds
	}

	return FindResult{
		Type:                resultType,
		StdOffsetSeconds:    target.OffsetSeconds,
		DstOffsetSeconds:    target.DeltaSeconds,
		ReqStdOffsetSeconds: reqStd,
		ReqDstOffsetSeconds: reqDst,
		Abbrev:              target.Abbrev,
		Resolved:            resolved,
	}, nil
}
