package tzprocessor

// abbrevSize bounds a synthesized zone abbreviation, including its
// terminating character: most human-assigned abbreviations are at most 6
// characters, but a "%z"-style numeric offset abbreviation can run to
// "+0830", 5 characters, or with seconds "+083045", 7 — so 8 leaves room
// for the longest case plus a terminator, matching the packed on-disk
// format even though Go strings here aren't NUL-terminated.
const abbrevSize = 8

// transitionStorageSize is the fixed capacity of one TransitionStorage: at
// most 4 matching eras, each contributing at most 2 transitions (one
// simple-era transition, or the interior-year count for a named-era
// match), comfortably fits in 8 slots for any real TZDB zone.
const transitionStorageSize = 8

// matchStatus classifies a Transition's temporal position relative to a
// MatchingEra's [start, until) interval. The exact/within/prior cases are
// all "active" (is_match_status_active); farFuture never is.
type matchStatus uint8

const (
	matchStatusPrior matchStatus = iota
	matchStatusExactMatch
	matchStatusWithinMatch
	matchStatusFarFuture
	matchStatusFarPast
)

func (m matchStatus) active() bool {
	return m == matchStatusExactMatch || m == matchStatusWithinMatch || m == matchStatusPrior
}

// Transition is one DST rule change and the period it governs: the
// MatchingEra it was generated from, the ZoneRule that produced it (nil
// for a simple, ruleless era), its transition instant expressed three
// ways, and the offsets and abbreviation in force from that instant until
// the next transition.
type Transition struct {
	Match *MatchingEra
	Rule  *ZoneRule

	// TransitionTime is the transition instant as first computed: usually
	// 'w', sometimes 's' or 'u'. FixTransitionTimes normalises every
	// transition in a slice to 'w' and fills TransitionTimeS/U; both
	// before and after that call the suffix on a not-yet-fixed instance
	// is whatever createTransitionForYear produced. The *S and *U
	// variants are computed with the UTC offset of the PREVIOUS
	// transition, not this one; GenerateStartUntilTimes re-expresses the
	// instant in this transition's own offset as StartDt.
	TransitionTime  DateTuple
	TransitionTimeS DateTuple
	TransitionTimeU DateTuple

	// StartDt and UntilDt are valid only after GenerateStartUntilTimes:
	// the transition's start and the next transition's start, both
	// expressed using this transition's own UTC offset.
	StartDt DateTuple
	UntilDt DateTuple

	StartEpochSeconds int32

	// OffsetSeconds is the STD offset, not the total effective offset.
	OffsetSeconds int32
	DeltaSeconds  int32

	Abbrev string

	// Letter points at an empty string for a transition generated from a
	// simple (ruleless) matching era, and at the matched rule's LETTER
	// (itself possibly "" for a rule whose LETTER column is "-") for one
	// generated from a named rule. Either way createAbbreviation
	// substitutes it for every '%' in FORMAT; a nil Letter is reserved
	// for callers with no letter at all and makes createAbbreviation
	// leave FORMAT's '%' (if any) untouched instead.
	Letter *string

	// IsValidPrior is used only during findCandidateTransitions, before
	// MatchStatus has any meaning for this Transition.
	IsValidPrior bool
	// MatchStatus is used only after processTransitionMatchStatus has
	// run; IsValidPrior has no further meaning for this Transition then.
	MatchStatus matchStatus
}

// totalOffsetSeconds is OffsetSeconds+DeltaSeconds, the effective UTC
// offset in force starting at this transition.
func (t *Transition) totalOffsetSeconds() int32 {
	return t.OffsetSeconds + t.DeltaSeconds
}

// TransitionStorage is the fixed-capacity working set the generator uses
// while building the transitions for one matching era at a time. Its 8
// slots are never reallocated; instead four disjoint regions — active,
// prior, candidate, and free — are tracked by three indices that slide
// across the same backing array as each matching era is processed.
//
//	[0, indexPrior)      active pool: transitions accepted for earlier eras
//	[indexPrior)         the single "most recent prior" transition, if any
//	[indexCandidate, indexFree)  candidate pool: this era's contenders
//	[indexFree, 8)       free pool: untouched scratch slots
type TransitionStorage struct {
	zoneInfo *ZoneInfo

	pool        [transitionStorageSize]Transition
	transitions [transitionStorageSize]*Transition

	indexPrior     uint8
	indexCandidate uint8
	indexFree      uint8
	allocSize      uint8
}

// Init (re)associates ts with zoneInfo and empties every pool. zoneInfo
// should already be resolved past any LINK target.
func (ts *TransitionStorage) Init(zoneInfo *ZoneInfo) {
	ts.zoneInfo = zoneInfo
	for i := range ts.transitions {
		ts.transitions[i] = &ts.pool[i]
	}
	ts.indexPrior = 0
	ts.indexCandidate = 0
	ts.indexFree = 0
	ts.allocSize = 0
}

// ActivePool returns the slice of accepted transitions built up so far,
// across every matching era already processed.
//
// The end index mirrors the source's own get_active_pool_end, including
// its author's doubt about which index is really correct (its comment
// reads "I think this should be index_prior not index_free"): by the time
// a caller reads the active pool, AddActiveCandidatesToActivePool has
// already set indexFree equal to indexPrior, so the two are always
// identical at that point and the discrepancy never materialises.
func (ts *TransitionStorage) ActivePool() []*Transition {
	return ts.transitions[0:ts.indexFree]
}

// CandidatePool returns this era's current candidate slots.
func (ts *TransitionStorage) CandidatePool() []*Transition {
	return ts.transitions[ts.indexCandidate:ts.indexFree]
}

// ResetCandidatePool empties the candidate pool between matching eras,
// collapsing it and the free pool back down to just after any prior
// transition reserved for this era.
func (ts *TransitionStorage) ResetCandidatePool() {
	ts.indexCandidate = ts.indexPrior
	ts.indexFree = ts.indexPrior
}

// GetFreeAgent returns the next untouched slot. If every slot is already
// accounted for, it degrades to returning the last slot a second time
// rather than running off the end of the array; the caller ends up
// overwriting a transition that's still in use, which is a known
// incorrect-result failure mode for zones with an unusually large number
// of transitions in one matching era, preferred over undefined behaviour.
func (ts *TransitionStorage) GetFreeAgent() *Transition {
	if ts.indexFree < transitionStorageSize {
		if ts.indexFree >= ts.allocSize {
			ts.allocSize = ts.indexFree + 1
		}
		return ts.transitions[ts.indexFree]
	}
	return ts.transitions[transitionStorageSize-1]
}

// AddFreeAgentToActivePool commits the current free agent directly to the
// active pool, used only for a simple (ruleless) matching era that
// produces exactly one transition with nothing left to compare it
// against.
func (ts *TransitionStorage) AddFreeAgentToActivePool() {
	if ts.indexFree >= transitionStorageSize {
		return
	}
	ts.indexFree++
	ts.indexPrior = ts.indexFree
	ts.indexCandidate = ts.indexFree
}

// ReservePrior allocates a free slot for the "most recent prior"
// transition and returns it; the candidate and free indices both shift up
// by one to keep the prior slot distinct from the candidate pool.
func (ts *TransitionStorage) ReservePrior() *Transition {
	_ = ts.GetFreeAgent()
	ts.indexCandidate++
	ts.indexFree++
	return ts.transitions[ts.indexPrior]
}

// SetFreeAgentAsPriorIfValid replaces the reserved prior slot with the
// current free agent if the free agent's transition time is later than
// the current prior's (or there is no valid prior yet), swapping the two
// pointers so the prior slot keeps its fixed position in the array.
func (ts *TransitionStorage) SetFreeAgentAsPriorIfValid() {
	ft := ts.transitions[ts.indexFree]
	prior := ts.transitions[ts.indexPrior]
	if (prior.IsValidPrior && CompareDateTuple(prior.TransitionTime, ft.TransitionTime) < 0) ||
		!prior.IsValidPrior {
		ft.IsValidPrior = true
		prior.IsValidPrior = false
		ts.transitions[ts.indexPrior] = ft
		ts.transitions[ts.indexFree] = prior
	}
}

// AddPriorToCandidatePool folds the reserved prior transition into the
// candidate pool, which sits immediately after it, by stepping the
// candidate index back by one.
func (ts *TransitionStorage) AddPriorToCandidatePool() {
	ts.indexCandidate--
}

// AddFreeAgentToCandidatePool inserts the current free agent into the
// candidate pool in transition-time order (an insertion sort keyed on
// TransitionTime, ignoring Suffix) and advances the free index past it.
func (ts *TransitionStorage) AddFreeAgentToCandidatePool() {
	if ts.indexFree >= transitionStorageSize {
		return
	}
	for i := ts.indexFree; i > ts.indexCandidate; i-- {
		curr := ts.transitions[i]
		prev := ts.transitions[i-1]
		if CompareDateTuple(curr.TransitionTime, prev.TransitionTime) >= 0 {
			break
		}
		ts.transitions[i] = prev
		ts.transitions[i-1] = curr
	}
	ts.indexFree++
}

// AddActiveCandidatesToActivePool moves every candidate whose MatchStatus
// is active (exact, within, or prior) into the active pool by swapping
// pointers left into place, then collapses the prior/candidate/free
// indices down to just past the newly active transitions. It returns the
// last transition added, since every matching era is guaranteed to
// contribute at least one.
func (ts *TransitionStorage) AddActiveCandidatesToActivePool() *Transition {
	iActive := ts.indexPrior
	iCandidate := ts.indexCandidate
	for ; iCandidate < ts.indexFree; iCandidate++ {
		if ts.transitions[iCandidate].MatchStatus.active() {
			if iActive != iCandidate {
				ts.transitions[iActive], ts.transitions[iCandidate] =
					ts.transitions[iCandidate], ts.transitions[iActive]
			}
			iActive++
		}
	}
	ts.indexPrior = iActive
	ts.indexCandidate = iActive
	ts.indexFree = iActive
	return ts.transitions[iActive-1]
}

// FixTransitionTimes normalises the TransitionTime of every entry in
// transitions (assumed already in chronological order) to 'w', filling in
// TransitionTimeS and TransitionTimeU to match. Each transition's instant
// is, before this call, still expressed using the UTC offset of the
// PREVIOUS transition in the slice — that's what makes a single
// left-to-right pass sufficient.
func FixTransitionTimes(transitions []*Transition) {
	if len(transitions) == 0 {
		return
	}
	prev := transitions[0]
	for _, curr := range transitions {
		w, s, u := ExpandDateTuple(curr.TransitionTime, prev.OffsetSeconds, prev.DeltaSeconds)
		curr.TransitionTime = w
		curr.TransitionTimeS = s
		curr.TransitionTimeU = u
		prev = curr
	}
}

// CompareTransitionToMatch classifies t's temporal position against
// match's [start, until) interval. Equality is assumed if *any* of the
// 'w', 's', or 'u' forms of t's transition time equal the corresponding
// form of match.Start — not just the one form match's own suffix uses —
// which prevents duplicate transitions from being generated in a few
// edge cases where two computed instants coincide on one clock but not
// the others.
func CompareTransitionToMatch(t *Transition, match *MatchingEra) matchStatus {
	var prevOffsetSeconds, prevDeltaSeconds int32
	if match.PrevMatch != nil {
		prevOffsetSeconds = match.PrevMatch.LastOffsetSeconds
		prevDeltaSeconds = match.PrevMatch.LastDeltaSeconds
	} else {
		prevOffsetSeconds = match.Era.stdOffsetSeconds()
		prevDeltaSeconds = 0
	}

	stw, sts, stu := ExpandDateTuple(match.Start, prevOffsetSeconds, prevDeltaSeconds)

	ttw := t.TransitionTime
	tts := t.TransitionTimeS
	ttu := t.TransitionTimeU

	if CompareDateTuple(ttw, stw) == 0 ||
		CompareDateTuple(tts, sts) == 0 ||
		CompareDateTuple(ttu, stu) == 0 {
		return matchStatusExactMatch
	}

	if CompareDateTuple(ttu, stu) < 0 {
		return matchStatusPrior
	}

	// match.Until uses the UTC offset of the *current* transition already,
	// so no further offset adjustment is needed here: just compare 'w'
	// with 'w', 's' with 's', 'u' with 'u'.
	var transitionTime DateTuple
	switch match.Until.Suffix {
	case SuffixStandard:
		transitionTime = tts
	case SuffixUTC:
		transitionTime = ttu
	default:
		transitionTime = ttw
	}
	if CompareDateTuple(transitionTime, match.Until) < 0 {
		return matchStatusWithinMatch
	}
	return matchStatusFarFuture
}

// CompareTransitionToMatchFuzzy is CompareTransitionToMatch's cheap
// pre-filter: a one-month-widened comparison of t's (not yet expanded)
// transition time against match's interval, used to cut candidate
// generation short before the precise (and considerably more expensive)
// comparison above is needed. It can never report an exact match.
func CompareTransitionToMatchFuzzy(t *Transition, match *MatchingEra) matchStatus {
	switch compareDateTupleFuzzy(t.TransitionTime, match.Start, match.Until) {
	case fuzzyPrior:
		return matchStatusPrior
	case fuzzyFarFuture:
		return matchStatusFarFuture
	default:
		return matchStatusWithinMatch
	}
}

// calculateFoldAndOverlap derives the fold bit and occurrence count for
// epochSeconds given its surrounding prev/curr/next transitions, per I6's
// asymmetric spring-forward/fall-back rule: a gap (spring forward)
// produces no second occurrence to fold into, while an overlap (fall
// back) does.
func calculateFoldAndOverlap(prev, curr, next *Transition, epochSeconds int32) (fold uint8, num uint8) {
	if curr == nil {
		return 0, 0
	}

	var isOverlap bool
	if prev == nil {
		isOverlap = false
	} else {
		// Can be zero when the zone swaps DST-of-one-policy for STD-of-
		// another with no net offset change.
		shiftSeconds := SubtractDateTuple(curr.StartDt, prev.UntilDt)
		if shiftSeconds >= 0 {
			isOverlap = false
		} else {
			isOverlap = epochSeconds-curr.StartEpochSeconds < -shiftSeconds
		}
	}
	if isOverlap {
		return 1, 2 // selects the second (later-clock) match
	}

	if next == nil {
		isOverlap = false
	} else {
		shiftSeconds := SubtractDateTuple(next.StartDt, curr.UntilDt)
		if shiftSeconds >= 0 {
			isOverlap = false
		} else {
			isOverlap = next.StartEpochSeconds-epochSeconds <= -shiftSeconds
		}
	}
	if isOverlap {
		return 0, 2 // epochSeconds selects the first match
	}

	return 0, 1
}

// TransitionForSeconds is the result of searching a TransitionStorage's
// active pool for a given instant. Curr is nil only if the active pool is
// empty, which a well-formed compiled zone never produces (every zone
// gets at least one anchor transition far in the past).
type TransitionForSeconds struct {
	Curr *Transition
	Fold uint8
	Num  uint8
}

// FindForSeconds returns the transition in force at epochSeconds, along
// with the fold bit and occurrence count calculateFoldAndOverlap derives
// from its neighbours.
func (ts *TransitionStorage) FindForSeconds(epochSeconds int32) TransitionForSeconds {
	var prev, curr, next *Transition
	for _, t := range ts.ActivePool() {
		next = t
		if next.StartEpochSeconds > epochSeconds {
			break
		}
		prev = curr
		curr = next
		next = nil
	}

	fold, num := calculateFoldAndOverlap(prev, curr, next, epochSeconds)
	return TransitionForSeconds{Curr: curr, Fold: fold, Num: num}
}

// TransitionForDateTime is the result of searching a TransitionStorage's
// active pool for a given plain date-time, one of five shapes:
//
//	num=0, Prev=nil,  Curr=curr : far past (should not happen)
//	num=1, Prev=prev, Curr=prev : exact match
//	num=2, Prev=prev, Curr=curr : overlap (the date-time occurs twice)
//	num=0, Prev=prev, Curr=curr : gap (the date-time occurs never)
//	num=0, Prev=prev, Curr=nil  : far future (should not happen)
type TransitionForDateTime struct {
	Prev *Transition
	Curr *Transition
	Num  uint8
}

// FindForDateTime searches for the transition(s) bracketing a plain
// (year, month, day, seconds-of-day) local instant tagged as wall clock.
func (ts *TransitionStorage) FindForDateTime(year int16, month, day uint8, secondsOfDay int32) TransitionForDateTime {
	plainDt := DateTuple{Year: year, Month: month, Day: day, Seconds: secondsOfDay, Suffix: SuffixWall}

	var prev, curr *Transition
	var num uint8
	for _, t := range ts.ActivePool() {
		curr = t

		isExactMatch := CompareDateTuple(curr.StartDt, plainDt) <= 0 &&
			CompareDateTuple(plainDt, curr.UntilDt) < 0

		if isExactMatch {
			if num == 1 {
				num++
				break
			}
			num = 1
		} else if CompareDateTuple(curr.StartDt, plainDt) > 0 {
			break
		}

		prev = curr
		curr = nil
	}

	if num == 1 {
		curr = prev
	}

	return TransitionForDateTime{Prev: prev, Curr: curr, Num: num}
}
