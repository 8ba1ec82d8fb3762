package tzprocessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubtractDateTuple(t *testing.T) {
	a := DateTuple{Year: 2022, Month: 3, Day: 14, Seconds: 0, Suffix: SuffixWall}
	b := DateTuple{Year: 2022, Month: 3, Day: 13, Seconds: 0, Suffix: SuffixWall}
	assert.Equal(t, int32(86400), SubtractDateTuple(a, b))
	assert.Equal(t, int32(-86400), SubtractDateTuple(b, a))
}

func TestSubtractDateTupleSameDay(t *testing.T) {
	a := DateTuple{Year: 2022, Month: 3, Day: 13, Seconds: 7200, Suffix: SuffixWall}
	b := DateTuple{Year: 2022, Month: 3, Day: 13, Seconds: 3600, Suffix: SuffixWall}
	assert.Equal(t, int32(3600), SubtractDateTuple(a, b))
}

func TestExpandDateTupleWallToAll(t *testing.T) {
	// 02:00 wall, STD offset -8h, DST delta +1h (PDT) -> w=s+delta=u+offset+delta.
	w := DateTuple{Year: 2022, Month: 3, Day: 13, Seconds: 2 * 3600, Suffix: SuffixWall}
	gotW, gotS, gotU := ExpandDateTuple(w, -8*3600, 3600)

	assert.Equal(t, w, gotW)
	assert.Equal(t, DateTuple{Year: 2022, Month: 3, Day: 13, Seconds: 1 * 3600, Suffix: SuffixStandard}, gotS)
	assert.Equal(t, DateTuple{Year: 2022, Month: 3, Day: 13, Seconds: 9 * 3600, Suffix: SuffixUTC}, gotU)
}

func TestExpandDateTupleRoundTripsThroughEachSuffix(t *testing.T) {
	offsetSeconds, deltaSeconds := int32(-5*3600), int32(3600)
	w := DateTuple{Year: 2022, Month: 11, Day: 6, Seconds: 1 * 3600, Suffix: SuffixWall}
	_, s, u := ExpandDateTuple(w, offsetSeconds, deltaSeconds)

	w2, _, _ := ExpandDateTuple(s, offsetSeconds, deltaSeconds)
	assert.Equal(t, w, w2)

	w3, _, _ := ExpandDateTuple(u, offsetSeconds, deltaSeconds)
	assert.Equal(t, w, w3)
}

func TestCompareDateTupleFuzzy(t *testing.T) {
	start := DateTuple{Year: 2022, Month: 1, Day: 1}
	until := DateTuple{Year: 2023, Month: 1, Day: 1}

	assert.Equal(t, fuzzyPrior, compareDateTupleFuzzy(DateTuple{Year: 2021, Month: 11}, start, until))
	assert.Equal(t, fuzzyWithin, compareDateTupleFuzzy(DateTuple{Year: 2022, Month: 6}, start, until))
	assert.Equal(t, fuzzyFarFuture, compareDateTupleFuzzy(DateTuple{Year: 2023, Month: 3}, start, until))
}
