package tzprocessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTwoTransitionPool wires up a minimal TransitionStorage with exactly
// two active transitions, the first ending at (year, month, day,
// boundarySeconds) on its own clock and the second starting shiftSeconds
// away from that boundary on its own clock: a positive shift opens a gap
// between the two wall-clock ranges, a negative shift makes them overlap.
// The symbolic PST/PDT labels here are just the two transitions' names,
// not a claim about real offsets.
func buildTwoTransitionPool(year int16, month, day uint8, boundarySeconds, shiftSeconds int32) *TransitionStorage {
	before := &Transition{OffsetSeconds: -8 * 3600, Abbrev: "PST"}
	after := &Transition{OffsetSeconds: -7 * 3600, Abbrev: "PDT"}

	before.StartDt = DateTuple{Year: year, Month: month, Day: day, Seconds: boundarySeconds - 3600, Suffix: SuffixWall}
	before.UntilDt = DateTuple{Year: year, Month: month, Day: day, Seconds: boundarySeconds, Suffix: SuffixWall}
	after.StartDt = DateTuple{Year: year, Month: month, Day: day, Seconds: boundarySeconds + shiftSeconds, Suffix: SuffixWall}
	after.UntilDt = DateTuple{Year: year, Month: month, Day: day, Seconds: boundarySeconds + shiftSeconds + 3600, Suffix: SuffixWall}

	var ts TransitionStorage
	ts.pool[0] = *before
	ts.pool[1] = *after
	for i := range ts.transitions {
		ts.transitions[i] = &ts.pool[i]
	}
	ts.indexFree = 2
	return &ts
}

func TestFindForDateTimeGap(t *testing.T) {
	// Wall clock jumps from 02:00 to 03:00: shiftSeconds=+3600 opens a gap.
	ts := buildTwoTransitionPool(2022, 3, 13, 2*3600, 3600)
	result := ts.FindForDateTime(2022, 3, 13, 2*3600+30*60)
	assert.Equal(t, uint8(0), result.Num)
	require.NotNil(t, result.Prev)
	require.NotNil(t, result.Curr)
	assert.Equal(t, "PST", result.Prev.Abbrev)
	assert.Equal(t, "PDT", result.Curr.Abbrev)
}

func TestFindForDateTimeOverlap(t *testing.T) {
	// Wall clock repeats 01:00-02:00: shiftSeconds=-3600 makes the two
	// transitions' ranges overlap.
	ts := buildTwoTransitionPool(2022, 11, 6, 2*3600, -3600)
	result := ts.FindForDateTime(2022, 11, 6, 1*3600+30*60)
	assert.Equal(t, uint8(2), result.Num)
	require.NotNil(t, result.Prev)
	require.NotNil(t, result.Curr)
	assert.Equal(t, "PST", result.Prev.Abbrev)
	assert.Equal(t, "PDT", result.Curr.Abbrev)
}

func TestFindForDateTimeExact(t *testing.T) {
	ts := buildTwoTransitionPool(2022, 3, 13, 2*3600, 3600)
	result := ts.FindForDateTime(2022, 3, 13, 1*3600)
	assert.Equal(t, uint8(1), result.Num)
	require.NotNil(t, result.Curr)
	assert.Equal(t, "PST", result.Curr.Abbrev)
}

func TestFloorDivInt32(t *testing.T) {
	assert.Equal(t, int32(-1), floorDivInt32(-1, 86400))
	assert.Equal(t, int32(0), floorDivInt32(0, 86400))
	assert.Equal(t, int32(0), floorDivInt32(86399, 86400))
	assert.Equal(t, int32(1), floorDivInt32(86400, 86400))
	assert.Equal(t, int32(-2), floorDivInt32(-86401, 86400))
}
