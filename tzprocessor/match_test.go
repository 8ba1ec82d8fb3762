package tzprocessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMatchesSingleEraCoversWindow(t *testing.T) {
	zoneInfo := losAngelesZoneInfo()
	startYm := yearMonth{Year: 2021, Month: 12}
	untilYm := yearMonth{Year: 2023, Month: 2}

	matches := findMatches(zoneInfo, startYm, untilYm)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Same(t, &zoneInfo.Eras[0], m.Era)
	assert.Nil(t, m.PrevMatch)
	assert.Equal(t, DateTuple{Year: 2021, Month: 12, Day: 1, Seconds: 0, Suffix: SuffixWall}, m.Start)
	assert.Equal(t, DateTuple{Year: 2023, Month: 2, Day: 1, Seconds: 0, Suffix: SuffixWall}, m.Until)
}

func TestCompareEraToYearMonthUndefinedUntil(t *testing.T) {
	ctx := testContext()
	era := &ZoneEra{Until: ZoneUntil{Defined: false}}
	// An undefined UNTIL is treated as ctx.UntilYear+1-01-01, always after
	// any real query month within the context's range.
	assert.Equal(t, int8(1), compareEraToYearMonth(era, ctx, ctx.UntilYear, 6))
}
