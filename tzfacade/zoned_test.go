package tzfacade_test

import (
	"strings"
	"testing"

	"github.com/gopherzone/tzcore/tzcompile"
	"github.com/gopherzone/tzcore/tzdata"
	"github.com/gopherzone/tzcore/tzfacade"
	"github.com/gopherzone/tzcore/tzprocessor"
	"github.com/stretchr/testify/require"
)

const sampleTZDB = `
Rule    US    2007  max  -  Mar  Sun>=8   2:00  1:00  D
Rule    US    2007  max  -  Nov  Sun>=1   2:00  0     S

Zone    America/Los_Angeles  -8:00  US  P%sT
Zone    America/New_York     -5:00  US  E%sT
`

func compileSample(t *testing.T) map[string]*tzprocessor.ZoneInfo {
	t.Helper()
	f, err := tzdata.Parse(strings.NewReader(strings.TrimSpace(sampleTZDB)))
	require.NoError(t, err)
	zones, err := tzcompile.Compile(f, 2000, 2060, "testdata")
	require.NoError(t, err)
	return zones
}

func TestFromEpochSecondsResolvesStandardTime(t *testing.T) {
	zones := compileSample(t)
	epoch := tzprocessor.NewEpoch(2050)
	p := tzprocessor.NewZoneProcessor(epoch)

	zdt, err := tzfacade.FromEpochSeconds(p, zones["America/Los_Angeles"], 0)
	require.NoError(t, err)
	require.Equal(t, "PST", zdt.Abbrev)
	require.Equal(t, int32(-8*3600), zdt.OffsetSeconds)
	require.Equal(t, tzprocessor.ResolvedUnique, zdt.Resolved)
	require.Equal(t, int16(2049), zdt.Year)
	require.Equal(t, uint8(12), zdt.Month)
	require.Equal(t, uint8(31), zdt.Day)
	require.Equal(t, uint8(16), zdt.Hour)

	require.Equal(t, int32(0), zdt.EpochSeconds(epoch))
}

func TestFromLocalDateTimeGapLaterNormalizesForward(t *testing.T) {
	zones := compileSample(t)
	epoch := tzprocessor.DefaultEpoch()
	p := tzprocessor.NewZoneProcessor(epoch)

	zdt, err := tzfacade.FromLocalDateTime(p, zones["America/Los_Angeles"], 2022, 3, 13, 2, 30, 0, tzprocessor.DisambiguateCompatible)
	require.NoError(t, err)
	require.Equal(t, tzprocessor.ResolvedGapLater, zdt.Resolved)
	require.Equal(t, "PDT", zdt.Abbrev)
	require.Equal(t, int32(-7*3600), zdt.OffsetSeconds)
	require.Equal(t, uint8(3), zdt.Hour)
	require.Equal(t, uint8(30), zdt.Minute)
}

func TestFromLocalDateTimeGapEarlierNormalizesBackward(t *testing.T) {
	zones := compileSample(t)
	epoch := tzprocessor.DefaultEpoch()
	p := tzprocessor.NewZoneProcessor(epoch)

	zdt, err := tzfacade.FromLocalDateTime(p, zones["America/Los_Angeles"], 2022, 3, 13, 2, 30, 0, tzprocessor.DisambiguateEarlier)
	require.NoError(t, err)
	require.Equal(t, tzprocessor.ResolvedGapEarlier, zdt.Resolved)
	require.Equal(t, "PST", zdt.Abbrev)
	require.Equal(t, int32(-8*3600), zdt.OffsetSeconds)
	require.Equal(t, uint8(1), zdt.Hour)
	require.Equal(t, uint8(30), zdt.Minute)
}

func TestFromLocalDateTimeOverlapKeepsTypedClock(t *testing.T) {
	zones := compileSample(t)
	epoch := tzprocessor.DefaultEpoch()
	p := tzprocessor.NewZoneProcessor(epoch)

	earlier, err := tzfacade.FromLocalDateTime(p, zones["America/Los_Angeles"], 2022, 11, 6, 1, 30, 0, tzprocessor.DisambiguateCompatible)
	require.NoError(t, err)
	require.Equal(t, tzprocessor.ResolvedOverlapEarlier, earlier.Resolved)
	require.Equal(t, "PDT", earlier.Abbrev)
	require.Equal(t, uint8(1), earlier.Hour)
	require.Equal(t, uint8(30), earlier.Minute)

	later, err := tzfacade.FromLocalDateTime(p, zones["America/Los_Angeles"], 2022, 11, 6, 1, 30, 0, tzprocessor.DisambiguateLater)
	require.NoError(t, err)
	require.Equal(t, tzprocessor.ResolvedOverlapLater, later.Resolved)
	require.Equal(t, "PST", later.Abbrev)
	require.Equal(t, uint8(1), later.Hour)
	require.Equal(t, uint8(30), later.Minute)
}

func TestConvertCrossesZonesAtTheSameInstant(t *testing.T) {
	zones := compileSample(t)
	epoch := tzprocessor.DefaultEpoch()
	p := tzprocessor.NewZoneProcessor(epoch)

	la, err := tzfacade.FromLocalDateTime(p, zones["America/Los_Angeles"], 2022, 11, 6, 1, 30, 0, tzprocessor.DisambiguateCompatible)
	require.NoError(t, err)

	ny, err := tzfacade.Convert(p, epoch, la, zones["America/New_York"])
	require.NoError(t, err)
	require.Equal(t, "EST", ny.Abbrev)
	require.Equal(t, int32(-5*3600), ny.OffsetSeconds)
	require.Equal(t, la.EpochSeconds(epoch), ny.EpochSeconds(epoch))
}

func TestNormalizeReResolvesMutatedFields(t *testing.T) {
	zones := compileSample(t)
	epoch := tzprocessor.DefaultEpoch()
	p := tzprocessor.NewZoneProcessor(epoch)

	zdt, err := tzfacade.FromLocalDateTime(p, zones["America/Los_Angeles"], 2022, 3, 13, 1, 30, 0, tzprocessor.DisambiguateCompatible)
	require.NoError(t, err)
	require.Equal(t, "PST", zdt.Abbrev)

	zdt.Hour = 2 // advancing the clock by hand lands squarely in the gap.
	normalized, err := tzfacade.Normalize(p, zdt, tzprocessor.DisambiguateCompatible)
	require.NoError(t, err)
	require.Equal(t, tzprocessor.ResolvedGapLater, normalized.Resolved)
	require.Equal(t, "PDT", normalized.Abbrev)
	require.Equal(t, uint8(3), normalized.Hour)
	require.Equal(t, uint8(30), normalized.Minute)
}
