package tzcompile

import (
	"strings"
	"testing"

	"github.com/gopherzone/tzcore/tzdata"
	"github.com/gopherzone/tzcore/tzprocessor"
	"github.com/gopherzone/tzcore/tzregistry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTZDB = `
Rule    US    2007  max  -  Mar  Sun>=8   2:00  1:00  D
Rule    US    2007  max  -  Nov  Sun>=1   2:00  0     S

Zone    America/Los_Angeles  -8:00  US  P%sT
Link    America/Los_Angeles  US/Pacific
`

func parseSample(t *testing.T) tzdata.File {
	t.Helper()
	f, err := tzdata.Parse(strings.NewReader(strings.TrimSpace(sampleTZDB)))
	require.NoError(t, err)
	return f
}

func TestCompileBuildsNamedZoneWithPolicy(t *testing.T) {
	f := parseSample(t)
	zones, err := Compile(f, 2000, 2060, "testdata")
	require.NoError(t, err)

	require.Contains(t, zones, "America/Los_Angeles")
	la := zones["America/Los_Angeles"]
	assert.False(t, la.IsLink())
	assert.Equal(t, tzregistry.DJB2("America/Los_Angeles"), la.ZoneID)
	require.Len(t, la.Eras, 1)

	era := la.Eras[0]
	assert.Equal(t, "P%T", era.Format) // "%s" condensed to "%", not yet substituted with a DST letter.
	require.NotNil(t, era.Policy)
	assert.Equal(t, "US", era.Policy.Name)
	require.Len(t, era.Policy.Rules, 2)

	// -8:00 packs to OffsetCode=-32 quarter-hours, no minute remainder.
	assert.Equal(t, int8(-32), era.OffsetCode)
	assert.Equal(t, uint8(0), era.DeltaCode&0xf0)
}

func TestCompileRuleEncodingMatchesUSDaylightDates(t *testing.T) {
	f := parseSample(t)
	zones, err := Compile(f, 2000, 2060, "testdata")
	require.NoError(t, err)

	rules := zones["America/Los_Angeles"].Eras[0].Policy.Rules
	marchRule := rules[0]
	novRule := rules[1]

	assert.Equal(t, uint8(3), marchRule.InMonth)
	assert.Equal(t, uint8(7), marchRule.OnDayOfWeek) // Sunday, ISO numbering
	assert.Equal(t, int8(8), marchRule.OnDayOfMonth)
	assert.Equal(t, int32(2*3600), marchRule.At.Seconds())
	assert.Equal(t, tzprocessor.SuffixWall, marchRule.At.Suffix())

	assert.Equal(t, uint8(11), novRule.InMonth)
	assert.Equal(t, uint8(7), novRule.OnDayOfWeek)
	assert.Equal(t, int8(1), novRule.OnDayOfMonth)
}

func TestCompileResolvesLink(t *testing.T) {
	f := parseSample(t)
	zones, err := Compile(f, 2000, 2060, "testdata")
	require.NoError(t, err)

	require.Contains(t, zones, "US/Pacific")
	link := zones["US/Pacific"]
	assert.True(t, link.IsLink())
}

func TestCompileUnknownRuleNameFails(t *testing.T) {
	f, err := tzdata.Parse(strings.NewReader("Zone Bogus/Zone 1:00 NoSuchPolicy FOO\n"))
	require.NoError(t, err)
	_, err = Compile(f, 2000, 2060, "testdata")
	assert.Error(t, err)
}

func TestCondenseFormat(t *testing.T) {
	assert.Equal(t, "P%T", condenseFormat("P%sT"))
	assert.Equal(t, "EST/EDT", condenseFormat("EST/EDT"))
	assert.Equal(t, "-00", condenseFormat("-00"))
}
