package tzprocessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDaysFromDateRoundTrip(t *testing.T) {
	e := NewEpoch(2050)
	cases := []struct {
		year  int16
		month uint8
		day   uint8
	}{
		{1, 1, 1},
		{1970, 1, 1},
		{2000, 2, 29}, // leap day
		{2022, 3, 13},
		{2022, 11, 6},
		{2050, 1, 1},
		{9999, 12, 31},
	}
	for _, c := range cases {
		days := e.DaysFromDate(c.year, c.month, c.day)
		assert.NotEqual(t, invalidDays, days, "%04d-%02d-%02d", c.year, c.month, c.day)
		gotYear, gotMonth, gotDay := e.DateFromDays(days)
		assert.Equal(t, c.year, gotYear)
		assert.Equal(t, c.month, gotMonth)
		assert.Equal(t, c.day, gotDay)
	}
}

func TestDaysFromDateRejectsInvalid(t *testing.T) {
	e := DefaultEpoch()
	assert.Equal(t, invalidDays, e.DaysFromDate(2022, 2, 30))
	assert.Equal(t, invalidDays, e.DaysFromDate(2022, 0, 1))
	assert.Equal(t, invalidDays, e.DaysFromDate(2022, 13, 1))
	assert.Equal(t, invalidDays, e.DaysFromDate(0, 1, 1))
}

// Scenario 1 (spec §8): epoch-year 2050, local(2050,1,1,0,0,0) round-trips
// through epoch-seconds 0.
func TestEpochRoundTripAtConfiguredYear(t *testing.T) {
	e := NewEpoch(2050)
	days := e.DaysFromDate(2050, 1, 1)
	epochSeconds := days*86400 + 0
	assert.Equal(t, int32(0), epochSeconds)

	gotYear, gotMonth, gotDay := e.DateFromDays(epochSeconds / 86400)
	assert.Equal(t, int16(2050), gotYear)
	assert.Equal(t, uint8(1), gotMonth)
	assert.Equal(t, uint8(1), gotDay)
}

func TestUnixSecondsRoundTrip(t *testing.T) {
	e := DefaultEpoch()
	for _, us := range []int64{0, 1_700_000_000, -1_000_000, 86400} {
		es := e.EpochSecondsFromUnixSeconds(us)
		assert.Equal(t, us, e.UnixSecondsFromEpochSeconds(es))
	}
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(1900))
	assert.True(t, IsLeapYear(2024))
	assert.False(t, IsLeapYear(2023))
}

func TestDayOfWeekKnownAnchor(t *testing.T) {
	// ISO numbering: 1=Monday .. 7=Sunday. 2000-01-01 is a Saturday.
	assert.Equal(t, int32(6), DayOfWeek(2000, 1, 1))
	// 2022-03-13 and 2022-11-06 are both Sundays (the 2022 US DST boundaries).
	assert.Equal(t, int32(7), DayOfWeek(2022, 3, 13))
	assert.Equal(t, int32(7), DayOfWeek(2022, 11, 6))
	// 2022-03-08 and 2022-11-01 are both Tuesdays, the anchors
	// calcStartDayOfMonth rolls forward from to land on those Sundays.
	assert.Equal(t, int32(2), DayOfWeek(2022, 3, 8))
	assert.Equal(t, int32(2), DayOfWeek(2022, 11, 1))
}
