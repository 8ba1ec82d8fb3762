// Package tzprocessor resolves instants between epoch seconds, plain
// date-times, and zoned date-times using the transition rules encoded in a
// compiled IANA time zone database. It is the computational core of the
// module: no I/O, no text parsing, no formatting, single-threaded.
package tzprocessor

import "fmt"

// Sentinels for the three integer domains this package moves values
// between. A day, an epoch-seconds value, or a unix-seconds value carrying
// one of these exact values is "invalid" rather than a real instant.
const (
	invalidYear         int16 = -1 << 15
	invalidDays         int32 = -1 << 31
	invalidEpochSeconds int32 = -1 << 31
	invalidUnixSeconds  int64 = -1 << 63
)

// MinYear and MaxYear bound the proleptic Gregorian years this package
// will compute over. Outside this range day/month/year arithmetic is not
// guaranteed to stay inside int16/int32.
const (
	MinYear int16 = 0
	MaxYear int16 = 10000
)

// converterEpochYear anchors Hinnant's day-counting algorithm: it must be a
// multiple of 400 so that the 400-year era cycle lines up on a leap year.
const converterEpochYear = 2000

const (
	daysToInternalEpochFromUnixEpoch int32 = 10957
	// DefaultEpochYear matches the reference implementation's default.
	DefaultEpochYear int16 = 2050
)

// Epoch carries the "current epoch year" configuration: the library's
// atc_time_t (here int32 EpochSeconds) is defined as seconds since
// year-01-01T00:00:00Z. Keeping this as an explicit value rather than
// mutable package state means multiple epochs can coexist in one process
// and nothing here needs a mutex.
type Epoch struct {
	year                  int16
	daysFromConverter     int32 // days from 2000-01-01 (converter epoch) to this epoch
	daysFromConverterUnix int32 // days from 1970-01-01 to this epoch, i.e. daysFromConverter - daysFromYMD(1970,1,1)
}

// NewEpoch builds the epoch configuration for the given current epoch
// year. year must be within [MinYear, MaxYear]; callers that pass a year
// outside this range get an Epoch whose day offsets are still computed
// (Hinnant's algorithm does not itself validate). No other operation in
// this package checks a year against ValidYearLower/Upper, so instants
// derived from such an Epoch are not rejected.
func NewEpoch(year int16) Epoch {
	fromConverter := daysFromYMD(year, 1, 1)
	return Epoch{
		year:                  year,
		daysFromConverter:     fromConverter,
		daysFromConverterUnix: fromConverter - daysFromYMD(1970, 1, 1),
	}
}

// DefaultEpoch returns the epoch configuration rebased on DefaultEpochYear.
func DefaultEpoch() Epoch { return NewEpoch(DefaultEpochYear) }

// Year returns the configured current epoch year.
func (e Epoch) Year() int16 { return e.year }

// ValidYearLower and ValidYearUpper bound the years for which EpochSeconds
// arithmetic is guaranteed not to overflow int32. The margin is
// conservative: 2^31 seconds is about 68 years, and the zone processor's
// 3-year (prev/curr/next matching era) working window needs roughly 2
// more years of slack on each side.
func (e Epoch) ValidYearLower() int16 { return e.year - 50 }
func (e Epoch) ValidYearUpper() int16 { return e.year + 50 }

// UnixSecondsFromEpochSeconds converts an EpochSeconds value (relative to
// this epoch) to Unix seconds. es must not be invalidEpochSeconds.
func (e Epoch) UnixSecondsFromEpochSeconds(es int32) int64 {
	return int64(es) + 86400*int64(e.daysFromConverterUnix)
}

// EpochSecondsFromUnixSeconds converts Unix seconds to EpochSeconds
// relative to this epoch. The caller is responsible for checking the
// result still fits in int32 for their valid year window; this function
// does not itself clamp or detect overflow.
func (e Epoch) EpochSecondsFromUnixSeconds(us int64) int32 {
	return int32(us - 86400*int64(e.daysFromConverterUnix))
}

// daysFromConverterDays converts a day count relative to Hinnant's converter
// epoch (2000-01-01) into a day count relative to this Epoch.
func (e Epoch) daysFromConverterDays(converterDays int32) int32 {
	return converterDays - e.daysFromConverter
}

func (e Epoch) converterDaysFromEpoch(epochDays int32) int32 {
	return epochDays + e.daysFromConverter
}

// IsLeapYear reports whether year is a leap year in the proleptic
// Gregorian calendar.
func IsLeapYear(year int16) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

var daysInMonthTable = [12]uint8{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in (year, month). month is 1-12.
func DaysInMonth(year int16, month uint8) uint8 {
	d := daysInMonthTable[month-1]
	if month == 2 && IsLeapYear(year) {
		d++
	}
	return d
}

// IsValidDate reports whether (year, month, day) is a real proleptic
// Gregorian calendar date within [MinYear+1, MaxYear-1] (the source
// rejects year 0 and year > 9999; this package keeps the same bounds).
func IsValidDate(year int16, month, day uint8) bool {
	if year < 1 || year > 9999 {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 {
		return false
	}
	return day <= DaysInMonth(year, month)
}

// daysOfWeekShift mirrors the acetimec atc_days_of_week table: the day of
// week shift accumulated by the 1st of each month, indexed by month-1
// (index 0 is January); DayOfWeek counts January and February as part of
// the previous year so that the leap day falls at the end of the "year".
var daysOfWeekShift = [12]int32{
	5, // Jan
	1, // Feb
	0, // Mar
	3, // Apr
	5, // May
	1, // Jun
	3, // Jul
	6, // Aug
	2, // Sep
	4, // Oct
	0, // Nov
	2, // Dec
}

// DayOfWeek returns the ISO-numbered day of week: 1=Monday .. 7=Sunday,
// matching a ZoneRule's OnDayOfWeek encoding. 2000-01-01 (a Saturday) is
// the anchor.
func DayOfWeek(year int16, month, day uint8) int32 {
	y := int32(year)
	if month < 3 {
		y--
	}
	d := y + y/4 - y/100 + y/400 + daysOfWeekShift[month-1] + int32(day)
	if d < -1 {
		return (d+1)%7 + 8
	}
	return (d+1)%7 + 1
}

// daysFromYMD is Hinnant's days_from_civil, producing a day count relative
// to converterEpochYear-01-01 (2000-01-01). It does not validate its
// inputs; callers that need validation should call IsValidDate first (see
// I5: this is the "day delta first" building block every other overflow-
// sensitive computation in this package is built on).
func daysFromYMD(year int16, month, day uint8) int32 {
	yearPrime := int32(year)
	if month <= 2 {
		yearPrime--
	}
	era := yearPrime / 400
	yearOfEra := yearPrime - 400*era // [0, 399]

	var monthPrime int32
	if month <= 2 {
		monthPrime = int32(month) + 9
	} else {
		monthPrime = int32(month) - 3
	}
	daysUntilMonthPrime := (153*monthPrime + 2) / 5
	dayOfYearPrime := daysUntilMonthPrime + int32(day) - 1 // [0, 365]
	dayOfEra := 365*yearOfEra + yearOfEra/4 - yearOfEra/100 + dayOfYearPrime

	dayOfEpochPrime := dayOfEra + 146097*era // relative to 0000-03-01
	return dayOfEpochPrime - (converterEpochYear/400)*146097 + 60
}

// ymdFromDays is the inverse of daysFromYMD: Hinnant's civil_from_days,
// taking a day count relative to 2000-01-01.
func ymdFromDays(days int32) (year int16, month, day uint8) {
	dayOfEpochPrime := days + (converterEpochYear/400)*146097 - 60

	era := dayOfEpochPrime / 146097
	dayOfEra := dayOfEpochPrime - 146097*era // [0, 146096]
	yearOfEra := (dayOfEra - dayOfEra/1460 + dayOfEra/36524 - dayOfEra/146096) / 365
	yearPrime := yearOfEra + 400*era
	dayOfYearPrime := dayOfEra - (365*yearOfEra + yearOfEra/4 - yearOfEra/100)
	monthPrime := (5*dayOfYearPrime + 2) / 153
	daysUntilMonthPrime := (153*monthPrime + 2) / 5

	day = uint8(dayOfYearPrime - daysUntilMonthPrime + 1)
	if monthPrime < 10 {
		month = uint8(monthPrime + 3)
	} else {
		month = uint8(monthPrime - 9)
	}
	year = int16(yearPrime)
	if month <= 2 {
		year++
	}
	return year, month, day
}

// DaysFromDate validates (year, month, day) and returns its day count
// relative to e. Returns invalidDays if the date is not valid.
func (e Epoch) DaysFromDate(year int16, month, day uint8) int32 {
	if !IsValidDate(year, month, day) {
		return invalidDays
	}
	return e.daysFromConverterDays(daysFromYMD(year, month, day))
}

// DateFromDays is the inverse of DaysFromDate.
func (e Epoch) DateFromDays(days int32) (year int16, month, day uint8) {
	return ymdFromDays(e.converterDaysFromEpoch(days))
}

// errInvalidDate reports a date that failed IsValidDate, in the style of
// the teacher's own parse errors: enough context to diagnose without a
// debugger, nothing more.
func errInvalidDate(year int16, month, day uint8) error {
	return fmt.Errorf("tzprocessor: invalid date %04d-%02d-%02d", year, month, day)
}
