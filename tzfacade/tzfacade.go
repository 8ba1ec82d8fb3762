// Package tzfacade is thin glue over tzprocessor's epoch-seconds and
// local-date-time resolvers: an OffsetDateTime/ZonedDateTime pair that
// carries calendar fields (year/month/day/hour/minute/second) alongside
// the offset tzprocessor resolved for them, the way a caller actually
// wants to print or compare an instant. It holds no transition logic of
// its own — every resolution question is answered by a ZoneProcessor.
package tzfacade

import "github.com/gopherzone/tzcore/tzprocessor"

const secondsPerDay = 86400

// OffsetDateTime is a calendar date-time paired with the UTC offset (STD
// plus DST) that applied to it. It makes no claim about which time zone
// produced that offset; ZonedDateTime adds that.
type OffsetDateTime struct {
	Year   int16
	Month  uint8
	Day    uint8
	Hour   uint8
	Minute uint8
	Second uint8

	OffsetSeconds int32
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int32) int32 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func secondsOfDay(hour, minute, second uint8) int32 {
	return int32(hour)*3600 + int32(minute)*60 + int32(second)
}

func hmsFromSeconds(s int32) (hour, minute, second uint8) {
	hour = uint8(s / 3600)
	s -= int32(hour) * 3600
	minute = uint8(s / 60)
	second = uint8(s - int32(minute)*60)
	return hour, minute, second
}

// epochSecondsFromOffsetDateTime converts odt to epoch seconds using its
// own OffsetSeconds: UTC = local - offset.
func epochSecondsFromOffsetDateTime(epoch tzprocessor.Epoch, odt OffsetDateTime) int32 {
	days := epoch.DaysFromDate(odt.Year, odt.Month, odt.Day)
	return days*secondsPerDay + secondsOfDay(odt.Hour, odt.Minute, odt.Second) - odt.OffsetSeconds
}

// offsetDateTimeFromEpochSeconds is the inverse: it applies offsetSeconds
// to epochSeconds and splits the result back into calendar fields.
func offsetDateTimeFromEpochSeconds(epoch tzprocessor.Epoch, epochSeconds, offsetSeconds int32) OffsetDateTime {
	localSeconds := epochSeconds + offsetSeconds
	days := floorDiv(localSeconds, secondsPerDay)
	secOfDay := localSeconds - days*secondsPerDay

	year, month, day := epoch.DateFromDays(days)
	hour, minute, second := hmsFromSeconds(secOfDay)
	return OffsetDateTime{
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second,
		OffsetSeconds: offsetSeconds,
	}
}
