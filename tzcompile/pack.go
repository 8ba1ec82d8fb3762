// Package tzcompile builds the packed zone descriptors tzprocessor
// consumes (ZoneInfo/ZoneEra/ZoneRule/ZoneContext) from a parsed TZDB
// source file. It is the compilation step the processor's own test
// scenarios need in order to exercise real IANA data; the processor
// itself never imports this package.
package tzcompile

import (
	"time"

	"github.com/gopherzone/tzcore/tzdata"
	"github.com/gopherzone/tzcore/tzprocessor"
)

// floorDivInt32 is floor division, needed because a handful of historical
// LMT offsets are negative and not an exact multiple of 900 seconds.
func floorDivInt32(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// packOffsetSeconds splits a signed offset into a 15-minute-unit code and
// a 0-14 minute remainder, per the "mid" resolution packing documented in
// tzprocessor's zoneinfo.go. Sub-minute remainders (e.g. the historical
// 0:34:08 LMT offset of Europe/Zurich) are truncated away; the compiled
// format does not represent them.
func packOffsetSeconds(totalSeconds int32) (code int8, remainderMinutes uint8) {
	totalMinutes := totalSeconds / 60
	q := floorDivInt32(totalMinutes, 15)
	r := totalMinutes - q*15
	return int8(q), uint8(r)
}

// packDeltaCode encodes a DST delta (typically 0, 1800, 2700, or 3600
// seconds) as a 4-bit-biased code: (code-4)*15min. Deltas that are not an
// exact multiple of 15 minutes are not supported by this packing and are
// rounded to the nearest quarter hour.
func packDeltaCode(deltaSeconds int32) uint8 {
	quarterHours := int32(0)
	if deltaSeconds >= 0 {
		quarterHours = (deltaSeconds + 450) / 900
	} else {
		quarterHours = -((-deltaSeconds + 450) / 900)
	}
	return uint8(quarterHours + 4)
}

// timeFormSuffix maps a tzdata TimeForm (as used on a rule's AT column or
// a zone's UNTIL column) onto the packed Suffix nibble. DaylightSavingTime
// never appears on these columns; parseRuleAT only ever produces
// WallClock, StandardTime, or UniversalTime.
func timeFormSuffix(form tzdata.TimeForm) tzprocessor.Suffix {
	switch form {
	case tzdata.StandardTime:
		return tzprocessor.SuffixStandard
	case tzdata.UniversalTime:
		return tzprocessor.SuffixUTC
	default:
		return tzprocessor.SuffixWall
	}
}

func secondsOf(d time.Duration) int32 {
	return int32(d / time.Second)
}

// packTime packs a tzdata Time (a duration-since-midnight plus its form)
// into a PackedTime, per the shared AT/UNTIL packing.
func packTime(t tzdata.Time) tzprocessor.PackedTime {
	totalSeconds := secondsOf(t.Duration)
	totalMinutes := floorDivInt32(totalSeconds, 60)
	code := floorDivInt32(totalMinutes, 15)
	remainder := totalMinutes - code*15
	return tzprocessor.PackedTime{
		Code:     int16(code),
		Modifier: uint8(timeFormSuffix(t.Form)) | uint8(remainder),
	}
}
