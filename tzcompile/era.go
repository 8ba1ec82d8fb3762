package tzcompile

import (
	"fmt"
	"strings"

	"github.com/gopherzone/tzcore/tzdata"
	"github.com/gopherzone/tzcore/tzprocessor"
)

// condenseFormat turns the TZDB FORMAT column's "%s" placeholder into the
// single-character "%" createAbbreviation substitutes against, matching
// the reference library's own condensing step. "A/B" style formats and
// plain formats with no placeholder pass through unchanged.
func condenseFormat(format string) string {
	return strings.ReplaceAll(format, "%s", "%")
}

// buildEra converts one ZoneLine (initial or continuation) into a
// ZoneEra, resolving its RULES column into either a named ZonePolicy
// pointer or a nil policy carrying a fixed DST delta.
func buildEra(l tzdata.ZoneLine, policies map[string]*tzprocessor.ZonePolicy) (tzprocessor.ZoneEra, error) {
	offsetCode, offsetRemainder := packOffsetSeconds(secondsOf(l.Offset))

	era := tzprocessor.ZoneEra{
		Format:     condenseFormat(l.Format),
		OffsetCode: offsetCode,
		DeltaCode:  offsetRemainder << 4,
		Until:      buildUntil(l.Until),
	}

	switch l.Rules.Form {
	case tzdata.ZoneRulesStandard:
		// DeltaCode low nibble stays at the bias (4): zero DST delta.
		era.DeltaCode |= packDeltaCode(0) & 0x0f
	case tzdata.ZoneRulesTime:
		era.DeltaCode |= packDeltaCode(secondsOf(l.Rules.Time.Duration)) & 0x0f
	case tzdata.ZoneRulesName:
		policy, ok := policies[l.Rules.Name]
		if !ok {
			return tzprocessor.ZoneEra{}, fmt.Errorf("tzcompile: no rules named %q", l.Rules.Name)
		}
		era.Policy = policy
		// Low nibble is never read while Policy != nil (dstOffsetSeconds
		// only applies to ruleless eras), but biasing it to zero delta
		// avoids leaving a misleading non-neutral value in place.
		era.DeltaCode |= packDeltaCode(0) & 0x0f
	}

	return era, nil
}

// buildUntil packs a ZoneLine's UNTIL column into a ZoneUntil, defaulting
// any trailing field tzdata left unset (month/day/time) to the earliest
// possible value, per the UNTIL column's own documented convention.
func buildUntil(u tzdata.Until) tzprocessor.ZoneUntil {
	if !u.Defined {
		return tzprocessor.ZoneUntil{Defined: false}
	}

	month := uint8(1)
	if u.Parts.Has(tzdata.UntilMonth) {
		month = uint8(u.Month)
	}

	day := uint8(1)
	if u.Parts.Has(tzdata.UntilDay) {
		md := calcConcreteDay(int16(u.Year), month, u.Day)
		day = md
	}

	var at tzprocessor.PackedTime
	if u.Parts.Has(tzdata.UntilTime) {
		at = packTime(u.Time)
	}

	return tzprocessor.ZoneUntil{
		Defined: true,
		Year:    int16(u.Year),
		Month:   month,
		Day:     day,
		Time:    at,
	}
}

// calcConcreteDay resolves a zone UNTIL column's DAY form to a concrete
// day number. A weekday-relative UNTIL day ("Sun>=8"-style) is vanishingly
// rare in practice but is resolved the same way a rule's ON column would
// be, using the same on-or-after/on-or-before/last-weekday search so a
// pathological input still yields a sensible date.
func calcConcreteDay(year int16, month uint8, d tzdata.Day) uint8 {
	if d.Form == tzdata.DayFormDayNum {
		return uint8(d.Num)
	}

	daysInMonth := tzprocessor.DaysInMonth(year, month)
	switch d.Form {
	case tzdata.DayFormLast:
		target := isoWeekday(d.Day)
		for day := int(daysInMonth); day >= 1; day-- {
			if uint8(tzprocessor.DayOfWeek(year, month, uint8(day))) == target {
				return uint8(day)
			}
		}
	case tzdata.DayFormAfter:
		target := isoWeekday(d.Day)
		for day := d.Num; day <= int(daysInMonth); day++ {
			if uint8(tzprocessor.DayOfWeek(year, month, uint8(day))) == target {
				return uint8(day)
			}
		}
	case tzdata.DayFormBefore:
		target := isoWeekday(d.Day)
		for day := d.Num; day >= 1; day-- {
			if uint8(tzprocessor.DayOfWeek(year, month, uint8(day))) == target {
				return uint8(day)
			}
		}
	}
	return 1
}
