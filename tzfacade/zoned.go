package tzfacade

import "github.com/gopherzone/tzcore/tzprocessor"

// ZonedDateTime is an OffsetDateTime bound to the zone that produced it.
// Unlike OffsetDateTime it can be re-resolved: Convert re-derives the same
// instant in a different zone, and Normalize re-resolves its own fields
// after they've been mutated directly.
type ZonedDateTime struct {
	OffsetDateTime
	Zone     *tzprocessor.ZoneInfo
	Abbrev   string
	Resolved tzprocessor.Resolved
}

// FromEpochSeconds resolves epochSeconds against zone and returns the
// ZonedDateTime in force at that instant. Resolved is always
// tzprocessor.ResolvedUnique: an epoch-seconds instant never repeats, so
// there is nothing for a caller to disambiguate.
func FromEpochSeconds(p *tzprocessor.ZoneProcessor, zone *tzprocessor.ZoneInfo, epochSeconds int32) (ZonedDateTime, error) {
	p.InitForZoneInfo(zone)
	result, err := p.FindByEpochSeconds(epochSeconds)
	if err != nil {
		return ZonedDateTime{}, err
	}

	offsetSeconds := result.StdOffsetSeconds + result.DstOffsetSeconds
	odt := offsetDateTimeFromEpochSeconds(p.Epoch(), epochSeconds, offsetSeconds)
	return ZonedDateTime{OffsetDateTime: odt, Zone: zone, Abbrev: result.Abbrev, Resolved: result.Resolved}, nil
}

// FromLocalDateTime resolves the wall-clock fields against zone,
// disambiguating a gap or overlap per disambiguate. The returned fields
// are the caller's own year/month/day/hour/minute/second, unchanged: only
// OffsetSeconds, Abbrev and Resolved are computed — except in the gap
// case, where the instant the caller named does not exist on the clock at
// all, and the fields are normalised forward or backward across the gap
// to the transition side disambiguate selected.
func FromLocalDateTime(p *tzprocessor.ZoneProcessor, zone *tzprocessor.ZoneInfo, year int16, month, day, hour, minute, second uint8, disambiguate tzprocessor.Disambiguate) (ZonedDateTime, error) {
	p.InitForZoneInfo(zone)
	secOfDay := secondsOfDay(hour, minute, second)
	result, err := p.FindByLocalDateTime(year, month, day, secOfDay, disambiguate)
	if err != nil {
		return ZonedDateTime{}, err
	}

	reqOffset := result.ReqStdOffsetSeconds + result.ReqDstOffsetSeconds
	odt := OffsetDateTime{
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second,
		OffsetSeconds: reqOffset,
	}

	if result.Type == tzprocessor.FindResultGap {
		// The wall time the caller typed falls inside the gap: convert it
		// to an instant using the requested side's offset, then re-derive
		// the reported calendar fields using the target side's offset.
		targetOffset := result.StdOffsetSeconds + result.DstOffsetSeconds
		epochSeconds := epochSecondsFromOffsetDateTime(p.Epoch(), odt)
		odt = offsetDateTimeFromEpochSeconds(p.Epoch(), epochSeconds, targetOffset)
	} else {
		odt.OffsetSeconds = result.StdOffsetSeconds + result.DstOffsetSeconds
	}

	return ZonedDateTime{OffsetDateTime: odt, Zone: zone, Abbrev: result.Abbrev, Resolved: result.Resolved}, nil
}

// EpochSeconds returns the epoch-seconds instant z represents.
func (z ZonedDateTime) EpochSeconds(epoch tzprocessor.Epoch) int32 {
	return epochSecondsFromOffsetDateTime(epoch, z.OffsetDateTime)
}

// Convert re-resolves z's instant against target, via an epoch-seconds
// round trip: the result names the same instant in the wall clock of a
// different zone.
func Convert(p *tzprocessor.ZoneProcessor, epoch tzprocessor.Epoch, z ZonedDateTime, target *tzprocessor.ZoneInfo) (ZonedDateTime, error) {
	return FromEpochSeconds(p, target, z.EpochSeconds(epoch))
}

// Normalize re-resolves z's own calendar fields against z.Zone, the way a
// caller who mutated Year/Month/Day/Hour/Minute/Second directly (rather
// than going through FromLocalDateTime) must before trusting
// OffsetSeconds/Abbrev/Resolved again.
func Normalize(p *tzprocessor.ZoneProcessor, z ZonedDateTime, disambiguate tzprocessor.Disambiguate) (ZonedDateTime, error) {
	return FromLocalDateTime(p, z.Zone, z.Year, z.Month, z.Day, z.Hour, z.Minute, z.Second, disambiguate)
}
