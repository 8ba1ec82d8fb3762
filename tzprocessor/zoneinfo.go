package tzprocessor

// This file holds the compiled zone descriptor types the processor reads
// as static, immutable data, and the pure decode functions that unpack
// their bit-packed offset/delta/until/at fields into seconds. The packing
// matches the "mid" resolution variant documented in the reference
// library's zone_info.h: 15-minute STD offset and DST delta codes,
// 1-minute AT/UNTIL codes. A "high" (1-second) variant is not implemented
// here; see the compiled database builder in package tzcompile for the
// encode side of the same packing.

// PackedTime is the shared packing used for both a zone era's UNTIL and a
// zone rule's AT: a coarse 15-minute-unit Code plus a Modifier byte whose
// high nibble is the Suffix and low nibble is a 0-14 minute remainder.
type PackedTime struct {
	Code     int16
	Modifier uint8
}

// Seconds decodes the packed time into seconds-of-day.
func (p PackedTime) Seconds() int32 {
	return (int32(p.Code)*15 + int32(p.Modifier&0x0f)) * 60
}

// Suffix decodes the packed time's clock tag.
func (p PackedTime) Suffix() Suffix {
	return Suffix(p.Modifier & 0xf0)
}

// ZoneContext holds the constants shared by every zone descriptor
// compiled from one TZDB release: the valid year range the compiled data
// actually covers, the source version string, and the LETTER table that
// zone rules index into.
type ZoneContext struct {
	StartYear int16
	UntilYear int16
	Version   string
	Letters   []string
}

// letterAt returns the LETTER string at index idx, or "" if idx is out of
// range or conventionally points at the empty-string sentinel (index 0).
func (c *ZoneContext) letterAt(idx uint8) string {
	if c == nil || int(idx) >= len(c.Letters) {
		return ""
	}
	return c.Letters[idx]
}

// ZoneRule is one TZDB Rule line: a year range, an anchor day encoded per
// §4.8 (OnDayOfWeek, OnDayOfMonth), an AT time, a DST delta, and an index
// into the owning context's LETTER table.
type ZoneRule struct {
	FromYear int16
	ToYear   int16
	InMonth  uint8

	// OnDayOfWeek is 0 for "exactly OnDayOfMonth", otherwise 1-7 for
	// Monday..Sunday (matching DayOfWeek's own ISO numbering).
	OnDayOfWeek uint8
	// OnDayOfMonth is >=1 for "on or after", 0 for "last", and negative
	// for "on or before |OnDayOfMonth|".
	OnDayOfMonth int8

	At PackedTime

	// DeltaCode is a 4-bit-biased DST delta code: (DeltaCode-4)*15min,
	// stored in the low nibble to match the era DST delta packing.
	DeltaCode uint8

	LetterIndex uint8
}

func (r *ZoneRule) dstOffsetSeconds() int32 {
	return (int32(r.DeltaCode&0x0f) - 4) * 15 * 60
}

// ZonePolicy is a named DST rule set (e.g. "US", "EU").
type ZonePolicy struct {
	Name  string
	Rules []ZoneRule
}

// ZoneUntil is a zone era's UNTIL boundary: a calendar date plus a
// PackedTime for the time-of-day and suffix.
type ZoneUntil struct {
	Defined bool
	Year    int16
	Month   uint8
	Day     uint8
	Time    PackedTime
}

// ZoneEra is one line (initial or continuation) of a TZDB Zone record.
// Policy is nil for a "simple" era that applies a fixed DST delta instead
// of a named rule set.
type ZoneEra struct {
	Policy *ZonePolicy
	Format string

	// OffsetCode is a signed 15-minute STD offset code; DeltaCode's high
	// nibble supplies a 0-14 minute remainder, per §4.3.
	OffsetCode int8
	DeltaCode  uint8

	Until ZoneUntil
}

func (e *ZoneEra) stdOffsetSeconds() int32 {
	return 60 * (int32(e.OffsetCode)*15 + int32((e.DeltaCode&0xf0)>>4))
}

func (e *ZoneEra) dstOffsetSeconds() int32 {
	return (int32(e.DeltaCode&0x0f) - 4) * 15 * 60
}

// untilDateTuple expresses the era's UNTIL boundary as a DateTuple. An
// undefined UNTIL (the last era in a zone) is represented by the caller
// substituting a suitably distant sentinel; this package treats that as
// the caller's responsibility (see eraUntilParts in match.go).
func (e *ZoneEra) untilDateTuple() DateTuple {
	u := e.Until
	return DateTuple{u.Year, u.Month, u.Day, u.Time.Seconds(), u.Time.Suffix()}
}

// ZoneInfo is a compiled named zone entry: its eras in UNTIL-ascending
// order, a back-pointer to its shared ZoneContext, and an optional
// Target that redirects a LINK entry to the zone it aliases.
type ZoneInfo struct {
	Name    string
	ZoneID  uint32 // djb2 hash of Name; populated by the compiler, consumed by the registry.
	Context *ZoneContext
	Eras    []ZoneEra
	Target  *ZoneInfo
}

// IsLink reports whether this entry redirects to another zone. A link's
// own Eras (if any were compiled) are ignored in favour of its target's.
func (z *ZoneInfo) IsLink() bool { return z.Target != nil }

// resolve follows a LINK's Target, returning z unchanged if it is not a
// link. Every processor entry point calls this before iterating eras.
func (z *ZoneInfo) resolve() *ZoneInfo {
	if z.Target != nil {
		return z.Target.resolve()
	}
	return z
}
