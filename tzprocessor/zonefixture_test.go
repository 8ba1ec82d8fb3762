package tzprocessor

// Test fixtures for America/Los_Angeles and America/New_York, hand-packed
// rather than run through tzcompile: both zones share the US transition
// rules (second Sunday in March, first Sunday in November, both at 2:00
// wall) that have applied continuously since 2007, which covers every
// scenario these tests exercise.

var usLetters = []string{"", "S", "D"}

var usPolicy = &ZonePolicy{
	Name: "US",
	Rules: []ZoneRule{
		{
			// Mar Sun>=8 2:00w 1:00 D
			FromYear: 2007, ToYear: 9999, InMonth: 3,
			OnDayOfWeek: 7, OnDayOfMonth: 8, // 7 = Sunday (ISO numbering)
			At:          PackedTime{Code: 8, Modifier: 0x00}, // 02:00 wall
			DeltaCode:   8,                                   // (8-4)*15min = 60min
			LetterIndex: 2,                                   // "D"
		},
		{
			// Nov Sun>=1 2:00w 0:00 S
			FromYear: 2007, ToYear: 9999, InMonth: 11,
			OnDayOfWeek: 7, OnDayOfMonth: 1, // 7 = Sunday (ISO numbering)
			At:          PackedTime{Code: 8, Modifier: 0x00}, // 02:00 wall
			DeltaCode:   4,                                   // (4-4)*15min = 0
			LetterIndex: 1,                                   // "S"
		},
	},
}

func testContext() *ZoneContext {
	return &ZoneContext{StartYear: 2000, UntilYear: 2060, Version: "testdata", Letters: usLetters}
}

// losAngelesZoneInfo is UTC-8 standard, US DST rules, format "P%T" (PST/PDT).
func losAngelesZoneInfo() *ZoneInfo {
	ctx := testContext()
	return &ZoneInfo{
		Name:    "America/Los_Angeles",
		Context: ctx,
		Eras: []ZoneEra{
			{
				Policy:     usPolicy,
				Format:     "P%T",
				OffsetCode: -32, // -8h = -480min = -32*15
				DeltaCode:  0x00,
				Until:      ZoneUntil{Defined: false},
			},
		},
	}
}

// newYorkZoneInfo is UTC-5 standard, same US DST rules, format "E%T" (EST/EDT).
func newYorkZoneInfo() *ZoneInfo {
	ctx := testContext()
	return &ZoneInfo{
		Name:    "America/New_York",
		Context: ctx,
		Eras: []ZoneEra{
			{
				Policy:     usPolicy,
				Format:     "E%T",
				OffsetCode: -20, // -5h = -300min = -20*15
				DeltaCode:  0x00,
				Until:      ZoneUntil{Defined: false},
			},
		},
	}
}
