package tzcompile

import (
	"time"

	"github.com/gopherzone/tzcore/tzdata"
	"github.com/gopherzone/tzcore/tzprocessor"
)

// buildLetterTable collects every distinct LETTER value used across every
// rule line, reserving index 0 for the empty string, matching
// ZoneContext.letterAt's sentinel convention.
func buildLetterTable(rules []tzdata.RuleLine) []string {
	seen := map[string]uint8{"": 0}
	letters := []string{""}
	for _, r := range rules {
		if _, ok := seen[r.Letter]; ok {
			continue
		}
		seen[r.Letter] = uint8(len(letters))
		letters = append(letters, r.Letter)
	}
	return letters
}

func letterIndex(letters []string, letter string) uint8 {
	for i, l := range letters {
		if l == letter {
			return uint8(i)
		}
	}
	return 0
}

// clampYear maps a tzdata Year (possibly the sentinel MinYear/MaxYear for
// an unbounded rule) onto the int16 range tzprocessor's ZoneRule uses:
// "min" and any year below tzprocessor.MinYear become tzprocessor.MinYear,
// and "max" and any year above ctx.UntilYear become ctx.UntilYear.
func clampYear(y tzdata.Year, ctx *tzprocessor.ZoneContext) int16 {
	switch y {
	case tzdata.MinYear:
		return tzprocessor.MinYear
	case tzdata.MaxYear:
		return ctx.UntilYear
	default:
		if int(y) < int(tzprocessor.MinYear) {
			return tzprocessor.MinYear
		}
		if int(y) > int(ctx.UntilYear) {
			return ctx.UntilYear
		}
		return int16(y)
	}
}

// isoWeekday converts a time.Weekday (Sunday=0..Saturday=6) to the
// ISO numbering DayOfWeek and ZoneRule.OnDayOfWeek both use
// (Monday=1..Sunday=7).
func isoWeekday(d time.Weekday) uint8 {
	return uint8((int(d)+6)%7 + 1)
}

// buildRule converts one tzdata.RuleLine into a ZoneRule, resolving its
// ON-column day form into the (OnDayOfWeek, OnDayOfMonth) encoding §4.8
// describes.
func buildRule(r tzdata.RuleLine, ctx *tzprocessor.ZoneContext, letters []string) tzprocessor.ZoneRule {
	var onDow uint8
	var onDom int8

	switch r.On.Form {
	case tzdata.DayFormDayNum:
		onDow = 0
		onDom = int8(r.On.Num)
	case tzdata.DayFormLast:
		onDow = isoWeekday(r.On.Day)
		onDom = 0
	case tzdata.DayFormAfter:
		onDow = isoWeekday(r.On.Day)
		onDom = int8(r.On.Num)
	case tzdata.DayFormBefore:
		onDow = isoWeekday(r.On.Day)
		onDom = -int8(r.On.Num)
	}

	return tzprocessor.ZoneRule{
		FromYear:     clampYear(r.From, ctx),
		ToYear:       clampYear(r.To, ctx),
		InMonth:      uint8(r.In),
		OnDayOfWeek:  onDow,
		OnDayOfMonth: onDom,
		At:           packTime(r.At),
		DeltaCode:    packDeltaCode(secondsOf(r.Save.Duration)) & 0x0f,
		LetterIndex:  letterIndex(letters, r.Letter),
	}
}

// buildPolicies groups every rule line by NAME into a ZonePolicy, in the
// order rules first appear.
func buildPolicies(rules []tzdata.RuleLine, ctx *tzprocessor.ZoneContext, letters []string) map[string]*tzprocessor.ZonePolicy {
	policies := make(map[string]*tzprocessor.ZonePolicy)
	for _, r := range rules {
		p, ok := policies[r.Name]
		if !ok {
			p = &tzprocessor.ZonePolicy{Name: r.Name}
			policies[r.Name] = p
		}
		p.Rules = append(p.Rules, buildRule(r, ctx, letters))
	}
	return policies
}
