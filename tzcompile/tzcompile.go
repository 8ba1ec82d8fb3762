package tzcompile

import (
	"fmt"

	"github.com/gopherzone/tzcore/tzdata"
	"github.com/gopherzone/tzcore/tzprocessor"
	"github.com/gopherzone/tzcore/tzregistry"
)

// Compile builds one ZoneInfo per named zone in f, sharing a single
// ZoneContext (startYear/untilYear/version plus the combined LETTER
// table of every rule in f) across the whole database, and resolving
// LinkLines into Target pointers. Each returned ZoneInfo's ZoneID is the
// DJB2 hash of its own Name, ready for tzregistry.New.
func Compile(f tzdata.File, startYear, untilYear int16, version string) (map[string]*tzprocessor.ZoneInfo, error) {
	letters := buildLetterTable(f.RuleLines)
	ctx := &tzprocessor.ZoneContext{StartYear: startYear, UntilYear: untilYear, Version: version, Letters: letters}
	policies := buildPolicies(f.RuleLines, ctx, letters)

	zones := make(map[string]*tzprocessor.ZoneInfo)
	var order []string
	var lastName string
	grouped := make(map[string][]tzdata.ZoneLine)
	for _, l := range f.ZoneLines {
		if !l.Continuation {
			lastName = l.Name
			order = append(order, lastName)
		}
		grouped[lastName] = append(grouped[lastName], l)
	}

	for _, name := range order {
		lines := grouped[name]
		info := &tzprocessor.ZoneInfo{Name: name, Context: ctx, ZoneID: tzregistry.DJB2(name)}
		for _, l := range lines {
			era, err := buildEra(l, policies)
			if err != nil {
				return nil, fmt.Errorf("tzcompile: zone %s: %w", name, err)
			}
			info.Eras = append(info.Eras, era)
		}
		zones[name] = info
	}

	for _, link := range f.LinkLines {
		target, ok := zones[link.From]
		if !ok {
			return nil, fmt.Errorf("tzcompile: link %s -> %s: unknown target zone", link.To, link.From)
		}
		zones[link.To] = &tzprocessor.ZoneInfo{
			Name:    link.To,
			Context: ctx,
			ZoneID:  tzregistry.DJB2(link.To),
			Target:  target,
		}
	}

	return zones, nil
}
