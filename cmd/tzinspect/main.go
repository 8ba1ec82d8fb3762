// Command tzinspect resolves a single instant against one zone from a raw
// IANA TZDB source file, printing the offset/abbreviation tzprocessor
// finds for it. It is a manual smoke-test entry point for the
// tzdata -> tzcompile -> tzregistry -> tzprocessor -> tzfacade pipeline,
// not a supported tool in its own right.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gopherzone/tzcore/tzcompile"
	"github.com/gopherzone/tzcore/tzdata"
	"github.com/gopherzone/tzcore/tzfacade"
	"github.com/gopherzone/tzcore/tzprocessor"
	"github.com/gopherzone/tzcore/tzregistry"
)

var (
	zoneFlag        = flag.String("zone", "", "zone name to resolve, e.g. America/Los_Angeles")
	epochFlag       = flag.Int64("epoch", 0, "epoch seconds (relative to -epoch-year) to resolve; mutually exclusive with -local")
	localFlag       = flag.String("local", "", "local date-time to resolve, as YYYY-MM-DDTHH:MM:SS; mutually exclusive with -epoch")
	disambigFlag    = flag.String("disambiguate", "compatible", "gap/overlap disambiguation for -local: compatible, earlier, later, reversed")
	epochYearFlag   = flag.Int("epoch-year", int(tzprocessor.DefaultEpochYear), "current epoch year for epoch-seconds arithmetic")
	startYearFlag   = flag.Int("start-year", 2000, "earliest year to compile rules for")
	untilYearFlag   = flag.Int("until-year", 2060, "latest year to compile rules for")
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 || *zoneFlag == "" {
		fmt.Println("Usage: tzinspect -zone <name> [-epoch <seconds> | -local <YYYY-MM-DDTHH:MM:SS>] <tzdata file>")
		os.Exit(1)
	}

	if err := run(args[0]); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	f, err := tzdata.Parse(strings.NewReader(string(b)))
	if err != nil {
		return fmt.Errorf("parsing tzdata source: %w", err)
	}

	zones, err := tzcompile.Compile(f, int16(*startYearFlag), int16(*untilYearFlag), "tzinspect")
	if err != nil {
		return fmt.Errorf("compiling: %w", err)
	}

	infos := make([]*tzprocessor.ZoneInfo, 0, len(zones))
	for _, z := range zones {
		infos = append(infos, z)
	}
	registry := tzregistry.New(infos)

	zoneInfo, err := registry.Lookup(*zoneFlag)
	if err != nil {
		return err
	}

	epoch := tzprocessor.NewEpoch(int16(*epochYearFlag))
	p := tzprocessor.NewZoneProcessor(epoch)

	var zdt tzfacade.ZonedDateTime
	if *localFlag != "" {
		year, month, day, hour, minute, second, err := parseLocal(*localFlag)
		if err != nil {
			return err
		}
		zdt, err = tzfacade.FromLocalDateTime(p, zoneInfo, year, month, day, hour, minute, second, parseDisambiguate(*disambigFlag))
		if err != nil {
			return err
		}
	} else {
		zdt, err = tzfacade.FromEpochSeconds(p, zoneInfo, int32(*epochFlag))
		if err != nil {
			return err
		}
	}

	printResult(zdt)
	return nil
}

func parseLocal(s string) (year int16, month, day, hour, minute, second uint8, err error) {
	datePart, timePart, ok := strings.Cut(s, "T")
	if !ok {
		return 0, 0, 0, 0, 0, 0, fmt.Errorf("tzinspect: -local must look like YYYY-MM-DDTHH:MM:SS, got %q", s)
	}
	dateFields := strings.Split(datePart, "-")
	timeFields := strings.Split(timePart, ":")
	if len(dateFields) != 3 || len(timeFields) != 3 {
		return 0, 0, 0, 0, 0, 0, fmt.Errorf("tzinspect: -local must look like YYYY-MM-DDTHH:MM:SS, got %q", s)
	}

	y, err := strconv.Atoi(dateFields[0])
	if err != nil {
		return 0, 0, 0, 0, 0, 0, err
	}
	m, err := strconv.Atoi(dateFields[1])
	if err != nil {
		return 0, 0, 0, 0, 0, 0, err
	}
	d, err := strconv.Atoi(dateFields[2])
	if err != nil {
		return 0, 0, 0, 0, 0, 0, err
	}
	hh, err := strconv.Atoi(timeFields[0])
	if err != nil {
		return 0, 0, 0, 0, 0, 0, err
	}
	mm, err := strconv.Atoi(timeFields[1])
	if err != nil {
		return 0, 0, 0, 0, 0, 0, err
	}
	ss, err := strconv.Atoi(timeFields[2])
	if err != nil {
		return 0, 0, 0, 0, 0, 0, err
	}

	return int16(y), uint8(m), uint8(d), uint8(hh), uint8(mm), uint8(ss), nil
}

func parseDisambiguate(s string) tzprocessor.Disambiguate {
	switch strings.ToLower(s) {
	case "earlier":
		return tzprocessor.DisambiguateEarlier
	case "later":
		return tzprocessor.DisambiguateLater
	case "reversed":
		return tzprocessor.DisambiguateReversed
	default:
		return tzprocessor.DisambiguateCompatible
	}
}

func printResult(z tzfacade.ZonedDateTime) {
	fmt.Printf("%04d-%02d-%02dT%02d:%02d:%02d %s (offset %s, resolved=%d)\n",
		z.Year, z.Month, z.Day, z.Hour, z.Minute, z.Second,
		z.Abbrev, offsetString(z.OffsetSeconds), z.Resolved)
}

func offsetString(offsetSeconds int32) string {
	sign := "+"
	if offsetSeconds < 0 {
		sign = "-"
		offsetSeconds = -offsetSeconds
	}
	return fmt.Sprintf("%s%02d:%02d", sign, offsetSeconds/3600, (offsetSeconds%3600)/60)
}
