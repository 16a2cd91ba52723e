package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/soniakeys/meeus/v3/julian"

	vsop87 "github.com/erla2996/SolarSystem"
)

// NOTE: Point-query tool: prints the heliocentric ecliptic rectangular
// position of one planet at a given date, in AU.

var (
	planetName string
	jde        float64
	date       string
)

func init() {
	flag.StringVar(&planetName, "planet", "", "planet to query (e.g. Mars)")
	flag.Float64Var(&jde, "jde", 0, "Julian Ephemeris Date to query")
	flag.StringVar(&date, "date", "", "RFC3339 date to query instead of -jde (e.g. 2017-03-20T14:45:00Z)")
}

func main() {
	flag.Parse()
	if planetName == "" {
		fmt.Fprintln(os.Stderr, "-planet is required")
		flag.Usage()
		os.Exit(2)
	}
	p, err := vsop87.PlanetFromString(planetName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if date != "" {
		dt, err := time.Parse(time.RFC3339, date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot parse date: %s\n", err)
			os.Exit(2)
		}
		jde = julian.TimeToJD(dt.UTC())
	}
	cfg, err := vsop87.ReadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	eph, err := vsop87.Load(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	pos := eph.Position(p, jde)
	fmt.Printf("%s @ JDE %.6f: %s\n", p, jde, pos)
}
