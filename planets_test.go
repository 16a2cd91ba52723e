package vsop87

import (
	"strings"
	"testing"
)

func TestPlanetRoundTrip(t *testing.T) {
	for _, p := range Planets {
		got, err := PlanetFromString(p.String())
		if err != nil {
			t.Fatalf("err %s", err)
		}
		if got != p {
			t.Fatalf("%s round-tripped to %s", p, got)
		}
		// lookup is case-insensitive
		got, err = PlanetFromString(strings.ToUpper(p.String()))
		if err != nil || got != p {
			t.Fatalf("uppercase lookup of %s failed", p)
		}
	}
	if _, err := PlanetFromString("Pluto"); err == nil {
		t.Fatal("Pluto is not a planet and had that down ranking coming")
	}
}

func TestPlanetFiles(t *testing.T) {
	for _, exp := range []struct {
		planet Planet
		series string
	}{
		{Mercury, "VSOP87C.mer"},
		{Venus, "VSOP87C.ven"},
		{Earth, "VSOP87C.ear"},
		{Mars, "VSOP87C.mar"},
		{Jupiter, "VSOP87C.jup"},
		{Saturn, "VSOP87C.sat"},
		{Uranus, "VSOP87C.ura"},
		{Neptune, "VSOP87C.nep"},
	} {
		if got := exp.planet.SeriesFile(); got != exp.series {
			t.Fatalf("%s series file %s, expected %s", exp.planet, got, exp.series)
		}
		if got := exp.planet.PrecomputedFile(); got != exp.series+".precomp" {
			t.Fatalf("%s precomputed file %s", exp.planet, got)
		}
	}
}
