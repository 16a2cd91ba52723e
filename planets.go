package vsop87

import (
	"fmt"
	"strings"
)

// Planet identifies one of the eight major planets covered by the VSOP87
// theory. The zero-based value doubles as the index into every per-planet
// table of the engine.
type Planet int

const (
	// Mercury is the closest planet to the Sun.
	Mercury Planet = iota
	// Venus is poisonous.
	Venus
	// Earth is home.
	Earth
	// Mars is the vacation place.
	Mars
	// Jupiter is big.
	Jupiter
	// Saturn floats and that's really cool.
	Saturn
	// Uranus is no joke.
	Uranus
	// Neptune is windy.
	Neptune
	numPlanets
)

// Planets lists the eight major planets in increasing distance from the Sun.
var Planets = [numPlanets]Planet{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune}

// ext holds the per-planet file extension used by the VSOP87 distribution.
var ext = [numPlanets]string{"mer", "ven", "ear", "mar", "jup", "sat", "ura", "nep"}

// String implements the Stringer interface.
func (p Planet) String() string {
	switch p {
	case Mercury:
		return "Mercury"
	case Venus:
		return "Venus"
	case Earth:
		return "Earth"
	case Mars:
		return "Mars"
	case Jupiter:
		return "Jupiter"
	case Saturn:
		return "Saturn"
	case Uranus:
		return "Uranus"
	case Neptune:
		return "Neptune"
	default:
		return fmt.Sprintf("Planet(%d)", int(p))
	}
}

// SeriesFile returns the canonical name of the planet's VSOP87C series file.
func (p Planet) SeriesFile() string {
	return "VSOP87C." + ext[p]
}

// PrecomputedFile returns the canonical name of the planet's precomputed
// daily table, as written by cmd/precompute.
func (p Planet) PrecomputedFile() string {
	return "VSOP87C." + ext[p] + ".precomp"
}

// PlanetFromString returns the planet from its name.
func PlanetFromString(name string) (Planet, error) {
	switch strings.ToLower(name) {
	case "mercury":
		return Mercury, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	case "uranus":
		return Uranus, nil
	case "neptune":
		return Neptune, nil
	default:
		return -1, fmt.Errorf("undefined planet '%s'", name)
	}
}
