package vsop87

import (
	"io"
	"math"
	"os"
	"strings"
	"testing"

	kitlog "github.com/go-kit/kit/log"
	"github.com/soniakeys/meeus/v3/julian"
	"gonum.org/v1/gonum/floats/scalar"
)

// newTestEphemeris returns an empty ephemeris for tests to fill in directly.
func newTestEphemeris() *Ephemeris {
	return &Ephemeris{logger: kitlog.NewNopLogger()}
}

func TestClosedFormSingleTerm(t *testing.T) {
	// One term A=2, B=0, C=0 on (X, T**0): cos(0)=1, no higher powers, so
	// X is exactly 2 at any date.
	eph := newTestEphemeris()
	eph.series[Mercury][0][0] = []seriesTerm{{A: 2}}
	for _, jde := range []float64{0, 1, J2000, 2456346.2539, -1e6, 1e7} {
		pos := eph.Position(Mercury, jde)
		if pos.X != 2 || pos.Y != 0 || pos.Z != 0 {
			t.Fatalf("jde %f: %s, expected exactly [2 0 0]", jde, pos)
		}
	}
}

func TestPolynomial(t *testing.T) {
	// X = 1 + 3T; at T=2 the position must be exactly 7.
	eph := newTestEphemeris()
	eph.series[Earth][0][0] = []seriesTerm{{A: 1}}
	eph.series[Earth][0][1] = []seriesTerm{{A: 3}}
	jde := J2000 + 2*JulianMillennium
	if pos := eph.Position(Earth, jde); pos.X != 7 {
		t.Fatalf("got %s, expected X=7", pos)
	}
}

func TestDeterminism(t *testing.T) {
	f, err := os.Open("testdata/VSOP87C.mer")
	if err != nil {
		t.Fatalf("err %s", err)
	}
	defer f.Close()
	series, err := parseSeries(Mercury, f)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	eph := newTestEphemeris()
	eph.series[Mercury] = series
	for _, jde := range []float64{0, J2000, 2456346.2539} {
		p1 := eph.Position(Mercury, jde)
		p2 := eph.Position(Mercury, jde)
		if p1 != p2 {
			t.Fatalf("jde %f: %s != %s", jde, p1, p2)
		}
	}
}

func TestFiniteResults(t *testing.T) {
	f, err := os.Open("testdata/VSOP87C.mer")
	if err != nil {
		t.Fatalf("err %s", err)
	}
	defer f.Close()
	series, err := parseSeries(Mercury, f)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	eph := newTestEphemeris()
	eph.series[Mercury] = series
	// Includes dates far outside the fit of the theory: the polynomial
	// extrapolates but must stay numeric.
	for _, jde := range []float64{-1e7, -4e5, 0, 1e5, J2000, 2456346.2539, 3e6, 1e8} {
		pos := eph.Position(Mercury, jde)
		for i, c := range []float64{pos.X, pos.Y, pos.Z} {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				t.Fatalf("jde %g: non-finite coordinate %d in %s", jde, i, pos)
			}
		}
	}
}

func TestInterpolationExactAtSamples(t *testing.T) {
	eph := newTestEphemeris()
	eph.series[Venus][0][0] = []seriesTerm{{A: 1}}
	eph.samples[Venus] = []Position{
		{1, 10, 100},
		{2, 20, 200},
		{3, 30, 300},
	}
	// Integer days inside coverage return the raw sample, bit for bit.
	for d := 0; d < 2; d++ {
		if pos := eph.Position(Venus, float64(d)); pos != eph.samples[Venus][d] {
			t.Fatalf("day %d: %s != sample %s", d, pos, eph.samples[Venus][d])
		}
	}
	// Midpoint of the first bracket.
	if pos := eph.Position(Venus, 0.5); pos != (Position{1.5, 15, 150}) {
		t.Fatalf("midpoint %s", pos)
	}
	// Day 2 has no bracketing day 3: live path takes over.
	if pos := eph.Position(Venus, 2); pos.X != 1 || pos.Y != 0 {
		t.Fatalf("beyond coverage: %s, expected the live value [1 0 0]", pos)
	}
}

func TestCacheFallbackWithoutCoverage(t *testing.T) {
	eph := newTestEphemeris()
	eph.series[Saturn][0][0] = []seriesTerm{{A: 4}}
	for _, jde := range []float64{-10, 0, 0.5, 1, 12345.678} {
		if pos := eph.Position(Saturn, jde); pos.X != 4 {
			t.Fatalf("jde %f: %s, expected the live value [4 0 0]", jde, pos)
		}
	}
}

func TestBoundaryAgreement(t *testing.T) {
	// A series linear in T: both paths compute the same line, so cached
	// interpolation and live evaluation must agree to well below 1e-6 AU
	// on either side of the coverage boundary.
	eph := newTestEphemeris()
	eph.series[Mars][0][0] = []seriesTerm{{A: 1}}
	eph.series[Mars][0][1] = []seriesTerm{{A: 0.5}}
	eph.series[Mars][1][0] = []seriesTerm{{A: -2}}
	eph.series[Mars][1][1] = []seriesTerm{{A: 0.25}}
	const n = 10
	samples := make([]Position, n)
	for d := 0; d < n; d++ {
		samples[d] = eph.evaluate(Mars, float64(d))
	}
	eph.samples[Mars] = samples
	for _, jde := range []float64{8.25, 8.75, 8.999, 9.001, 9.5, 10.25} {
		cachedOrLive := eph.Position(Mars, jde)
		live := eph.evaluate(Mars, jde)
		if !scalar.EqualWithinAbs(cachedOrLive.X, live.X, 1e-6) ||
			!scalar.EqualWithinAbs(cachedOrLive.Y, live.Y, 1e-6) {
			t.Fatalf("jde %f: cached %s vs live %s", jde, cachedOrLive, live)
		}
	}
}

func TestContinuity(t *testing.T) {
	f, err := os.Open("testdata/VSOP87C.mer")
	if err != nil {
		t.Fatalf("err %s", err)
	}
	defer f.Close()
	series, err := parseSeries(Mercury, f)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	eph := newTestEphemeris()
	eph.series[Mercury] = series
	const ε = 1e-9
	for _, jde := range []float64{0, J2000, 2456346.2539} {
		p1 := eph.Position(Mercury, jde)
		p2 := eph.Position(Mercury, jde+ε)
		if math.Abs(p1.X-p2.X) > 1e-6 || math.Abs(p1.Y-p2.Y) > 1e-6 || math.Abs(p1.Z-p2.Z) > 1e-6 {
			t.Fatalf("jde %f: discontinuity %s vs %s", jde, p1, p2)
		}
	}
}

func TestPositionAt(t *testing.T) {
	// With a constant series the civil-time entry point must match the JDE
	// one exactly, whatever rounding the time conversion introduces.
	eph := newTestEphemeris()
	eph.series[Neptune][0][0] = []seriesTerm{{A: 30.1}}
	dt := julian.JDToTime(2456346.2539)
	if pos := eph.PositionAt(Neptune, dt); pos.X != 30.1 {
		t.Fatalf("got %s, expected X=30.1", pos)
	}
}

func TestLoadReaders(t *testing.T) {
	series := make(map[Planet]io.Reader, len(Planets))
	for _, p := range Planets {
		series[p] = strings.NewReader(seriesHeader(p, 0, 0, 1) + "\n" + termLine(float64(p)+1, 0, 0))
	}
	precomputed := map[Planet]io.Reader{
		Earth:   strings.NewReader("2\n5 6 7\n8 9 10\n"),
		Jupiter: strings.NewReader("bad\n"),
	}
	eph, err := LoadReaders(series, precomputed, kitlog.NewNopLogger())
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if pos := eph.Position(Uranus, J2000); pos.X != float64(Uranus)+1 {
		t.Fatalf("Uranus %s", pos)
	}
	if eph.Coverage(Earth) != 2 {
		t.Fatalf("Earth coverage %d", eph.Coverage(Earth))
	}
	if eph.Coverage(Jupiter) != 0 {
		t.Fatal("bad Jupiter table was not dropped")
	}
	if pos := eph.Position(Earth, 0.5); pos != (Position{6.5, 7.5, 8.5}) {
		t.Fatalf("Earth interpolated %s", pos)
	}

	// A planet without a series reader is a hard failure.
	series = make(map[Planet]io.Reader, len(Planets)-1)
	for _, p := range Planets {
		if p == Venus {
			continue
		}
		series[p] = strings.NewReader(seriesHeader(p, 0, 0, 1) + "\n" + termLine(1, 0, 0))
	}
	if _, err = LoadReaders(series, nil, kitlog.NewNopLogger()); err == nil {
		t.Fatal("no error for a missing series reader")
	}
}
