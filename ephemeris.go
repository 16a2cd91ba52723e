package vsop87

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/soniakeys/meeus/v3/julian"
	"golang.org/x/sync/errgroup"
)

const (
	// J2000 is the Julian date of the epoch J2000.0.
	J2000 = 2451545.0
	// JulianMillennium is the number of days per Julian millennium, the
	// time unit of the VSOP87 polynomial variable T.
	JulianMillennium = 365250.0
)

// Ephemeris holds the loaded VSOP87C series and optional precomputed daily
// tables for the eight major planets. Every field is written exactly once
// during Load and never mutated afterwards, so any number of goroutines may
// query positions concurrently without locking.
type Ephemeris struct {
	series  [numPlanets]planetSeries
	samples [numPlanets][]Position
	logger  kitlog.Logger
}

// Load reads the series file of every planet from cfg.SeriesDir and, when
// enabled, the matching precomputed table from cfg.PrecomputedDir, all
// concurrently. It must complete before any position is queried.
//
// A series file which is missing or malformed aborts the whole load: the
// error names the planet and file. Precomputed tables are an optimization,
// not a dependency; a missing or malformed table is logged at warning level
// and only forces that planet onto the live evaluation path.
func Load(cfg Config) (*Ephemeris, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	}
	logger = kitlog.With(logger, "subsys", "vsop87")
	e := &Ephemeris{logger: logger}
	var g errgroup.Group
	for _, planet := range Planets {
		p := planet
		g.Go(func() error {
			path := filepath.Join(cfg.SeriesDir, p.SeriesFile())
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("loading %s series from %s: %w", p, path, err)
			}
			defer f.Close()
			series, err := parseSeries(p, f)
			if err != nil {
				return fmt.Errorf("loading %s series from %s: %w", p, path, err)
			}
			e.series[p] = series
			return nil
		})
		if !cfg.Precomputed {
			continue
		}
		g.Go(func() error {
			path := filepath.Join(cfg.PrecomputedDir, p.PrecomputedFile())
			f, err := os.Open(path)
			if err != nil {
				logger.Log("level", "warning", "planet", p, "msg", "no precomputed table, using live path", "err", err)
				return nil
			}
			defer f.Close()
			samples, err := parsePrecomputed(p, f)
			if err != nil {
				logger.Log("level", "warning", "planet", p, "msg", "precomputed table rejected, using live path", "err", err)
				return nil
			}
			e.samples[p] = samples
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, p := range Planets {
		logger.Log("level", "info", "planet", p, "terms", e.series[p].numTerms(), "coverage", len(e.samples[p]))
	}
	return e, nil
}

// LoadReaders builds an ephemeris from per-planet series readers and
// optional precomputed readers, with the same error semantics as Load. It
// exists so the engine can be fed synthetic or embedded data; Load is the
// directory-based convenience for the standard VSOP87 distribution layout.
// Every planet must have a series reader.
func LoadReaders(series map[Planet]io.Reader, precomputed map[Planet]io.Reader, logger kitlog.Logger) (*Ephemeris, error) {
	if logger == nil {
		logger = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	}
	logger = kitlog.With(logger, "subsys", "vsop87")
	e := &Ephemeris{logger: logger}
	for _, p := range Planets {
		r, found := series[p]
		if !found {
			return nil, fmt.Errorf("loading %s series: no reader provided", p)
		}
		s, err := parseSeries(p, r)
		if err != nil {
			return nil, fmt.Errorf("loading %s series: %w", p, err)
		}
		e.series[p] = s
		pr, found := precomputed[p]
		if !found {
			continue
		}
		samples, err := parsePrecomputed(p, pr)
		if err != nil {
			logger.Log("level", "warning", "planet", p, "msg", "precomputed table rejected, using live path", "err", err)
			continue
		}
		e.samples[p] = samples
	}
	return e, nil
}

// Position computes the heliocentric ecliptic rectangular position of p at
// the given Julian Ephemeris Date.
//
// When the planet's precomputed table brackets jde, that is, both floor(jde)
// and floor(jde)+1 are covered days, the result is linearly interpolated
// between the two daily samples. Otherwise the full series is evaluated.
// Dates far outside the multi-millennium fit of VSOP87 still return a finite
// answer; the polynomial extrapolates and accuracy degrades, which is a
// documented limitation of the theory, not an error.
func (e *Ephemeris) Position(p Planet, jde float64) Position {
	d := math.Floor(jde)
	// Bounds are checked in float space: a huge jde must fall through to
	// the live path, not wrap around in the int conversion.
	if d >= 0 && d+1 < float64(len(e.samples[p])) {
		i := int(d)
		return lerp(e.samples[p][i], e.samples[p][i+1], jde-d)
	}
	return e.evaluate(p, jde)
}

// PositionAt computes the position of p at a civil time.
func (e *Ephemeris) PositionAt(p Planet, dt time.Time) Position {
	return e.Position(p, julian.TimeToJD(dt.UTC()))
}

// Coverage returns the number of consecutive daily samples precomputed for
// p, starting at JDE 0. Zero means every query for p runs the live series
// evaluation.
func (e *Ephemeris) Coverage(p Planet) int {
	return len(e.samples[p])
}

// evaluate sums the periodic series of every (axis, power) bucket at T and
// collapses the buckets into the degree-4 position polynomial. Terms are
// accumulated in file order so repeated calls are bit-identical.
func (e *Ephemeris) evaluate(p Planet, jde float64) Position {
	T := (jde - J2000) / JulianMillennium
	var sums [3][6]float64
	for axis := range e.series[p] {
		for power, terms := range e.series[p][axis] {
			s := 0.0
			for _, term := range terms {
				s += term.A * math.Cos(term.B+term.C*T)
			}
			sums[axis][power] = s
		}
	}
	var coord [3]float64
	for axis := 0; axis < 3; axis++ {
		tp := 1.0
		for power := 0; power <= 4; power++ {
			coord[axis] += sums[axis][power] * tp
			tp *= T
		}
	}
	return Position{X: coord[0], Y: coord[1], Z: coord[2]}
}
