// Package vsop87 computes heliocentric ecliptic rectangular positions of the
// eight major planets by evaluating the VSOP87C semi-analytic planetary
// theory: a degree-4 polynomial in Julian millennia whose coefficients are
// sums of periodic amplitude/phase/frequency terms fit to centuries of
// ephemeris data.
//
// All data loads once, up front:
//
//	cfg, err := vsop87.ReadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//	eph, err := vsop87.Load(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	pos := eph.Position(vsop87.Mars, 2456346.25)
//	fmt.Printf("Mars: %s (r=%f AU)\n", pos, pos.R())
//
// Once Load returns, the ephemeris is immutable and queries are pure reads,
// safe from any number of goroutines. When a precomputed daily table (see
// cmd/precompute) covers the requested date, the query is answered by linear
// interpolation between the two bracketing samples; otherwise the full series
// is summed live. Both paths approximate the same physical quantity, so a
// query crossing the coverage boundary moves between them smoothly to within
// the interpolation error.
//
// Positions are in astronomical units. Results are deterministic: the same
// planet, date and loaded data always return bit-identical coordinates.
package vsop87
