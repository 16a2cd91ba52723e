package vsop87

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Position is a heliocentric ecliptic rectangular position in astronomical
// units, the native output frame of VSOP87C. Scaling to scene or display
// units is the caller's business.
type Position struct {
	X, Y, Z float64
}

// Vector returns the position as a gonum column vector.
func (p Position) Vector() *mat.VecDense {
	return mat.NewVecDense(3, []float64{p.X, p.Y, p.Z})
}

// R returns the heliocentric distance in AU.
func (p Position) R() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// String implements the Stringer interface.
func (p Position) String() string {
	return fmt.Sprintf("[%.9f %.9f %.9f] AU", p.X, p.Y, p.Z)
}
