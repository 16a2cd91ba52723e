package vsop87

// lerp interpolates component-wise between two consecutive daily samples
// with fractional weight 0 ≤ f < 1. Exact at both endpoints; never
// extrapolates beyond the bracketing pair.
func lerp(s0, s1 Position, f float64) Position {
	return Position{
		X: s0.X + f*(s1.X-s0.X),
		Y: s0.Y + f*(s1.Y-s0.Y),
		Z: s0.Z + f*(s1.Z-s0.Z),
	}
}
