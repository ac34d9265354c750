package vmath

// MagnitudeSq returns squared magnitude without sqrt
func MagnitudeSq(x, y int64) int64 {
	return Mul(x, x) + Mul(y, y)
}

// Magnitude returns true Euclidean length sqrt(x² + y²)
func Magnitude(x, y int64) int64 {
	return Sqrt(MagnitudeSq(x, y))
}

// Normalize2D returns unit vector in Q32.32, zero-safe
func Normalize2D(x, y int64) (nx, ny int64) {
	mag := Magnitude(x, y)
	if mag == 0 {
		return 0, 0
	}
	return Div(x, mag), Div(y, mag)
}

// ScaleVector multiplies vector by scalar factor
func ScaleVector(x, y, factor int64) (sx, sy int64) {
	return Mul(x, factor), Mul(y, factor)
}

// Polar returns the vector of the given magnitude along angle (Scale = 2π)
func Polar(angle, magnitude int64) (x, y int64) {
	return Mul(Cos(angle), magnitude), Mul(Sin(angle), magnitude)
}

// WithinRadius reports whether (dx, dy) is strictly shorter than radius
// Compares squared lengths, no sqrt
func WithinRadius(dx, dy, radius int64) bool {
	return MagnitudeSq(dx, dy) < Mul(radius, radius)
}
