package core

import "github.com/lixenwraith/sixer/vmath"

// Area represents a rectangular region in playfield units
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int
}

// Contains reports whether (x, y) lies inside the area, edges included
func (a Area) Contains(x, y float64) bool {
	return x >= float64(a.X) && x <= float64(a.X+a.Width) &&
		y >= float64(a.Y) && y <= float64(a.Y+a.Height)
}

// Clamp pins a Q32.32 position to the area
func (a Area) Clamp(x, y int64) (int64, int64) {
	return vmath.Clamp(x, vmath.FromInt(a.X), vmath.FromInt(a.X+a.Width)),
		vmath.Clamp(y, vmath.FromInt(a.Y), vmath.FromInt(a.Y+a.Height))
}

// Inside reports whether the other area is fully contained
func (a Area) Inside(outer Area) bool {
	return a.X >= outer.X && a.Y >= outer.Y &&
		a.X+a.Width <= outer.X+outer.Width &&
		a.Y+a.Height <= outer.Y+outer.Height
}
