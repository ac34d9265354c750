package core

import "github.com/lixenwraith/sixer/vmath"

// Kinetic is the shared motion state of every moving entity
type Kinetic struct {
	// PreciseX and PreciseY are playfield coordinates in Q32.32 format
	PreciseX, PreciseY int64
	// VelX and VelY are velocity in units per tick (Q32.32)
	VelX, VelY int64
}

// Pos returns the position as float coordinates
func (k Kinetic) Pos() Point {
	return Point{X: vmath.ToFloat(k.PreciseX), Y: vmath.ToFloat(k.PreciseY)}
}

// Vel returns the velocity as float components
func (k Kinetic) Vel() Point {
	return Point{X: vmath.ToFloat(k.VelX), Y: vmath.ToFloat(k.VelY)}
}

// SetPos places the entity at float coordinates
func (k *Kinetic) SetPos(x, y float64) {
	k.PreciseX, k.PreciseY = vmath.FromFloat(x), vmath.FromFloat(y)
}

// Stop zeroes velocity
func (k *Kinetic) Stop() {
	k.VelX, k.VelY = 0, 0
}
