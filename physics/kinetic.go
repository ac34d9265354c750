package physics

import (
	"github.com/lixenwraith/sixer/core"
	"github.com/lixenwraith/sixer/vmath"
)

// Integrate advances position by one tick of velocity: p = p + v
func Integrate(k *core.Kinetic) {
	k.PreciseX += k.VelX
	k.PreciseY += k.VelY
}

// Accelerate adds a per-tick velocity delta
func Accelerate(k *core.Kinetic, ax, ay int64) {
	k.VelX += ax
	k.VelY += ay
}

// Damp scales velocity by factor (Q32.32), approaching rest asymptotically
func Damp(k *core.Kinetic, factor int64) {
	k.VelX = vmath.Mul(k.VelX, factor)
	k.VelY = vmath.Mul(k.VelY, factor)
}

// ClampToArea pins position inside the area, velocity untouched
func ClampToArea(k *core.Kinetic, a core.Area) {
	k.PreciseX, k.PreciseY = a.Clamp(k.PreciseX, k.PreciseY)
}

// OutOfBounds reports whether position is more than margin outside the area on any side
func OutOfBounds(k *core.Kinetic, a core.Area, margin int64) bool {
	minX := vmath.FromInt(a.X) - margin
	minY := vmath.FromInt(a.Y) - margin
	maxX := vmath.FromInt(a.X+a.Width) + margin
	maxY := vmath.FromInt(a.Y+a.Height) + margin
	return k.PreciseX < minX || k.PreciseX > maxX || k.PreciseY < minY || k.PreciseY > maxY
}

// SteerToward sets velocity toward (tx, ty) at the given speed
// Returns false and leaves velocity untouched when already at the target
func SteerToward(k *core.Kinetic, tx, ty, speed int64) bool {
	dx := tx - k.PreciseX
	dy := ty - k.PreciseY
	if dx == 0 && dy == 0 {
		return false
	}
	nx, ny := vmath.Normalize2D(dx, dy)
	k.VelX, k.VelY = vmath.ScaleVector(nx, ny, speed)
	return true
}
