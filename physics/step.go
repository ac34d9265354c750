package physics

import (
	"github.com/lixenwraith/sixer/core"
)

// Profile holds the Q32.32 constants of one physics step
type Profile struct {
	Gravity    int64 // added to struck-ball VelY every tick
	Damping    int64 // fielder velocity multiplier
	ExitMargin int64 // slack past the playfield before a struck ball is cleared
	MissY      int64 // delivery line past which an unhit ball is missed
	Playfield  core.Area
	Fielding   core.Area
}

// StepDelivery advances the delivery one tick
// Returns true once it has passed the miss line
func StepDelivery(d *core.Delivery, p *Profile) bool {
	Integrate(&d.Kinetic)
	d.Trail.Push(d.Pos())
	return d.PreciseY > p.MissY
}

// StepStruck advances the struck ball one tick under gravity
// Returns true once it has left the playfield plus margin
func StepStruck(b *core.StruckBall, p *Profile) bool {
	Integrate(&b.Kinetic)
	Accelerate(&b.Kinetic, 0, p.Gravity)
	b.Trail.Push(b.Pos())
	return OutOfBounds(&b.Kinetic, p.Playfield, p.ExitMargin)
}

// StepFielders moves, damps and clamps every fielder
func StepFielders(fielders []core.Fielder, p *Profile) {
	for i := range fielders {
		k := &fielders[i].Kinetic
		Integrate(k)
		Damp(k, p.Damping)
		ClampToArea(k, p.Fielding)
	}
}
