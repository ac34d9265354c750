package system

import (
	"math"

	"github.com/lixenwraith/sixer/core"
	"github.com/lixenwraith/sixer/physics"
	"github.com/lixenwraith/sixer/rng"
	"github.com/lixenwraith/sixer/vmath"
)

// HitProfile holds the Q32.32 launch and pursuit constants
type HitProfile struct {
	DeceptiveSpeed int64
	UpwardBias     int64
	CleanSpeed     int64
	CleanArc       float64 // full arc around straight up, radians
	PursuitSpeed   int64
	ProtectRadius  int64
	TrailLimit     int
}

// HitResult is the outcome of a resolved swing
type HitResult struct {
	Ball *core.StruckBall
	// Designated is the fielder the deceptive ball was aimed at, -1 for a clean hit
	Designated int
	// Pursuers counts fielders armed toward the spawn point
	Pursuers int
}

// HitResolver computes the outgoing trajectory and arms fielder pursuit
type HitResolver struct {
	profile HitProfile
	rng     rng.Source
}

// NewHitResolver creates a resolver drawing randomness from src
func NewHitResolver(profile HitProfile, src rng.Source) *HitResolver {
	return &HitResolver{profile: profile, rng: src}
}

// Resolve replaces the delivery with a struck ball and sets fielder velocities
// The caller owns locking, clearing the delivery and scheduling the outcome
func (r *HitResolver) Resolve(d *core.Delivery, fielders []core.Fielder) HitResult {
	result := HitResult{Designated: -1}

	var vx, vy int64
	if d.Deceptive && len(fielders) > 0 {
		idx := r.rng.Intn(len(fielders))
		target := &fielders[idx]

		angle := vmath.Atan2(target.PreciseY-d.PreciseY, target.PreciseX-d.PreciseX)
		vx, vy = vmath.Polar(angle, r.profile.DeceptiveSpeed)
		vy += r.profile.UpwardBias

		target.Stop()
		result.Designated = idx
	} else {
		rad := -math.Pi/2 + (r.rng.Float64()-0.5)*r.profile.CleanArc
		vx, vy = vmath.Polar(vmath.FromRadians(rad), r.profile.CleanSpeed)
	}

	ball := core.NewStruckBall(d, vx, vy, r.profile.TrailLimit)
	result.Ball = ball

	for i := range fielders {
		f := &fielders[i]
		dx := ball.PreciseX - f.PreciseX
		dy := ball.PreciseY - f.PreciseY
		// Near a deceptive launch nobody needs to move
		if ball.Deceptive && !beyondRadius(dx, dy, r.profile.ProtectRadius) {
			continue
		}
		if physics.SteerToward(&f.Kinetic, ball.PreciseX, ball.PreciseY, r.profile.PursuitSpeed) {
			result.Pursuers++
		}
	}

	return result
}

func beyondRadius(dx, dy, radius int64) bool {
	return vmath.MagnitudeSq(dx, dy) > vmath.Mul(radius, radius)
}
