package system

import (
	"github.com/lixenwraith/sixer/core"
	"github.com/lixenwraith/sixer/vmath"
)

// Interceptor tests the struck ball against fielder capture radii
type Interceptor struct {
	deceptiveRadius int64
	cleanRadius     int64
}

// NewInterceptor creates a check with separate radii for deceptive and clean balls
func NewInterceptor(deceptiveRadius, cleanRadius float64) *Interceptor {
	return &Interceptor{
		deceptiveRadius: vmath.FromFloat(deceptiveRadius),
		cleanRadius:     vmath.FromFloat(cleanRadius),
	}
}

// Radius returns the capture radius applied to the ball
func (i *Interceptor) Radius(b *core.StruckBall) int64 {
	if b.Deceptive {
		return i.deceptiveRadius
	}
	return i.cleanRadius
}

// Check returns the first fielder, in iteration order, strictly inside the
// capture radius while the ball is descending
func (i *Interceptor) Check(b *core.StruckBall, fielders []core.Fielder) (fielderID int, caught bool) {
	if b == nil || !b.Descending() {
		return -1, false
	}
	radius := i.Radius(b)
	for idx := range fielders {
		f := &fielders[idx]
		if vmath.WithinRadius(b.PreciseX-f.PreciseX, b.PreciseY-f.PreciseY, radius) {
			return f.ID, true
		}
	}
	return -1, false
}
