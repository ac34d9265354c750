package system

import (
	"github.com/lixenwraith/sixer/core"
	"github.com/lixenwraith/sixer/vmath"
)

// TimingJudge decides whether a swing lands in the scoring window
// Pure function of state
type TimingJudge struct {
	halfWidth int64
}

// NewTimingJudge creates a judge with the given window half-width
func NewTimingJudge(halfWidth float64) *TimingJudge {
	return &TimingJudge{halfWidth: vmath.FromFloat(halfWidth)}
}

// Judge returns true iff the delivery lies within
// [ReferenceY - halfWidth, ReferenceY + halfWidth]; false without a delivery
func (j *TimingJudge) Judge(d *core.Delivery, m core.BattingMarker) bool {
	if d == nil {
		return false
	}
	return vmath.Abs(d.PreciseY-m.ReferenceY()) <= j.halfWidth
}

// Window returns the inclusive window bounds in playfield units
func (j *TimingJudge) Window(m core.BattingMarker) (top, bottom float64) {
	return vmath.ToFloat(m.ReferenceY() - j.halfWidth), vmath.ToFloat(m.ReferenceY() + j.halfWidth)
}
