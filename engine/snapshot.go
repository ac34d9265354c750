package engine

import (
	"github.com/lixenwraith/sixer/core"
	"github.com/lixenwraith/sixer/event"
)

// BallView is a read-only copy of a ball entity
type BallView struct {
	Pos       core.Point
	Vel       core.Point
	Deceptive bool
	Trail     []core.Point
}

// FielderView is a read-only copy of a fielder
type FielderView struct {
	ID  int
	Pos core.Point
	Vel core.Point
}

// Snapshot is the complete observable state after a tick
// Owns all of its slices; safe to hand to another goroutine
type Snapshot struct {
	SessionID  string
	Tick       uint64
	Generation uint64
	Phase      core.Phase
	Reason     event.Reason
	Attempt    int

	Field    core.Area
	Fielding core.Area

	Delivery *BallView
	Struck   *BallView
	Fielders []FielderView

	Marker       core.Point
	WindowTop    float64
	WindowBottom float64

	Consecutive int
	Remaining   int
	Target      int
	Attempts    int
	Runs        int

	HasCountdown  bool
	Countdown     int // ticks left
	CountdownStep int // display count, CountdownSteps down to 1
}

// Snapshot copies the current state for presentation
func (s *Session) Snapshot() Snapshot {
	top, bottom := s.judge.Window(s.marker)
	snap := Snapshot{
		SessionID:    s.id,
		Tick:         s.tick,
		Generation:   s.generation,
		Phase:        s.phase,
		Reason:       s.reason,
		Attempt:      s.attempt,
		Field:        s.profile.Playfield,
		Fielding:     s.profile.Fielding,
		Marker:       s.marker.Pos(),
		WindowTop:    top,
		WindowBottom: bottom,
		Consecutive:  s.state.Consecutive,
		Remaining:    s.state.Remaining,
		Target:       s.tuning.Target,
		Attempts:     s.tuning.Attempts,
		Runs:         s.runs,
		Fielders:     make([]FielderView, len(s.fielders)),
	}

	if s.delivery != nil {
		snap.Delivery = &BallView{
			Pos:       s.delivery.Pos(),
			Vel:       s.delivery.Vel(),
			Deceptive: s.delivery.Deceptive,
			Trail:     s.delivery.Trail.Points(),
		}
	}
	if s.struck != nil {
		snap.Struck = &BallView{
			Pos:       s.struck.Pos(),
			Vel:       s.struck.Vel(),
			Deceptive: s.struck.Deceptive,
			Trail:     s.struck.Trail.Points(),
		}
	}
	for i := range s.fielders {
		f := &s.fielders[i]
		snap.Fielders[i] = FielderView{ID: f.ID, Pos: f.Pos(), Vel: f.Vel()}
	}

	if s.phase == core.PhaseCountdown {
		snap.HasCountdown = true
		snap.Countdown = s.state.Countdown
		snap.CountdownStep = countdownStep(s.state.Countdown, s.tuning.CountdownTicks, s.tuning.CountdownSteps)
	}
	return snap
}

// countdownStep maps remaining ticks onto steps..1, rounding up
func countdownStep(remaining, total, steps int) int {
	if remaining <= 0 || total <= 0 {
		return 0
	}
	return (remaining*steps + total - 1) / total
}
