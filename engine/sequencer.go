package engine

import (
	"github.com/lixenwraith/sixer/core"
	"github.com/lixenwraith/sixer/event"
)

// validTransitions is the sequencer graph, excluding restart
// Restart may leave any phase for Idle
var validTransitions = map[core.Phase][]core.Phase{
	core.PhaseIdle:              {core.PhaseCountdown},
	core.PhaseCountdown:         {core.PhaseDeliveryInFlight},
	core.PhaseDeliveryInFlight:  {core.PhaseResolutionPending, core.PhaseGameLost},
	core.PhaseResolutionPending: {core.PhaseAttemptSuccess, core.PhaseGameLost},
	core.PhaseAttemptSuccess:    {core.PhaseCountdown, core.PhaseGameWon, core.PhaseGameLost},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to core.Phase) bool {
	if to == core.PhaseIdle {
		return true
	}
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

// transition moves the session to a new phase and publishes the change
// Returns false and leaves state untouched for an invalid transition
func (s *Session) transition(to core.Phase) bool {
	from := s.phase
	if !CanTransition(from, to) {
		s.logger.Printf("[%s] rejected transition %s -> %s", s.id, from, to)
		return false
	}
	s.phase = to
	s.phaseTick = s.tick
	s.logger.Printf("[%s] tick %d: %s -> %s", s.id, s.tick, from, to)
	s.emit(event.EventPhaseChanged, event.ReasonNone, &event.PhaseChangePayload{From: from, To: to})
	return true
}

// advance runs the time-driven part of the sequencer for one tick
func (s *Session) advance() {
	switch s.phase {
	case core.PhaseCountdown:
		s.state.Countdown--
		if s.state.Countdown <= 0 {
			s.beginDelivery()
		}

	case core.PhaseAttemptSuccess:
		// Observable for the tick it was entered on
		if s.tick <= s.phaseTick {
			return
		}
		switch {
		case s.state.Consecutive >= s.tuning.Target:
			s.win()
		case s.state.Remaining > 0:
			s.enterCountdown()
		default:
			s.lose(event.ReasonExhausted)
		}
	}
}

// enterCountdown prepares the next attempt
func (s *Session) enterCountdown() {
	for i := range s.fielders {
		s.fielders[i].Reset()
	}
	s.state.Locked = false
	s.state.Countdown = s.tuning.CountdownTicks
	s.attempt = s.state.ScheduleIndex + 1
	if s.transition(core.PhaseCountdown) {
		s.emit(event.EventCountdown, event.ReasonNone, nil)
	}
}

// beginDelivery spawns the delivery for the current attempt
// The schedule index advances exactly once per attempt
func (s *Session) beginDelivery() {
	speed := s.tuning.SpeedSchedule[s.state.ScheduleIndex]
	s.state.ScheduleIndex++
	s.state.Countdown = 0

	deceptive := s.rng.Float64() < s.tuning.DeceptiveChance
	s.delivery = core.NewDelivery(s.tuning.BatsmanX, s.tuning.DeliverySpawnY, speed, deceptive, s.tuning.DeliveryTrailLength)
	s.delivery.Trail.Push(s.delivery.Pos())

	s.statDeliveries.Add(1)
	if deceptive {
		s.statDeceptive.Add(1)
	}

	if s.transition(core.PhaseDeliveryInFlight) {
		s.emit(event.EventDelivery, event.ReasonNone, &event.DeliveryPayload{Speed: speed, Deceptive: deceptive})
	}
}

// swing resolves an accepted action inside the timing window
func (s *Session) swing() {
	s.state.Locked = true

	res := s.resolver.Resolve(s.delivery, s.fielders)
	s.delivery = nil
	s.struck = res.Ball
	s.struck.Trail.Push(s.struck.Pos())
	s.statHits.Add(1)

	vel := s.struck.Vel()
	s.logger.Printf("[%s] hit: deceptive=%t designated=%d pursuers=%d vel=(%.2f,%.2f)",
		s.id, s.struck.Deceptive, res.Designated, res.Pursuers, vel.X, vel.Y)

	if !s.transition(core.PhaseResolutionPending) {
		return
	}
	s.emit(event.EventHit, event.ReasonNone, &event.HitPayload{
		Deceptive:  s.struck.Deceptive,
		Designated: res.Designated,
		VelX:       vel.X,
		VelY:       vel.Y,
	})

	attempt := s.attempt
	s.resolveTask = s.scheduler.Schedule(s.tick, uint64(s.tuning.ResolutionDelayTicks), s.generation, func() {
		s.resolveAttempt(attempt)
	})
}

// resolveAttempt is the deferred outcome of a hit
// A catch or a newer attempt makes it a no-op
func (s *Session) resolveAttempt(attempt int) {
	if s.phase != core.PhaseResolutionPending || s.attempt != attempt {
		return
	}
	s.resolveTask = 0
	s.struck = nil
	s.state.Consecutive++
	s.state.Remaining--
	s.runs += s.tuning.RunsPerSuccess
	s.statSuccesses.Add(1)

	if s.transition(core.PhaseAttemptSuccess) {
		s.emit(event.EventAttemptSucceeded, event.ReasonNone, nil)
	}
}

func (s *Session) win() {
	if s.transition(core.PhaseGameWon) {
		s.statWins.Add(1)
		s.emit(event.EventGameWon, event.ReasonNone, nil)
	}
}

// lose ends the session, clearing every projectile and pending resolution
func (s *Session) lose(reason event.Reason) {
	s.delivery = nil
	s.struck = nil
	if s.resolveTask != 0 {
		s.scheduler.Cancel(s.resolveTask)
		s.resolveTask = 0
	}
	s.reason = reason

	switch reason {
	case event.ReasonMistimed:
		s.statMistimed.Add(1)
	case event.ReasonMissed:
		s.statMissed.Add(1)
	case event.ReasonCaught:
		s.statCaught.Add(1)
	}

	if s.transition(core.PhaseGameLost) {
		s.emit(event.EventGameLost, reason, nil)
	}
}
