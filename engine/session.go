// Package engine runs the timing-and-fielding simulation on a fixed tick
package engine

import (
	"fmt"
	"io"
	"log"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lixenwraith/sixer/config"
	"github.com/lixenwraith/sixer/core"
	"github.com/lixenwraith/sixer/event"
	"github.com/lixenwraith/sixer/physics"
	"github.com/lixenwraith/sixer/rng"
	"github.com/lixenwraith/sixer/status"
	"github.com/lixenwraith/sixer/system"
	"github.com/lixenwraith/sixer/vmath"
)

// Option configures a Session at construction
type Option func(*Session)

// WithLogger routes session diagnostics to l
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRegistry shares a status registry across sessions
func WithRegistry(r *status.Registry) Option {
	return func(s *Session) {
		if r != nil {
			s.stats = r
		}
	}
}

// WithID overrides the generated session identifier
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// Session owns all simulation state of one game
// Not safe for concurrent use: Tick, Action, Start and Snapshot must be called
// from one goroutine; only the event queue and status registry are shared
type Session struct {
	id     string
	tuning config.Tuning
	rng    rng.Source
	logger *log.Logger

	profile     physics.Profile
	judge       *system.TimingJudge
	resolver    *system.HitResolver
	interceptor *system.Interceptor
	marker      core.BattingMarker

	phase     core.Phase
	phaseTick uint64
	state     core.AttemptState
	attempt   int
	runs      int
	reason    event.Reason

	delivery *core.Delivery
	struck   *core.StruckBall
	fielders []core.Fielder

	tick        uint64
	generation  uint64
	scheduler   *Scheduler
	resolveTask TaskID

	events *event.Queue
	stats  *status.Registry

	// Cached metric pointers
	statTicks      *atomic.Int64
	statSessions   *atomic.Int64
	statDeliveries *atomic.Int64
	statDeceptive  *atomic.Int64
	statHits       *atomic.Int64
	statSuccesses  *atomic.Int64
	statMistimed   *atomic.Int64
	statMissed     *atomic.Int64
	statCaught     *atomic.Int64
	statWins       *atomic.Int64
}

// NewSession validates the tuning and builds an Idle session
// src supplies every random draw: deceptive rolls, fielder targeting and clean launch angles
func NewSession(t config.Tuning, src rng.Source, opts ...Option) (*Session, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("session tuning: %w", err)
	}
	if src == nil {
		return nil, fmt.Errorf("session tuning: %w: nil random source", config.ErrInvalidTuning)
	}

	s := &Session{
		id:     uuid.NewString(),
		tuning: t,
		rng:    src,
		logger: log.New(io.Discard, "", 0),
		events: event.NewQueue(),
		stats:  status.NewRegistry(),
		phase:  core.PhaseIdle,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.profile = physics.Profile{
		Gravity:    vmath.FromFloat(t.Gravity),
		Damping:    vmath.FromFloat(t.FielderDamping),
		ExitMargin: vmath.FromFloat(t.ExitMargin),
		MissY:      vmath.FromFloat(t.BatsmanY + t.MissMargin),
		Playfield:  t.Playfield(),
		Fielding:   t.Fielding(),
	}
	s.marker = core.NewBattingMarker(t.BatsmanX, t.BatsmanY, t.WindowOffset)
	s.judge = system.NewTimingJudge(t.WindowHalfWidth)
	s.resolver = system.NewHitResolver(system.HitProfile{
		DeceptiveSpeed: vmath.FromFloat(t.DeceptiveHitSpeed),
		UpwardBias:     vmath.FromFloat(t.DeceptiveUpwardBias),
		CleanSpeed:     vmath.FromFloat(t.CleanHitSpeed),
		CleanArc:       t.CleanLaunchArc,
		PursuitSpeed:   vmath.FromFloat(t.PursuitSpeed),
		ProtectRadius:  vmath.FromFloat(t.ProtectRadius),
		TrailLimit:     t.StruckTrailLength,
	}, src)
	s.interceptor = system.NewInterceptor(t.CaptureRadiusDeceptive, t.CaptureRadiusClean)

	s.fielders = make([]core.Fielder, len(t.FielderLayout))
	for i, pos := range t.FielderLayout {
		s.fielders[i] = core.NewFielder(i, pos[0], pos[1])
	}

	s.statTicks = s.stats.Counter(status.KeyTicks)
	s.statSessions = s.stats.Counter(status.KeySessions)
	s.statDeliveries = s.stats.Counter(status.KeyDeliveries)
	s.statDeceptive = s.stats.Counter(status.KeyDeceptive)
	s.statHits = s.stats.Counter(status.KeyHits)
	s.statSuccesses = s.stats.Counter(status.KeySuccesses)
	s.statMistimed = s.stats.Counter(status.KeyMistimed)
	s.statMissed = s.stats.Counter(status.KeyMissed)
	s.statCaught = s.stats.Counter(status.KeyCaught)
	s.statWins = s.stats.Counter(status.KeyWins)
	s.scheduler = NewScheduler(s.stats.Counter(status.KeyStaleTasks))

	s.state.Remaining = t.Attempts
	return s, nil
}

// ID returns the session identifier
func (s *Session) ID() string { return s.id }

// Phase returns the current sequencer phase
func (s *Session) Phase() core.Phase { return s.phase }

// Generation returns the restart counter; deferred work from older generations is inert
func (s *Session) Generation() uint64 { return s.generation }

// TickCount returns the number of ticks simulated since construction
func (s *Session) TickCount() uint64 { return s.tick }

// Reason returns the cause of the last loss, empty otherwise
func (s *Session) Reason() event.Reason { return s.reason }

// State returns a copy of the attempt counters
func (s *Session) State() core.AttemptState { return s.state }

// Runs returns the score of the current session
func (s *Session) Runs() int { return s.runs }

// Events returns the presentation event queue
func (s *Session) Events() *event.Queue { return s.events }

// Drain consumes every queued event in emission order
func (s *Session) Drain() []event.GameEvent { return s.events.Consume() }

// Stats returns the status registry
func (s *Session) Stats() *status.Registry { return s.stats }

// Tuning returns the validated tuning the session was built with
func (s *Session) Tuning() config.Tuning { return s.tuning }

// Start resets the session and begins the first countdown
// Valid from any phase; calling it twice yields the same fresh state
func (s *Session) Start() {
	s.generation++
	s.scheduler.CancelAll()
	s.resolveTask = 0
	// Undrained events belong to the previous game
	s.events.Reset()

	s.delivery = nil
	s.struck = nil
	for i := range s.fielders {
		s.fielders[i].Reset()
	}
	s.state = core.AttemptState{Remaining: s.tuning.Attempts}
	s.attempt = 0
	s.runs = 0
	s.reason = event.ReasonNone
	s.statSessions.Add(1)

	s.logger.Printf("[%s] start generation %d", s.id, s.generation)
	if s.phase != core.PhaseIdle {
		s.transition(core.PhaseIdle)
	}
	s.enterCountdown()
}

// Restart is Start invoked from a terminal or in-progress session
func (s *Session) Restart() {
	s.Start()
}

// Action is the single player input
// Ignored unless a delivery is in flight and the swing lock is free
func (s *Session) Action() {
	if s.phase != core.PhaseDeliveryInFlight || s.state.Locked || s.delivery == nil {
		return
	}
	if s.judge.Judge(s.delivery, s.marker) {
		s.swing()
		return
	}
	s.logger.Printf("[%s] mistimed at y=%.2f", s.id, s.delivery.Pos().Y)
	s.lose(event.ReasonMistimed)
}

// Tick advances the simulation by one fixed step
func (s *Session) Tick() {
	s.tick++
	s.statTicks.Add(1)

	s.stepDelivery()
	s.stepStruck()
	physics.StepFielders(s.fielders, &s.profile)

	s.scheduler.Advance(s.tick, s.generation)
	s.advance()
}

func (s *Session) stepDelivery() {
	if s.delivery == nil {
		return
	}
	if physics.StepDelivery(s.delivery, &s.profile) && s.phase == core.PhaseDeliveryInFlight {
		s.logger.Printf("[%s] missed at y=%.2f", s.id, s.delivery.Pos().Y)
		s.lose(event.ReasonMissed)
	}
}

// stepStruck moves the struck ball, tests interception, then clears it on exit
// Leaving the field is not a loss; the pending resolution decides the attempt
func (s *Session) stepStruck() {
	if s.struck == nil {
		return
	}
	exited := physics.StepStruck(s.struck, &s.profile)

	if s.phase == core.PhaseResolutionPending {
		if id, caught := s.interceptor.Check(s.struck, s.fielders); caught {
			s.logger.Printf("[%s] caught by fielder %d", s.id, id)
			s.lose(event.ReasonCaught)
			return
		}
	}
	if exited {
		s.struck = nil
	}
}

// Projectile reports which single ball entity exists, if any
func (s *Session) Projectile() Projectile {
	switch {
	case s.delivery != nil && s.struck != nil:
		return ProjectileInvalid
	case s.delivery != nil:
		return ProjectileDelivery
	case s.struck != nil:
		return ProjectileStruck
	}
	return ProjectileNone
}

// Projectile classifies the ball slot
type Projectile int

const (
	ProjectileNone Projectile = iota
	ProjectileDelivery
	ProjectileStruck
	// ProjectileInvalid means both balls exist, never produced by a correct session
	ProjectileInvalid
)

func (s *Session) emit(t event.EventType, reason event.Reason, payload any) {
	s.events.Push(event.GameEvent{
		Type:    t,
		Tick:       s.tick,
		Generation: s.generation,
		Attempt:    s.attempt,
		Reason:     reason,
		Payload:    payload,
	})
}
