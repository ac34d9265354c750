package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/lixenwraith/sixer/config"
	"github.com/lixenwraith/sixer/core"
	"github.com/lixenwraith/sixer/event"
	"github.com/lixenwraith/sixer/rng"
	"github.com/lixenwraith/sixer/status"
)

// cleanStraightUp never rolls deceptive and launches every clean hit vertically
func cleanStraightUp() rng.Source {
	return rng.NewScripted([]float64{0.5}, nil)
}

func newTestSession(t *testing.T, tuning config.Tuning, src rng.Source) *Session {
	t.Helper()
	s, err := NewSession(tuning, src, WithID("test"))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

// checkInvariants asserts the per-tick structural guarantees
func checkInvariants(t *testing.T, s *Session) {
	t.Helper()
	if s.Projectile() == ProjectileInvalid {
		t.Fatalf("tick %d: delivery and struck ball coexist", s.TickCount())
	}
	st := s.State()
	if st.Consecutive > s.tuning.Attempts {
		t.Fatalf("tick %d: consecutive %d exceeds budget", s.TickCount(), st.Consecutive)
	}
	if st.Consecutive+st.Remaining > s.tuning.Attempts {
		t.Fatalf("tick %d: consecutive %d + remaining %d exceeds budget", s.TickCount(), st.Consecutive, st.Remaining)
	}
	switch s.Phase() {
	case core.PhaseDeliveryInFlight:
		if s.Projectile() != ProjectileDelivery {
			t.Fatalf("tick %d: DeliveryInFlight without a delivery", s.TickCount())
		}
	case core.PhaseIdle, core.PhaseCountdown, core.PhaseGameWon, core.PhaseGameLost, core.PhaseAttemptSuccess:
		if s.Projectile() != ProjectileNone {
			t.Fatalf("tick %d: %s with projectile %d", s.TickCount(), s.Phase(), s.Projectile())
		}
	case core.PhaseResolutionPending:
		if s.Projectile() == ProjectileDelivery {
			t.Fatalf("tick %d: delivery survived the hit", s.TickCount())
		}
	}
}

// inWindow reports whether a swing now would be judged on time
func inWindow(s *Session) bool {
	snap := s.Snapshot()
	if snap.Delivery == nil {
		return false
	}
	y := snap.Delivery.Pos.Y
	return y >= snap.WindowTop && y <= snap.WindowBottom
}

// play ticks until a terminal phase or maxTicks, swinging on time when swing is set
func play(t *testing.T, s *Session, maxTicks int, swing bool) []core.Phase {
	t.Helper()
	var phases []core.Phase
	for i := 0; i < maxTicks && !s.Phase().Terminal(); i++ {
		s.Tick()
		checkInvariants(t, s)
		phases = append(phases, s.Phase())
		if swing && s.Phase() == core.PhaseDeliveryInFlight && inWindow(s) {
			s.Action()
			checkInvariants(t, s)
		}
	}
	return phases
}

func countType(events []event.GameEvent, typ event.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

func TestNewSessionRejectsInvalidTuning(t *testing.T) {
	tuning := config.Default()
	tuning.SpeedSchedule = tuning.SpeedSchedule[:3]

	_, err := NewSession(tuning, cleanStraightUp())
	if !errors.Is(err, config.ErrScheduleTooShort) {
		t.Fatalf("err = %v, want ErrScheduleTooShort", err)
	}

	if _, err := NewSession(config.Default(), nil); !errors.Is(err, config.ErrInvalidTuning) {
		t.Errorf("nil source: err = %v, want ErrInvalidTuning", err)
	}
}

func TestNewSessionIsIdle(t *testing.T) {
	s := newTestSession(t, config.Default(), cleanStraightUp())

	if s.Phase() != core.PhaseIdle {
		t.Errorf("phase = %s, want Idle", s.Phase())
	}
	if s.ID() != "test" {
		t.Errorf("ID() = %q", s.ID())
	}
	snap := s.Snapshot()
	if snap.WindowTop != 565 || snap.WindowBottom != 595 {
		t.Errorf("window = [%v, %v], want [565, 595]", snap.WindowTop, snap.WindowBottom)
	}
	if len(snap.Fielders) != 10 {
		t.Errorf("fielders = %d, want 10", len(snap.Fielders))
	}
	if snap.Remaining != 6 || snap.Consecutive != 0 {
		t.Errorf("counters = %d/%d", snap.Consecutive, snap.Remaining)
	}

	// Idle ignores time
	s.Tick()
	if s.Phase() != core.PhaseIdle {
		t.Errorf("Tick moved an idle session to %s", s.Phase())
	}
}

func TestCountdownSpawnsDelivery(t *testing.T) {
	s := newTestSession(t, config.Default(), cleanStraightUp())
	s.Start()

	if s.Phase() != core.PhaseCountdown {
		t.Fatalf("phase after Start = %s", s.Phase())
	}
	snap := s.Snapshot()
	if !snap.HasCountdown || snap.CountdownStep != 2 || snap.Attempt != 1 {
		t.Errorf("countdown snapshot = %+v", snap)
	}

	for i := 0; i < 29; i++ {
		s.Tick()
	}
	if s.Phase() != core.PhaseCountdown {
		t.Fatalf("phase after 29 ticks = %s", s.Phase())
	}
	if step := s.Snapshot().CountdownStep; step != 1 {
		t.Errorf("CountdownStep with 1 tick left = %d", step)
	}

	s.Tick()
	if s.Phase() != core.PhaseDeliveryInFlight {
		t.Fatalf("phase after 30 ticks = %s", s.Phase())
	}
	snap = s.Snapshot()
	if snap.Delivery == nil || snap.Delivery.Pos != (core.Point{X: 300, Y: 80}) {
		t.Fatalf("delivery = %+v", snap.Delivery)
	}
	if snap.Delivery.Vel.Y != 8 {
		t.Errorf("first delivery speed = %v, want 8", snap.Delivery.Vel.Y)
	}
	if snap.HasCountdown {
		t.Error("countdown still shown during delivery")
	}
	if s.State().ScheduleIndex != 1 {
		t.Errorf("ScheduleIndex = %d, want 1", s.State().ScheduleIndex)
	}
}

func TestActionIgnoredOutsideDelivery(t *testing.T) {
	s := newTestSession(t, config.Default(), cleanStraightUp())

	s.Action()
	if s.Phase() != core.PhaseIdle {
		t.Fatalf("Action in Idle moved to %s", s.Phase())
	}

	s.Start()
	s.Drain()
	s.Action()
	if s.Phase() != core.PhaseCountdown {
		t.Fatalf("Action in Countdown moved to %s", s.Phase())
	}
	if evs := s.Drain(); len(evs) != 0 {
		t.Errorf("Action in Countdown emitted %d events", len(evs))
	}
}

func TestMistimedSwingLoses(t *testing.T) {
	s := newTestSession(t, config.Default(), cleanStraightUp())
	s.Start()
	for s.Phase() != core.PhaseDeliveryInFlight {
		s.Tick()
	}
	s.Drain()

	s.Action()
	checkInvariants(t, s)

	if s.Phase() != core.PhaseGameLost || s.Reason() != event.ReasonMistimed {
		t.Fatalf("phase/reason = %s/%q, want GameLost/MISTIMED", s.Phase(), s.Reason())
	}
	evs := s.Drain()
	if countType(evs, event.EventGameLost) != 1 || evs[len(evs)-1].Reason != event.ReasonMistimed {
		t.Errorf("events = %+v", evs)
	}
	if s.State().Consecutive != 0 {
		t.Errorf("consecutive = %d", s.State().Consecutive)
	}

	// Terminal phases ignore input and time
	s.Action()
	s.Tick()
	if s.Phase() != core.PhaseGameLost {
		t.Errorf("terminal phase left without restart: %s", s.Phase())
	}
}

func TestUnplayedDeliveryIsMissed(t *testing.T) {
	s := newTestSession(t, config.Default(), cleanStraightUp())
	s.Start()

	play(t, s, 500, false)

	if s.Phase() != core.PhaseGameLost || s.Reason() != event.ReasonMissed {
		t.Fatalf("phase/reason = %s/%q, want GameLost/MISSED", s.Phase(), s.Reason())
	}
	// Countdown 30 ticks, then 68 ticks at speed 8 to pass y=620
	if s.TickCount() != 98 {
		t.Errorf("missed on tick %d, want 98", s.TickCount())
	}
	if got := s.Stats().Values()[status.KeyMissed]; got != 1 {
		t.Errorf("missed counter = %d", got)
	}
}

func TestSixConsecutiveHitsWin(t *testing.T) {
	s := newTestSession(t, config.Default(), cleanStraightUp())
	s.Start()

	var evs []event.GameEvent
	sawSuccess := 0
	pendingTicks := 0
	for i := 0; i < 5000 && !s.Phase().Terminal(); i++ {
		s.Tick()
		checkInvariants(t, s)
		switch s.Phase() {
		case core.PhaseAttemptSuccess:
			sawSuccess++
		case core.PhaseResolutionPending:
			pendingTicks++
		}
		if s.Phase() == core.PhaseDeliveryInFlight && inWindow(s) {
			s.Action()
			checkInvariants(t, s)
			if s.Phase() != core.PhaseResolutionPending {
				t.Fatalf("in-window swing led to %s", s.Phase())
			}
			// Lock ignores a second swing
			s.Action()
			if s.Phase() != core.PhaseResolutionPending {
				t.Fatalf("second swing led to %s", s.Phase())
			}
		}
		evs = append(evs, s.Drain()...)
	}

	if s.Phase() != core.PhaseGameWon {
		t.Fatalf("final phase = %s (reason %q)", s.Phase(), s.Reason())
	}
	st := s.State()
	if st.Consecutive != 6 || st.Remaining != 0 || st.ScheduleIndex != 6 {
		t.Errorf("state = %+v", st)
	}
	if s.Runs() != 36 {
		t.Errorf("runs = %d, want 36", s.Runs())
	}
	if sawSuccess != 6 {
		t.Errorf("AttemptSuccess observed on %d ticks, want 6", sawSuccess)
	}
	// Each resolution waits the full delay; the resolving tick already reports AttemptSuccess
	if pendingTicks != 6*149 {
		t.Errorf("ticks in ResolutionPending = %d, want %d", pendingTicks, 6*149)
	}

	if n := countType(evs, event.EventAttemptSucceeded); n != 6 {
		t.Errorf("AttemptSucceeded events = %d", n)
	}
	if n := countType(evs, event.EventGameWon); n != 1 {
		t.Errorf("GameWon events = %d", n)
	}

	var speeds []float64
	for _, ev := range evs {
		if p, ok := ev.Payload.(*event.DeliveryPayload); ok {
			speeds = append(speeds, p.Speed)
			if p.Deceptive {
				t.Error("scripted source produced a deceptive delivery")
			}
		}
	}
	if !reflect.DeepEqual(speeds, []float64{8, 6, 7, 9, 4, 10}) {
		t.Errorf("delivery speeds = %v", speeds)
	}

	if got := s.Stats().Values()[status.KeyWins]; got != 1 {
		t.Errorf("wins counter = %d", got)
	}
}

func TestDeceptiveHitCaught(t *testing.T) {
	tuning := config.Default()
	tuning.DeceptiveHitSpeed = 4
	tuning.DeceptiveUpwardBias = 0
	tuning.Gravity = 0.5

	// Always deceptive, always aimed at fielder 9 directly above the crease
	s := newTestSession(t, tuning, rng.NewScripted([]float64{0.1}, []int{9}))
	s.Start()
	for s.Phase() != core.PhaseDeliveryInFlight || !inWindow(s) {
		s.Tick()
	}
	s.Drain()
	s.Action()

	if s.Phase() != core.PhaseResolutionPending {
		t.Fatalf("phase after swing = %s", s.Phase())
	}
	evs := s.Drain()
	var hit *event.HitPayload
	for _, ev := range evs {
		if p, ok := ev.Payload.(*event.HitPayload); ok {
			hit = p
		}
	}
	if hit == nil || !hit.Deceptive || hit.Designated != 9 {
		t.Fatalf("hit payload = %+v", hit)
	}

	hitTick := s.TickCount()
	play(t, s, 200, false)

	if s.Phase() != core.PhaseGameLost || s.Reason() != event.ReasonCaught {
		t.Fatalf("phase/reason = %s/%q, want GameLost/CAUGHT", s.Phase(), s.Reason())
	}
	if elapsed := s.TickCount() - hitTick; elapsed >= 150 {
		t.Errorf("caught %d ticks after the hit, resolution should not have fired", elapsed)
	}
	if s.State().Consecutive != 0 {
		t.Errorf("caught attempt counted as success")
	}

	// The cancelled resolution must not fire later
	for i := 0; i < 200; i++ {
		s.Tick()
	}
	if s.Phase() != core.PhaseGameLost || s.State().Consecutive != 0 {
		t.Errorf("resolution fired after catch: %s consecutive=%d", s.Phase(), s.State().Consecutive)
	}
}

func TestDeceptiveHitEscapesAndScores(t *testing.T) {
	tuning := config.Default()
	// Steep enough to leave the top of the field while still rising
	tuning.DeceptiveUpwardBias = -12

	// Always deceptive, aimed at fielder 1 up and to the left
	s := newTestSession(t, tuning, rng.NewScripted([]float64{0.1}, []int{1}))
	s.Start()
	for s.Phase() != core.PhaseDeliveryInFlight || !inWindow(s) {
		s.Tick()
	}
	s.Drain()
	s.Action()
	if s.Phase() != core.PhaseResolutionPending {
		t.Fatalf("phase after swing = %s", s.Phase())
	}
	if snap := s.Snapshot(); snap.Struck == nil || !snap.Struck.Deceptive {
		t.Fatalf("struck ball = %+v, want deceptive", snap.Struck)
	}

	var evs []event.GameEvent
	exited := false
	for i := 0; i < 200 && s.Phase() == core.PhaseResolutionPending; i++ {
		s.Tick()
		checkInvariants(t, s)
		if s.Projectile() == ProjectileNone && s.Phase() == core.PhaseResolutionPending {
			exited = true
		}
		evs = append(evs, s.Drain()...)
	}

	if !exited {
		t.Error("struck ball never left the field before resolution")
	}
	if s.Phase() != core.PhaseAttemptSuccess {
		t.Fatalf("phase = %s (reason %q), want AttemptSuccess", s.Phase(), s.Reason())
	}
	if st := s.State(); st.Consecutive != 1 || st.Remaining != 5 {
		t.Errorf("state = %+v", st)
	}
	if s.Runs() != 6 {
		t.Errorf("runs = %d, want 6", s.Runs())
	}
	if countType(evs, event.EventAttemptSucceeded) != 1 || countType(evs, event.EventGameLost) != 0 {
		t.Errorf("events = %+v", evs)
	}
}

func TestRestartMakesPendingResolutionInert(t *testing.T) {
	s := newTestSession(t, config.Default(), cleanStraightUp())
	s.Start()
	for s.Phase() != core.PhaseDeliveryInFlight || !inWindow(s) {
		s.Tick()
	}
	s.Action()
	if s.Phase() != core.PhaseResolutionPending {
		t.Fatalf("phase after swing = %s", s.Phase())
	}
	gen := s.Generation()

	s.Restart()
	if s.Generation() != gen+1 {
		t.Errorf("generation = %d, want %d", s.Generation(), gen+1)
	}
	if s.Phase() != core.PhaseCountdown || s.Projectile() != ProjectileNone {
		t.Fatalf("after restart: phase=%s projectile=%d", s.Phase(), s.Projectile())
	}

	// Let the old resolution deadline pass without playing the new delivery
	play(t, s, 400, false)
	if s.State().Consecutive != 0 || s.Runs() != 0 {
		t.Errorf("stale resolution credited: consecutive=%d runs=%d", s.State().Consecutive, s.Runs())
	}
	if s.Reason() != event.ReasonMissed {
		t.Errorf("reason = %q, want MISSED", s.Reason())
	}
}

func TestStartIsIdempotent(t *testing.T) {
	a := newTestSession(t, config.Default(), cleanStraightUp())
	b := newTestSession(t, config.Default(), cleanStraightUp())

	a.Start()
	a.Start()
	b.Start()

	sa, sb := a.Snapshot(), b.Snapshot()
	sa.Generation, sb.Generation = 0, 0
	if !reflect.DeepEqual(sa, sb) {
		t.Errorf("double start differs:\n%+v\n%+v", sa, sb)
	}
	if a.State() != b.State() {
		t.Errorf("state differs: %+v vs %+v", a.State(), b.State())
	}
}

func TestRestartFromTerminal(t *testing.T) {
	s := newTestSession(t, config.Default(), cleanStraightUp())
	s.Start()
	play(t, s, 500, false)
	if s.Phase() != core.PhaseGameLost {
		t.Fatalf("setup: phase = %s", s.Phase())
	}

	s.Restart()
	if s.Phase() != core.PhaseCountdown || s.Reason() != event.ReasonNone {
		t.Fatalf("after restart: %s/%q", s.Phase(), s.Reason())
	}

	// The undrained loss belongs to the previous game
	evs := s.Drain()
	if countType(evs, event.EventGameLost) != 0 {
		t.Errorf("GameLost from the previous game survived restart: %+v", evs)
	}
	if countType(evs, event.EventCountdown) != 1 {
		t.Errorf("restart events = %+v, want a fresh countdown", evs)
	}
	for _, ev := range evs {
		if ev.Generation != s.Generation() {
			t.Errorf("%s event from generation %d, live generation %d", ev.Type, ev.Generation, s.Generation())
		}
	}
	st := s.State()
	if st.Consecutive != 0 || st.Remaining != 6 || st.ScheduleIndex != 0 || st.Locked {
		t.Errorf("state not reset: %+v", st)
	}
	for _, f := range s.Snapshot().Fielders {
		if f.Vel != (core.Point{}) {
			t.Errorf("fielder %d still moving", f.ID)
		}
	}
}

func TestSeededSessionsReplay(t *testing.T) {
	run := func() Snapshot {
		s := newTestSession(t, config.Default(), rng.NewXorshift(42))
		s.Start()
		play(t, s, 5000, true)
		return s.Snapshot()
	}
	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed diverged:\n%+v\n%+v", a, b)
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to core.Phase
		want     bool
	}{
		{core.PhaseIdle, core.PhaseCountdown, true},
		{core.PhaseCountdown, core.PhaseDeliveryInFlight, true},
		{core.PhaseDeliveryInFlight, core.PhaseResolutionPending, true},
		{core.PhaseDeliveryInFlight, core.PhaseGameLost, true},
		{core.PhaseResolutionPending, core.PhaseAttemptSuccess, true},
		{core.PhaseAttemptSuccess, core.PhaseCountdown, true},
		{core.PhaseAttemptSuccess, core.PhaseGameWon, true},
		{core.PhaseGameWon, core.PhaseIdle, true},
		{core.PhaseResolutionPending, core.PhaseIdle, true},
		{core.PhaseIdle, core.PhaseDeliveryInFlight, false},
		{core.PhaseCountdown, core.PhaseGameLost, false},
		{core.PhaseResolutionPending, core.PhaseGameWon, false},
		{core.PhaseGameWon, core.PhaseCountdown, false},
		{core.PhaseGameLost, core.PhaseCountdown, false},
	}
	for _, tc := range tests {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestCountdownStep(t *testing.T) {
	tests := []struct {
		remaining, total, steps, want int
	}{
		{30, 30, 2, 2},
		{16, 30, 2, 2},
		{15, 30, 2, 1},
		{1, 30, 2, 1},
		{0, 30, 2, 0},
		{180, 180, 3, 3},
		{60, 180, 3, 1},
	}
	for _, tc := range tests {
		if got := countdownStep(tc.remaining, tc.total, tc.steps); got != tc.want {
			t.Errorf("countdownStep(%d, %d, %d) = %d, want %d", tc.remaining, tc.total, tc.steps, got, tc.want)
		}
	}
}
