package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/sixer/core"
	"github.com/lixenwraith/sixer/event"
)

// Command is player input forwarded to the tick goroutine
type Command int

const (
	CommandAction Command = iota + 1
	CommandRestart
)

// FrameFunc receives the state and drained events after every tick
// Runs on the scheduler goroutine; must not call back into the session
type FrameFunc func(snap Snapshot, events []event.GameEvent)

// ClockScheduler drives a Session on a fixed tick
// Owns the session between Start and Stop: all access goes through Send,
// state comes back only through the frame callback
type ClockScheduler struct {
	session *Session
	onFrame FrameFunc

	// Tick configuration
	tickInterval     time.Duration
	nextTickDeadline time.Time

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64

	// Control channels
	commands chan Command
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClockScheduler creates a scheduler for session with the given tick interval
func NewClockScheduler(session *Session, tickInterval time.Duration, onFrame FrameFunc) *ClockScheduler {
	return &ClockScheduler{
		session:      session,
		onFrame:      onFrame,
		tickInterval: tickInterval,
		commands:     make(chan Command, 16),
		stopChan:     make(chan struct{}),
	}
}

// Send queues a command without blocking, returns false if the queue is full
func (cs *ClockScheduler) Send(cmd Command) bool {
	select {
	case cs.commands <- cmd:
		return true
	default:
		return false
	}
}

// TickCount returns ticks processed by this scheduler
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	// Presentation sees the starting state before the first tick
	cs.publish()

	cs.nextTickDeadline = time.Now().Add(cs.tickInterval)

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return

		case cmd := <-cs.commands:
			cs.apply(cmd)

		case <-timer.C:
			now := time.Now()
			cs.processTick()

			cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
			maxBehind := cs.tickInterval * 2
			if now.Sub(cs.nextTickDeadline) > maxBehind {
				cs.nextTickDeadline = now.Add(cs.tickInterval)
			}

			sleepDuration := time.Until(cs.nextTickDeadline)
			if sleepDuration < 0 {
				sleepDuration = 0
			}
			timer.Reset(sleepDuration)
		}
	}
}

func (cs *ClockScheduler) apply(cmd Command) {
	switch cmd {
	case CommandAction:
		cs.session.Action()
	case CommandRestart:
		cs.session.Restart()
	}
}

// processTick executes one clock cycle and publishes the frame
func (cs *ClockScheduler) processTick() {
	cs.session.Tick()
	cs.tickCount.Add(1)
	cs.publish()
}

func (cs *ClockScheduler) publish() {
	if cs.onFrame != nil {
		cs.onFrame(cs.session.Snapshot(), cs.session.Drain())
	}
}
