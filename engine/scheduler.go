package engine

import (
	"sort"
	"sync/atomic"
)

// TaskID identifies a scheduled task; zero is never issued
type TaskID uint64

type task struct {
	id  TaskID
	due uint64 // tick at which the task fires
	gen uint64 // session generation that scheduled it
	fn  func()
}

// Scheduler is a tick-driven deferred task queue
// Tasks carry the session generation that created them; a task whose
// generation is no longer live when it comes due is dropped unrun
// Not safe for concurrent use: owned by the goroutine that ticks the session
type Scheduler struct {
	tasks  []task
	nextID TaskID
	stale  *atomic.Int64
}

// NewScheduler creates an empty scheduler
// stale, when non-nil, counts tasks dropped for a dead generation
func NewScheduler(stale *atomic.Int64) *Scheduler {
	return &Scheduler{stale: stale}
}

// Schedule registers fn to run delay ticks after now under generation gen
func (s *Scheduler) Schedule(now, delay, gen uint64, fn func()) TaskID {
	s.nextID++
	s.tasks = append(s.tasks, task{id: s.nextID, due: now + delay, gen: gen, fn: fn})
	return s.nextID
}

// Cancel removes a pending task, returns false if it already ran or was unknown
func (s *Scheduler) Cancel(id TaskID) bool {
	for i := range s.tasks {
		if s.tasks[i].id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending task and returns how many were removed
func (s *Scheduler) CancelAll() int {
	n := len(s.tasks)
	s.tasks = s.tasks[:0]
	return n
}

// Pending returns the number of tasks not yet run
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Advance runs every task due at or before now, oldest deadline first
// Tasks scheduled by a running callback wait for a later Advance
func (s *Scheduler) Advance(now, liveGen uint64) (ran, dropped int) {
	var due []task
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.due <= now {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	s.tasks = kept

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})

	for _, t := range due {
		if t.gen != liveGen {
			dropped++
			if s.stale != nil {
				s.stale.Add(1)
			}
			continue
		}
		t.fn()
		ran++
	}
	return ran, dropped
}
