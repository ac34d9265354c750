package engine

import (
	"sync/atomic"
	"testing"
)

func TestSchedulerRunsDueTasksInOrder(t *testing.T) {
	s := NewScheduler(nil)
	var order []int

	s.Schedule(0, 5, 1, func() { order = append(order, 2) })
	s.Schedule(0, 3, 1, func() { order = append(order, 1) })
	s.Schedule(0, 5, 1, func() { order = append(order, 3) })
	s.Schedule(0, 9, 1, func() { order = append(order, 4) })

	if ran, _ := s.Advance(2, 1); ran != 0 {
		t.Fatalf("ran %d tasks before any were due", ran)
	}
	ran, dropped := s.Advance(5, 1)
	if ran != 3 || dropped != 0 {
		t.Fatalf("Advance(5) = (%d, %d), want (3, 0)", ran, dropped)
	}
	want := []int{1, 2, 3}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", s.Pending())
	}
}

func TestSchedulerDropsStaleGeneration(t *testing.T) {
	var stale atomic.Int64
	s := NewScheduler(&stale)

	fired := false
	s.Schedule(10, 150, 1, func() { fired = true })

	ran, dropped := s.Advance(160, 2)
	if fired || ran != 0 || dropped != 1 {
		t.Fatalf("stale task: fired=%v ran=%d dropped=%d", fired, ran, dropped)
	}
	if stale.Load() != 1 {
		t.Errorf("stale counter = %d, want 1", stale.Load())
	}
	if s.Pending() != 0 {
		t.Errorf("stale task still pending")
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler(nil)
	fired := 0
	id := s.Schedule(0, 1, 1, func() { fired++ })
	s.Schedule(0, 1, 1, func() { fired++ })

	if !s.Cancel(id) {
		t.Fatal("Cancel returned false for a pending task")
	}
	if s.Cancel(id) {
		t.Error("second Cancel should return false")
	}
	s.Advance(1, 1)
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}

	s.Schedule(1, 1, 1, func() { fired++ })
	s.Schedule(1, 2, 1, func() { fired++ })
	if n := s.CancelAll(); n != 2 {
		t.Errorf("CancelAll() = %d, want 2", n)
	}
	s.Advance(10, 1)
	if fired != 1 {
		t.Errorf("cancelled tasks ran, fired = %d", fired)
	}
}

func TestSchedulerTaskScheduledDuringAdvanceWaits(t *testing.T) {
	s := NewScheduler(nil)
	inner := false
	s.Schedule(0, 1, 1, func() {
		s.Schedule(1, 0, 1, func() { inner = true })
	})

	s.Advance(1, 1)
	if inner {
		t.Fatal("task scheduled by a callback ran in the same Advance")
	}
	s.Advance(1, 1)
	if !inner {
		t.Error("nested task did not run on the next Advance")
	}
}
