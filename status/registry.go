// Package status keeps per-session counters readable from any goroutine
package status

import "sync/atomic"

// Metric keys written by the engine
const (
	KeyTicks      = "engine.ticks"
	KeySessions   = "session.started"
	KeyDeliveries = "attempt.deliveries"
	KeyDeceptive  = "attempt.deceptive"
	KeyHits       = "attempt.hits"
	KeySuccesses  = "attempt.successes"
	KeyMistimed   = "lost.mistimed"
	KeyMissed     = "lost.missed"
	KeyCaught     = "lost.caught"
	KeyWins       = "session.won"
	KeyStaleTasks = "scheduler.stale"
)

// Registry is the metrics facade
// Writers cache pointers at construction and update atomics directly
type Registry struct {
	Ints *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints: NewMetricMap[atomic.Int64](),
	}
}

// Counter returns the named counter, registering it on first use
func (r *Registry) Counter(key string) *atomic.Int64 {
	return r.Ints.Get(key)
}

// Values copies every counter into a plain map
func (r *Registry) Values() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = ptr.Load()
	})
	return out
}
