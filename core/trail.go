package core

// Trail is a bounded position history, oldest first
// Rendering only; the cap bounds memory, not semantics
type Trail struct {
	points []Point
	limit  int
}

// NewTrail creates a trail holding at most limit points
func NewTrail(limit int) Trail {
	if limit < 0 {
		limit = 0
	}
	return Trail{points: make([]Point, 0, limit), limit: limit}
}

// Push appends a point, dropping the oldest once the cap is reached
func (t *Trail) Push(p Point) {
	if t.limit == 0 {
		return
	}
	if len(t.points) == t.limit {
		copy(t.points, t.points[1:])
		t.points = t.points[:t.limit-1]
	}
	t.points = append(t.points, p)
}

// Len returns the number of stored points
func (t *Trail) Len() int {
	return len(t.points)
}

// Points returns a copy safe to hand to another goroutine
func (t *Trail) Points() []Point {
	out := make([]Point, len(t.points))
	copy(out, t.points)
	return out
}
