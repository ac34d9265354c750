package rng

// Scripted replays fixed values, cycling when exhausted
// Floats feed Float64, ints feed Intn (reduced modulo n)
type Scripted struct {
	floats []float64
	ints   []int
	fi, ii int
}

// NewScripted creates a replay source; empty slices yield zeros
func NewScripted(floats []float64, ints []int) *Scripted {
	return &Scripted{floats: floats, ints: ints}
}

func (s *Scripted) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *Scripted) Intn(n int) int {
	if n <= 0 || len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
