// Package rng supplies the uniform random values consumed by trap decisions
// and fielder selection
package rng

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
)

// Source is the randomness consumed by the simulation
type Source interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64
	// Intn returns a uniform value in [0, n), 0 when n <= 0
	Intn(n int) int
}

// Xorshift is a seeded xorshift64 generator, replayable from its seed
type Xorshift struct {
	state uint64
}

// NewXorshift creates a generator; seed 0 is remapped to 1
func NewXorshift(seed uint64) *Xorshift {
	if seed == 0 {
		seed = 1
	}
	return &Xorshift{state: seed}
}

// NewRandom seeds a generator from crypto/rand
func NewRandom() *Xorshift {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return NewXorshift(0x9e3779b97f4a7c15)
	}
	return NewXorshift(binary.BigEndian.Uint64(buf[:]))
}

func (r *Xorshift) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 uses the top 53 bits
func (r *Xorshift) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

func (r *Xorshift) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}
