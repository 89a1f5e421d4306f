// Package rng provides an explicitly owned, seeded pseudorandom stream.
//
// Generators never touch global random state; each one holds its own Stream so
// a fixed seed always reproduces the same frames.
package rng

import "math/rand/v2"

type Stream struct {
	seed uint64
	r    *rand.Rand
}

func New(seed uint64) *Stream {
	s := &Stream{}
	s.Seed(seed)
	return s
}

// Seed rewinds the stream to the start of the sequence for seed.
func (s *Stream) Seed(seed uint64) {
	s.seed = seed
	s.r = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func (s *Stream) SeedValue() uint64 { return s.seed }

// Float64 returns a value in [0, 1).
func (s *Stream) Float64() float64 { return s.r.Float64() }

// Uniform returns a value in [lo, hi).
func (s *Stream) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.r.Float64()
}

// IntRange returns an int in [lo, hi], both ends included.
func (s *Stream) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.r.IntN(hi-lo+1)
}

// Intn returns an int in [0, n). n must be positive.
func (s *Stream) Intn(n int) int { return s.r.IntN(n) }

// Choice returns one of the values at random.
func Choice[T any](s *Stream, values []T) T {
	return values[s.r.IntN(len(values))]
}
