// Package sample provides uniform random index selection for online training.
package sample

import "math/rand"

// Sampler draws one index from a discrete uniform distribution over
// [low, high). Draws are independent, with replacement.
type Sampler interface {
	UniformIndex(low, high int) int
}

// Rand is a Sampler backed by a math/rand generator.
type Rand struct {
	rng *rand.Rand
}

// New creates a Rand with a non-deterministic seed.
func New() *Rand {
	return NewSeeded(rand.Int63())
}

// NewSeeded creates a Rand with a fixed seed for reproducible sampling.
func NewSeeded(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// UniformIndex returns a uniform index in [low, high).
func (r *Rand) UniformIndex(low, high int) int {
	return low + r.rng.Intn(high-low)
}

// Sequence is a deterministic Sampler that replays a fixed list of
// indices, cycling when exhausted. Indices outside [low, high) are
// clamped into range.
type Sequence struct {
	Indices []int
	pos     int
}

// UniformIndex returns the next index from the sequence.
func (s *Sequence) UniformIndex(low, high int) int {
	idx := s.Indices[s.pos%len(s.Indices)]
	s.pos++
	if idx < low {
		idx = low
	}
	if idx >= high {
		idx = high - 1
	}
	return idx
}
