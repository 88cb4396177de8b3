// Package random provides the seeded source used for all procedural generation.
package random

import (
	"math"
	"math/rand/v2"

	"github.com/tomz197/patatoids/internal/vector"
)

// Source is a deterministic pseudo-random generator.
// Two sources created with the same seed produce the same sequence.
type Source struct {
	rng *rand.Rand
}

// New creates a source seeded with seed.
func New(seed uint64) *Source {
	return &Source{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Float returns a uniform float in [min, max).
func (s *Source) Float(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// Int returns a uniform integer in [min, max). Returns min when max <= min.
func (s *Source) Int(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.IntN(max-min)
}

// UnitVector returns a vector of length 1 pointing in a uniformly random direction.
func (s *Source) UnitVector() vector.Vector {
	return vector.FromAngle(s.rng.Float64()*2*math.Pi, 1)
}
