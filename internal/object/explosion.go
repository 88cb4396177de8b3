package object

import (
	"github.com/tomz197/patatoids/internal/random"
	"github.com/tomz197/patatoids/internal/vector"
)

// Explosion tuning.
const (
	ExplosionLifetime  = 40 // Ticks
	explosionParticles = 12
	explosionDrag      = 0.95
)

// Explosion is a short particle burst left behind by a destroyed hazard.
type Explosion struct {
	Position  vector.Vector
	particles []vector.Vector // Offsets from Position
	velocity  []vector.Vector
	age       int
}

// NewExplosion creates a burst of particles in random directions.
func NewExplosion(position vector.Vector, rng *random.Source) *Explosion {
	e := &Explosion{
		Position:  position,
		particles: make([]vector.Vector, explosionParticles),
		velocity:  make([]vector.Vector, explosionParticles),
	}
	for i := range e.velocity {
		// Random speed variation (50% to 200%)
		e.velocity[i] = rng.UnitVector().Scale(rng.Float(0.5, 2.0))
	}
	return e
}

// Update advances the burst one tick and reports whether it is still running.
func (e *Explosion) Update() bool {
	if e.Finished() {
		return false
	}
	e.age++
	for i := range e.particles {
		e.particles[i] = e.particles[i].Add(e.velocity[i])
		e.velocity[i] = e.velocity[i].Scale(explosionDrag)
	}
	return !e.Finished()
}

// Finished reports whether the animation is over.
func (e *Explosion) Finished() bool {
	return e.age >= ExplosionLifetime
}

// Progress returns how far through its lifetime the explosion is, in [0, 1].
func (e *Explosion) Progress() float64 {
	return float64(e.age) / ExplosionLifetime
}

// Draw renders the particles.
func (e *Explosion) Draw(r Renderer) {
	r.DrawExplosion(e.Position, e.particles, e.Progress())
}
