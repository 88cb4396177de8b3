package object

import "github.com/tomz197/patatoids/internal/vector"

// Laser is a bolt fired by the ship or a UFO. Collisions use the segment it
// swept during the last tick, so fast bolts cannot tunnel through thin hulls.
type Laser struct {
	Position vector.Vector
	Tail     vector.Vector // Position before the last update
	Velocity vector.Vector
	ttl      int  // Ticks remaining
	spent    bool // Consumed by a hit
}

// NewLaser creates a bolt at position moving with velocity for lifetime ticks.
func NewLaser(position, velocity vector.Vector, lifetime int) *Laser {
	return &Laser{
		Position: position,
		Tail:     position,
		Velocity: velocity,
		ttl:      lifetime,
	}
}

// Update moves the laser one tick.
func (l *Laser) Update() {
	l.Tail = l.Position
	l.Position = l.Position.Add(l.Velocity)
	l.ttl--
}

// Alive reports whether the laser can still hit something.
func (l *Laser) Alive(bounds Bounds) bool {
	return !l.spent && l.ttl > 0 && bounds.Contains(l.Position)
}

// Hits reports whether the laser touches target; a hit consumes the laser.
func (l *Laser) Hits(target Collider) bool {
	if l.spent {
		return false
	}
	if target.Hull().HitBySegment(l.Tail, l.Position) {
		l.spent = true
		return true
	}
	return false
}

// Draw renders the laser as a short streak.
func (l *Laser) Draw(r Renderer) {
	r.DrawLaser(l.Tail, l.Position)
}

// updateLasers advances every laser and drops the dead ones.
func updateLasers(lasers []*Laser, bounds Bounds) []*Laser {
	kept := lasers[:0]
	for _, l := range lasers {
		l.Update()
		if l.Alive(bounds) {
			kept = append(kept, l)
		}
	}
	clear(lasers[len(kept):])
	return kept
}

// lasersHit checks live lasers against target. At most one laser is consumed.
func lasersHit(lasers []*Laser, target Collider) bool {
	for _, l := range lasers {
		if l.Hits(target) {
			return true
		}
	}
	return false
}
