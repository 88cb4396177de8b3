package object

import (
	"math"

	"github.com/tomz197/patatoids/internal/random"
	"github.com/tomz197/patatoids/internal/vector"
)

// Ship tuning. Speeds are per tick.
const (
	ShipSize          = 15.0 // Nose distance from center
	ShipThrust        = 0.12
	ShipDrag          = 0.99
	ShipMaxSpeed      = 6.0
	ShipFireCooldown  = 10 // Ticks between shots
	ShipLaserSpeed    = 9.0
	ShipLaserLifetime = 60

	// ShipDefaultHeading points the nose up.
	ShipDefaultHeading = -math.Pi / 2

	shipWingAngle = 2.5 // ~143 degrees from the nose
	shipWingScale = 0.7
)

// Ship is the player-controlled spaceship.
type Ship struct {
	Position     vector.Vector
	Velocity     vector.Vector
	Heading      float64 // Radians, 0 = pointing right
	RotationRate float64 // Radians per tick, set by input
	Boost        bool

	lasers    []*Laser
	cooldown  int // Ticks until the next shot
	destroyed bool
	bounds    Bounds
}

// NewShip creates a stationary ship at position facing heading.
func NewShip(bounds Bounds, position vector.Vector, heading float64) *Ship {
	return &Ship{
		Position: position,
		Heading:  heading,
		bounds:   bounds,
	}
}

// SetRotation sets the rotation rate applied every tick.
func (s *Ship) SetRotation(rate float64) {
	s.RotationRate = rate
}

// SetBoost switches the thruster on or off.
func (s *Ship) SetBoost(on bool) {
	s.Boost = on
}

// Update handles rotation, thrust, momentum and the fired lasers.
func (s *Ship) Update() {
	s.Heading += s.RotationRate

	// Normalize angle to [-π, π]
	for s.Heading > math.Pi {
		s.Heading -= 2 * math.Pi
	}
	for s.Heading < -math.Pi {
		s.Heading += 2 * math.Pi
	}

	if s.Boost {
		s.Velocity = s.Velocity.Add(vector.FromAngle(s.Heading, ShipThrust))
	}
	s.Velocity = s.Velocity.Scale(ShipDrag).Limit(ShipMaxSpeed)
	s.Position = s.bounds.Wrap(s.Position.Add(s.Velocity), ShipSize)

	if s.cooldown > 0 {
		s.cooldown--
	}
	s.lasers = updateLasers(s.lasers, s.bounds)
}

// Shoot fires a laser from the nose unless the cooldown is still running.
func (s *Ship) Shoot() bool {
	if s.destroyed || s.cooldown > 0 {
		return false
	}
	s.cooldown = ShipFireCooldown

	nose := s.Position.Add(vector.FromAngle(s.Heading, ShipSize))
	velocity := vector.FromAngle(s.Heading, ShipLaserSpeed).Add(s.Velocity)
	s.lasers = append(s.lasers, NewLaser(nose, velocity, ShipLaserLifetime))
	return true
}

// Lasers returns the ship's live lasers.
func (s *Ship) Lasers() []*Laser {
	return s.lasers
}

// LasersHit reports whether one of the ship's lasers hits target.
// The laser that hit is consumed.
func (s *Ship) LasersHit(target Collider) bool {
	return lasersHit(s.lasers, target)
}

// CollidesWith reports a hull collision with target.
func (s *Ship) CollidesWith(target Collider) bool {
	return s.Hull().Overlaps(target.Hull())
}

// ShipOutline returns the ship triangle (nose, left wing, right wing) in
// world coordinates.
func ShipOutline(position vector.Vector, heading float64) []vector.Vector {
	return []vector.Vector{
		position.Add(vector.FromAngle(heading, ShipSize)),
		position.Add(vector.FromAngle(heading+shipWingAngle, ShipSize*shipWingScale)),
		position.Add(vector.FromAngle(heading-shipWingAngle, ShipSize*shipWingScale)),
	}
}

// Hull returns the ship triangle.
func (s *Ship) Hull() Hull {
	return Hull{
		Center:  s.Position,
		Radius:  ShipSize,
		Outline: ShipOutline(s.Position, s.Heading),
	}
}

// BreakUp destroys the ship, returning one fragment per hull edge.
// Only the first call produces fragments.
func (s *Ship) BreakUp(rng *random.Source) []*Fragment {
	if s.destroyed {
		return nil
	}
	s.destroyed = true
	s.lasers = nil

	outline := ShipOutline(s.Position, s.Heading)
	fragments := make([]*Fragment, 0, len(outline))
	for i := range outline {
		a, b := outline[i], outline[(i+1)%len(outline)]
		// Each edge flies away from the hull center.
		outward := a.Add(b).Scale(0.5).Sub(s.Position).Heading()
		fragments = append(fragments, NewFragment(s.bounds, a, b,
			s.Velocity.Scale(0.5).Add(vector.FromAngle(outward, rng.Float(0.3, 1.0))),
			rng.Float(-0.05, 0.05),
		))
	}
	return fragments
}

// Destroyed reports whether BreakUp has been called.
func (s *Ship) Destroyed() bool {
	return s.destroyed
}

// Draw renders the ship and its lasers.
func (s *Ship) Draw(r Renderer) {
	for _, l := range s.lasers {
		l.Draw(r)
	}
	r.DrawShip(s.Position, s.Heading, s.Boost)
}
