package object

import (
	"math"

	"github.com/tomz197/patatoids/internal/random"
	"github.com/tomz197/patatoids/internal/vector"
)

// Asteroid tuning.
const (
	AsteroidDiameterMin = 40.0
	AsteroidDiameterMax = 120.0
	AsteroidSidesMin    = 8
	AsteroidSidesMax    = 20 // exclusive
	AsteroidRotationMax = 0.01

	// AsteroidSpeed scales the direction an asteroid is created with.
	AsteroidSpeed = 1.2

	// MinBreakupDiameter is the size at or below which a hit asteroid
	// explodes instead of splitting.
	MinBreakupDiameter = 60.0

	// splitThreeDiameter is the size above which an asteroid splits in three.
	splitThreeDiameter = 110.0

	// splitShrink divides the parent diameter per child: d / (n * splitShrink).
	splitShrink = 0.8

	vertexRadiusMin = 0.35
	vertexRadiusMax = 0.5
)

// Asteroid is an irregular rotating rock ("patatoid").
type Asteroid struct {
	Position     vector.Vector
	Velocity     vector.Vector
	Diameter     float64
	Rotation     float64 // Current rotation angle
	RotationStep float64 // Radians per tick
	Sides        int
	radii        []float64 // Vertex distances from center (irregular shape)
	bounds       Bounds
}

// AsteroidParams describes a new asteroid. Direction is scaled by
// AsteroidSpeed; a unit vector gives the base speed.
type AsteroidParams struct {
	Position     vector.Vector
	Direction    vector.Vector
	Diameter     float64
	RotationStep float64
	Sides        int
}

// NewAsteroid creates an asteroid, drawing its vertex radii from rng.
func NewAsteroid(bounds Bounds, p AsteroidParams, rng *random.Source) *Asteroid {
	sides := max(p.Sides, 3)
	radii := make([]float64, sides)
	for i := range radii {
		radii[i] = rng.Float(p.Diameter*vertexRadiusMin, p.Diameter*vertexRadiusMax)
	}

	return &Asteroid{
		Position:     p.Position,
		Velocity:     p.Direction.Scale(AsteroidSpeed),
		Diameter:     p.Diameter,
		RotationStep: p.RotationStep,
		Sides:        sides,
		radii:        radii,
		bounds:       bounds,
	}
}

// Update rotates and moves the asteroid, wrapping at the screen edges.
func (a *Asteroid) Update() {
	a.Rotation += a.RotationStep
	a.Position = a.bounds.Wrap(a.Position.Add(a.Velocity), a.Diameter/2)
}

// CanBreak reports whether a hit splits the asteroid rather than destroying it.
func (a *Asteroid) CanBreak() bool {
	return a.Diameter > MinBreakupDiameter
}

// BreakUp returns the children of a hit asteroid: three when larger than
// 110, two when larger than 60, none otherwise. Each child has diameter
// d/(n*0.8), inherits sides and spin, and flies off in a random direction.
func (a *Asteroid) BreakUp(rng *random.Source) []*Asteroid {
	if !a.CanBreak() {
		return nil
	}

	count := 2
	if a.Diameter > splitThreeDiameter {
		count = 3
	}
	diameter := a.Diameter / (float64(count) * splitShrink)

	children := make([]*Asteroid, 0, count)
	for i := 0; i < count; i++ {
		children = append(children, NewAsteroid(a.bounds, AsteroidParams{
			Position:     a.Position,
			Direction:    rng.UnitVector().Scale(rng.Float(0.8, 1.2)),
			Diameter:     diameter,
			RotationStep: a.RotationStep,
			Sides:        a.Sides,
		}, rng))
	}
	return children
}

// Vertices returns the outline in local coordinates (unrotated).
func (a *Asteroid) Vertices() []vector.Vector {
	points := make([]vector.Vector, len(a.radii))
	step := 2 * math.Pi / float64(len(a.radii))
	for i, r := range a.radii {
		points[i] = vector.FromAngle(float64(i)*step, r)
	}
	return points
}

// Hull returns the rotated outline in world coordinates.
func (a *Asteroid) Hull() Hull {
	return Hull{
		Center:  a.Position,
		Radius:  a.Diameter / 2,
		Outline: localToWorld(a.Position, a.Rotation, a.Vertices()),
	}
}

// Draw renders the asteroid outline.
func (a *Asteroid) Draw(r Renderer) {
	r.DrawPolygon(a.Position, a.Rotation, a.Vertices())
}
