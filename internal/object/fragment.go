package object

import "github.com/tomz197/patatoids/internal/vector"

// Fragment is one edge of a destroyed ship, drifting and spinning.
type Fragment struct {
	Position     vector.Vector
	Velocity     vector.Vector
	Rotation     float64
	RotationStep float64
	a, b         vector.Vector // Endpoints relative to Position
	bounds       Bounds
}

// NewFragment creates debris for the world-space segment a-b.
func NewFragment(bounds Bounds, a, b, velocity vector.Vector, rotationStep float64) *Fragment {
	mid := a.Add(b).Scale(0.5)
	return &Fragment{
		Position:     mid,
		Velocity:     velocity,
		RotationStep: rotationStep,
		a:            a.Sub(mid),
		b:            b.Sub(mid),
		bounds:       bounds,
	}
}

// Update drifts the fragment.
func (f *Fragment) Update() {
	f.Rotation += f.RotationStep
	f.Position = f.bounds.Wrap(f.Position.Add(f.Velocity), ShipSize)
}

// Draw renders the fragment as a single segment.
func (f *Fragment) Draw(r Renderer) {
	r.DrawFragment(f.Position, f.Rotation, f.a, f.b)
}
