// Package vector provides 2D vector math for positions and velocities.
package vector

import "math"

// Vector is a 2D vector. It is a value type; every operation returns a new vector.
type Vector struct {
	X, Y float64
}

// New returns the vector (x, y).
func New(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// FromAngle creates a vector pointing at angle (radians) with the given magnitude.
func FromAngle(angle, magnitude float64) Vector {
	return Vector{
		X: magnitude * math.Cos(angle),
		Y: magnitude * math.Sin(angle),
	}
}

// Add returns v + other.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector) Sub(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies the vector by factor.
func (v Vector) Scale(factor float64) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

// Mag returns the magnitude of the vector.
func (v Vector) Mag() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// MagSq returns the squared magnitude (cheaper for comparisons).
func (v Vector) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// The zero vector stays zero.
func (v Vector) Normalize() Vector {
	m := v.Mag()
	if m == 0 {
		return Vector{}
	}
	return Vector{X: v.X / m, Y: v.Y / m}
}

// SetMag returns a vector with the same direction and the given magnitude.
func (v Vector) SetMag(magnitude float64) Vector {
	return v.Normalize().Scale(magnitude)
}

// Limit caps the magnitude at max.
func (v Vector) Limit(max float64) Vector {
	if v.MagSq() > max*max {
		return v.SetMag(max)
	}
	return v
}

// Dist returns the distance between two points.
func (v Vector) Dist(other Vector) float64 {
	return v.Sub(other).Mag()
}

// Dot returns the dot product.
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product.
func (v Vector) Cross(other Vector) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Heading returns the angle of the vector in radians.
func (v Vector) Heading() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate rotates the vector by angle radians.
func (v Vector) Rotate(angle float64) Vector {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}
