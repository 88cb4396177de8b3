// Package object holds the entity kinds of a level: asteroids, the ship and
// its fragments, UFOs, lasers and explosions.
//
// Entities never reference whoever owns them. Motion is integrated once per
// Update call (one tick); collision geometry is exposed through Hull.
package object

import (
	"github.com/tomz197/patatoids/internal/physics"
	"github.com/tomz197/patatoids/internal/vector"
)

// Bounds is the logical screen size. Spawning and wrapping use it.
type Bounds struct {
	Width  float64
	Height float64
}

// Center returns the middle of the screen.
func (b Bounds) Center() vector.Vector {
	return vector.New(b.Width/2, b.Height/2)
}

// Contains reports whether p is on screen.
func (b Bounds) Contains(p vector.Vector) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// Wrap moves p to the opposite side once it is more than margin past an edge
// (Asteroids-style). margin lets large objects leave the screen fully first.
func (b Bounds) Wrap(p vector.Vector, margin float64) vector.Vector {
	spanX := b.Width + 2*margin
	spanY := b.Height + 2*margin

	if p.X < -margin {
		p.X += spanX
	} else if p.X > b.Width+margin {
		p.X -= spanX
	}
	if p.Y < -margin {
		p.Y += spanY
	} else if p.Y > b.Height+margin {
		p.Y -= spanY
	}
	return p
}

// Hull is the collision geometry of an entity: a bounding circle, refined by
// an outline when one is set.
type Hull struct {
	Center  vector.Vector
	Radius  float64
	Outline physics.Polygon
}

// Overlaps reports a hull collision between h and o.
func (h Hull) Overlaps(o Hull) bool {
	if !physics.CirclesOverlap(h.Center, h.Radius, o.Center, o.Radius) {
		return false
	}
	switch {
	case h.Outline != nil && o.Outline != nil:
		return h.Outline.IntersectsPolygon(o.Outline)
	case h.Outline != nil:
		return h.Outline.IntersectsCircle(o.Center, o.Radius)
	case o.Outline != nil:
		return o.Outline.IntersectsCircle(h.Center, h.Radius)
	default:
		return true
	}
}

// HitBySegment reports whether the swept segment a-b touches the hull.
func (h Hull) HitBySegment(a, b vector.Vector) bool {
	if physics.SegmentDistance(h.Center, a, b) > h.Radius {
		return false
	}
	if h.Outline == nil {
		return true
	}
	return h.Outline.IntersectsSegment(a, b)
}

// Collider is implemented by entities that take part in collisions.
type Collider interface {
	Hull() Hull
}

// Renderer draws entities. Implementations must not mutate simulation state.
// Shapes given in local coordinates are placed at position and rotated by
// rotation; everything else is in world coordinates.
type Renderer interface {
	DrawPolygon(position vector.Vector, rotation float64, points []vector.Vector)
	DrawShip(position vector.Vector, heading float64, boost bool)
	DrawUfo(position vector.Vector)
	DrawLaser(from, to vector.Vector)
	DrawFragment(position vector.Vector, rotation float64, a, b vector.Vector)
	DrawExplosion(position vector.Vector, particles []vector.Vector, progress float64)
}

// Drawable is implemented by every entity kind.
type Drawable interface {
	Draw(r Renderer)
}

var (
	_ Drawable = (*Asteroid)(nil)
	_ Drawable = (*Ship)(nil)
	_ Drawable = (*Ufo)(nil)
	_ Drawable = (*Laser)(nil)
	_ Drawable = (*Fragment)(nil)
	_ Drawable = (*Explosion)(nil)
)

// localToWorld places local points at position, rotated by rotation.
func localToWorld(position vector.Vector, rotation float64, points []vector.Vector) physics.Polygon {
	out := make(physics.Polygon, len(points))
	for i, p := range points {
		out[i] = position.Add(p.Rotate(rotation))
	}
	return out
}
