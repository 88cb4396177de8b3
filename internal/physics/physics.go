// Package physics provides collision detection for circles, segments and polygons.
package physics

import "github.com/tomz197/patatoids/internal/vector"

// Polygon is a closed outline in world coordinates.
// The last point connects back to the first.
type Polygon []vector.Vector

// CirclesOverlap checks if two circles overlap.
func CirclesOverlap(c1 vector.Vector, r1 float64, c2 vector.Vector, r2 float64) bool {
	minDist := r1 + r2
	return c1.Sub(c2).MagSq() < minDist*minDist
}

// SegmentsIntersect reports whether segment a1-a2 crosses segment b1-b2.
// Touching endpoints count as an intersection.
func SegmentsIntersect(a1, a2, b1, b2 vector.Vector) bool {
	d1 := orientation(b1, b2, a1)
	d2 := orientation(b1, b2, a2)
	d3 := orientation(a1, a2, b1)
	d4 := orientation(a1, a2, b2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	return (d1 == 0 && onSegment(b1, b2, a1)) ||
		(d2 == 0 && onSegment(b1, b2, a2)) ||
		(d3 == 0 && onSegment(a1, a2, b1)) ||
		(d4 == 0 && onSegment(a1, a2, b2))
}

// orientation is the signed area of the triangle a, b, c.
func orientation(a, b, c vector.Vector) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// onSegment assumes p is collinear with a-b.
func onSegment(a, b, p vector.Vector) bool {
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}

// SegmentDistance returns the shortest distance from p to segment a-b.
func SegmentDistance(p, a, b vector.Vector) float64 {
	ab := b.Sub(a)
	lenSq := ab.MagSq()
	if lenSq == 0 {
		return p.Dist(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	t = max(0, min(1, t))
	return p.Dist(a.Add(ab.Scale(t)))
}

// Contains reports whether p lies inside the polygon (even-odd rule).
func (poly Polygon) Contains(p vector.Vector) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			x := pj.X + (p.Y-pj.Y)*(pi.X-pj.X)/(pi.Y-pj.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// IntersectsSegment reports whether segment a-b touches the polygon,
// either by crossing an edge or by lying inside it.
func (poly Polygon) IntersectsSegment(a, b vector.Vector) bool {
	if len(poly) < 3 {
		return false
	}
	if poly.Contains(a) || poly.Contains(b) {
		return true
	}
	n := len(poly)
	for i := 0; i < n; i++ {
		if SegmentsIntersect(a, b, poly[i], poly[(i+1)%n]) {
			return true
		}
	}
	return false
}

// IntersectsPolygon reports whether two polygons overlap.
func (poly Polygon) IntersectsPolygon(other Polygon) bool {
	if len(poly) < 3 || len(other) < 3 {
		return false
	}
	n := len(poly)
	for i := 0; i < n; i++ {
		if other.IntersectsSegment(poly[i], poly[(i+1)%n]) {
			return true
		}
	}
	// other entirely inside poly
	return poly.Contains(other[0])
}

// IntersectsCircle reports whether the polygon overlaps a circle.
func (poly Polygon) IntersectsCircle(center vector.Vector, radius float64) bool {
	if len(poly) < 3 {
		return false
	}
	if poly.Contains(center) {
		return true
	}
	n := len(poly)
	for i := 0; i < n; i++ {
		if SegmentDistance(center, poly[i], poly[(i+1)%n]) <= radius {
			return true
		}
	}
	return false
}
