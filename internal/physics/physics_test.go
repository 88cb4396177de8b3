package physics

import (
	"testing"

	"github.com/tomz197/patatoids/internal/vector"
)

func square(cx, cy, half float64) Polygon {
	return Polygon{
		vector.New(cx-half, cy-half),
		vector.New(cx+half, cy-half),
		vector.New(cx+half, cy+half),
		vector.New(cx-half, cy+half),
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name     string
		c1, c2   vector.Vector
		r1, r2   float64
		expected bool
	}{
		{"overlapping", vector.New(0, 0), vector.New(3, 0), 2, 2, true},
		{"touching", vector.New(0, 0), vector.New(4, 0), 2, 2, false},
		{"apart", vector.New(0, 0), vector.New(10, 0), 2, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesOverlap(tt.c1, tt.r1, tt.c2, tt.r2); got != tt.expected {
				t.Errorf("CirclesOverlap() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 vector.Vector
		expected       bool
	}{
		{"crossing", vector.New(0, 0), vector.New(10, 10), vector.New(0, 10), vector.New(10, 0), true},
		{"parallel", vector.New(0, 0), vector.New(10, 0), vector.New(0, 1), vector.New(10, 1), false},
		{"touching_endpoint", vector.New(0, 0), vector.New(5, 5), vector.New(5, 5), vector.New(10, 0), true},
		{"collinear_disjoint", vector.New(0, 0), vector.New(1, 0), vector.New(2, 0), vector.New(3, 0), false},
		{"short_of_crossing", vector.New(0, 0), vector.New(4, 4), vector.New(0, 10), vector.New(10, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentsIntersect(tt.a1, tt.a2, tt.b1, tt.b2); got != tt.expected {
				t.Errorf("SegmentsIntersect() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestSegmentDistance(t *testing.T) {
	d := SegmentDistance(vector.New(5, 3), vector.New(0, 0), vector.New(10, 0))
	if d != 3 {
		t.Errorf("SegmentDistance() = %v, expected 3", d)
	}

	d = SegmentDistance(vector.New(-4, 3), vector.New(0, 0), vector.New(10, 0))
	if d != 5 {
		t.Errorf("SegmentDistance() past endpoint = %v, expected 5", d)
	}
}

func TestPolygon_Contains(t *testing.T) {
	sq := square(0, 0, 5)
	if !sq.Contains(vector.New(1, 1)) {
		t.Error("center point should be inside")
	}
	if sq.Contains(vector.New(6, 0)) {
		t.Error("outside point reported inside")
	}
}

func TestPolygon_IntersectsSegment(t *testing.T) {
	sq := square(0, 0, 5)

	if !sq.IntersectsSegment(vector.New(-10, 0), vector.New(10, 0)) {
		t.Error("segment through the polygon should intersect")
	}
	if !sq.IntersectsSegment(vector.New(0, 0), vector.New(1, 0)) {
		t.Error("segment fully inside should intersect")
	}
	if sq.IntersectsSegment(vector.New(10, 10), vector.New(20, 20)) {
		t.Error("distant segment should not intersect")
	}
}

func TestPolygon_IntersectsPolygon(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Polygon
		expected bool
	}{
		{"overlapping_edges", square(0, 0, 5), square(8, 0, 5), true},
		{"contained", square(0, 0, 10), square(0, 0, 2), true},
		{"containing", square(0, 0, 2), square(0, 0, 10), true},
		{"apart", square(0, 0, 5), square(20, 0, 5), false},
		{"degenerate", Polygon{vector.New(0, 0)}, square(0, 0, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.IntersectsPolygon(tt.b); got != tt.expected {
				t.Errorf("IntersectsPolygon() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestPolygon_IntersectsCircle(t *testing.T) {
	sq := square(0, 0, 5)

	if !sq.IntersectsCircle(vector.New(7, 0), 3) {
		t.Error("circle overlapping an edge should intersect")
	}
	if !sq.IntersectsCircle(vector.New(0, 0), 1) {
		t.Error("circle inside should intersect")
	}
	if sq.IntersectsCircle(vector.New(20, 0), 3) {
		t.Error("distant circle should not intersect")
	}
}
