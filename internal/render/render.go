// Package render turns entity draw calls into strokes on a Painter.
//
// A Painter is the only thing a front end has to provide: the terminal
// canvas, the ebiten window and the PNG image all implement it.
package render

import (
	"image/color"
	"math"

	"github.com/tomz197/patatoids/internal/object"
	"github.com/tomz197/patatoids/internal/vector"
)

// Painter draws primitives in logical (world) coordinates.
type Painter interface {
	Line(a, b vector.Vector, c color.Color)
	Polygon(points []vector.Vector, c color.Color)
	Point(p vector.Vector, c color.Color)
}

// Palette.
var (
	AsteroidColor = color.RGBA{R: 0xc8, G: 0xb8, B: 0x9a, A: 0xff}
	ShipColor     = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	FlameColor    = color.RGBA{R: 0xff, G: 0x8c, B: 0x1a, A: 0xff}
	UfoColor      = color.RGBA{R: 0x6c, G: 0xe0, B: 0x6c, A: 0xff}
	LaserColor    = color.RGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}
	FragmentColor = color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
	SparkColor    = color.RGBA{R: 0xff, G: 0xd0, B: 0x40, A: 0xff}
)

// ufoDome sits on top of the saucer, in local coordinates.
var ufoDome = []vector.Vector{
	{X: -6, Y: -6},
	{X: -4, Y: -11},
	{X: 4, Y: -11},
	{X: 6, Y: -6},
}

// Renderer implements object.Renderer on top of a Painter.
type Renderer struct {
	p Painter

	buf []vector.Vector // Reused for transformed outlines
}

var _ object.Renderer = (*Renderer)(nil)

// New creates a renderer drawing to p.
func New(p Painter) *Renderer {
	return &Renderer{p: p}
}

// transform places local points at position, rotated by rotation.
func (r *Renderer) transform(position vector.Vector, rotation float64, points []vector.Vector) []vector.Vector {
	if cap(r.buf) < len(points) {
		r.buf = make([]vector.Vector, len(points))
	}
	out := r.buf[:len(points)]
	for i, pt := range points {
		out[i] = position.Add(pt.Rotate(rotation))
	}
	return out
}

// DrawPolygon draws an asteroid outline.
func (r *Renderer) DrawPolygon(position vector.Vector, rotation float64, points []vector.Vector) {
	r.p.Polygon(r.transform(position, rotation, points), AsteroidColor)
}

// DrawShip draws the ship triangle, with a flame behind it while boosting.
func (r *Renderer) DrawShip(position vector.Vector, heading float64, boost bool) {
	r.p.Polygon(object.ShipOutline(position, heading), ShipColor)
	if !boost {
		return
	}

	back := heading + math.Pi
	left := position.Add(vector.FromAngle(back-0.35, object.ShipSize*0.5))
	right := position.Add(vector.FromAngle(back+0.35, object.ShipSize*0.5))
	tip := position.Add(vector.FromAngle(back, object.ShipSize*1.1))
	r.p.Line(left, tip, FlameColor)
	r.p.Line(right, tip, FlameColor)
}

// DrawUfo draws the saucer with its dome and rim.
func (r *Renderer) DrawUfo(position vector.Vector) {
	outline := object.UfoOutline(position)
	r.p.Polygon(outline, UfoColor)
	r.p.Line(outline[0], outline[3], UfoColor)
	r.p.Polygon(r.transform(position, 0, ufoDome), UfoColor)
}

// DrawLaser draws a laser streak.
func (r *Renderer) DrawLaser(from, to vector.Vector) {
	r.p.Line(from, to, LaserColor)
}

// DrawFragment draws one piece of ship debris.
func (r *Renderer) DrawFragment(position vector.Vector, rotation float64, a, b vector.Vector) {
	r.p.Line(position.Add(a.Rotate(rotation)), position.Add(b.Rotate(rotation)), FragmentColor)
}

// DrawExplosion draws the particles, fading out as progress reaches 1.
func (r *Renderer) DrawExplosion(position vector.Vector, particles []vector.Vector, progress float64) {
	c := fade(SparkColor, 1-progress)
	for _, pt := range particles {
		r.p.Point(position.Add(pt), c)
	}
}

// fade scales a colour's alpha (premultiplied) by k in [0, 1].
func fade(c color.RGBA, k float64) color.RGBA {
	k = math.Max(0, math.Min(1, k))
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}
