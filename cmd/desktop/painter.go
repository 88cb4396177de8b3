package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/patatoids/internal/render"
	gvec "github.com/tomz197/patatoids/internal/vector"
)

const (
	strokeWidth = 1.5
	pointRadius = 1.5
)

// screenPainter strokes onto the ebiten screen for the current frame.
type screenPainter struct {
	screen *ebiten.Image
}

var _ render.Painter = (*screenPainter)(nil)

func (p *screenPainter) Line(a, b gvec.Vector, c color.Color) {
	vector.StrokeLine(p.screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), strokeWidth, c, true)
}

func (p *screenPainter) Polygon(points []gvec.Vector, c color.Color) {
	for i, pt := range points {
		next := points[(i+1)%len(points)]
		p.Line(pt, next, c)
	}
}

func (p *screenPainter) Point(pt gvec.Vector, c color.Color) {
	vector.DrawFilledCircle(p.screen, float32(pt.X), float32(pt.Y), pointRadius, c, true)
}
