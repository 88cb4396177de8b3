package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"github.com/tomz197/patatoids/internal/vector"
)

const (
	imageLineWidth   = 1.5
	imagePointRadius = 1.5
)

// ImagePainter paints onto an offscreen gg context.
// Stroke errors are kept and reported by Err, SavePNG and EncodePNG.
type ImagePainter struct {
	dc  *gg.Context
	err error
}

var _ Painter = (*ImagePainter)(nil)

// NewImagePainter creates a black image of the given size.
func NewImagePainter(width, height int) *ImagePainter {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.Black)
	dc.SetLineWidth(imageLineWidth)
	return &ImagePainter{dc: dc}
}

// Clear paints the whole image black and forgets earlier errors.
func (p *ImagePainter) Clear() {
	p.dc.ClearWithColor(gg.Black)
	p.err = nil
}

func (p *ImagePainter) keep(err error) {
	if err != nil && p.err == nil {
		p.err = err
	}
}

// Line strokes a segment.
func (p *ImagePainter) Line(a, b vector.Vector, c color.Color) {
	p.dc.SetColor(c)
	p.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	p.keep(p.dc.Stroke())
}

// Polygon strokes a closed outline.
func (p *ImagePainter) Polygon(points []vector.Vector, c color.Color) {
	if len(points) < 2 {
		return
	}
	p.dc.SetColor(c)
	p.dc.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.dc.LineTo(pt.X, pt.Y)
	}
	p.dc.ClosePath()
	p.keep(p.dc.Stroke())
}

// Point fills a small dot.
func (p *ImagePainter) Point(pt vector.Vector, c color.Color) {
	p.dc.SetColor(c)
	p.dc.DrawPoint(pt.X, pt.Y, imagePointRadius)
	p.keep(p.dc.Fill())
}

// Err returns the first drawing error since the last Clear.
func (p *ImagePainter) Err() error {
	return p.err
}

// Image returns the painted image.
func (p *ImagePainter) Image() image.Image {
	return p.dc.Image()
}

// SavePNG writes the image to path.
func (p *ImagePainter) SavePNG(path string) error {
	if p.err != nil {
		return fmt.Errorf("painting: %w", p.err)
	}
	if err := p.dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the image as PNG to w.
func (p *ImagePainter) EncodePNG(w io.Writer) error {
	if p.err != nil {
		return fmt.Errorf("painting: %w", p.err)
	}
	if err := p.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
