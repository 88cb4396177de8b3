package draw

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/tomz197/patatoids/internal/vector"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Game objects draw in logical coordinates; the canvas scales them to terminal pixels.
// The terminal is monochrome, so colours passed to the Painter methods are ignored.
type Canvas struct {
	termWidth      int    // Terminal columns used by the canvas
	termHeight     int    // Terminal rows used by the canvas
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x] - true if pixel is set

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area inside a larger terminal.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf strings.Builder // Reused for batching render output
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the terminal dimensions the canvas may occupy.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Fit(termWidth, termHeight)
	return c
}

// FitSize returns the largest canvas that shows the whole logical area inside
// a termWidth x termHeight terminal without distortion, and the offsets that
// center it. A terminal cell is treated as two square sub-pixels stacked.
func FitSize(termWidth, termHeight int, logicalWidth, logicalHeight float64) (cols, rows, offsetCol, offsetRow int) {
	if termWidth <= 0 || termHeight <= 0 {
		return 0, 0, 0, 0
	}
	scale := math.Min(float64(termWidth)/logicalWidth, float64(termHeight*2)/logicalHeight)

	cols = min(termWidth, max(1, int(logicalWidth*scale)))
	rows = min(termHeight, max(1, int(math.Ceil(logicalHeight*scale/2))))
	return cols, rows, (termWidth - cols) / 2, (termHeight - rows) / 2
}

// Fit resizes and centers the canvas inside a terminal of the given size.
// It reports whether the layout changed.
func (c *Canvas) Fit(termWidth, termHeight int) bool {
	cols, rows, offCol, offRow := FitSize(termWidth, termHeight, c.logicalWidth, c.logicalHeight)
	changed := cols != c.termWidth || rows != c.termHeight ||
		offCol != c.offsetCol || offRow != c.offsetRow

	c.Resize(cols, rows)
	c.offsetCol = offCol
	c.offsetRow = offRow
	return changed
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2

	// Reallocate if size changed
	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// pixelAt reports whether the sub-pixel at terminal coordinates is set.
func (c *Canvas) pixelAt(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

func (c *Canvas) toPixel(p vector.Vector) (int, int) {
	return int(math.Round(p.X * c.scaleX)), int(math.Round(p.Y * c.scaleY))
}

// Point sets the pixel under p.
func (c *Canvas) Point(p vector.Vector, _ color.Color) {
	c.setPixel(c.toPixel(p))
}

// Line draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) Line(p1, p2 vector.Vector, _ color.Color) {
	x1, y1 := c.toPixel(p1)
	x2, y2 := c.toPixel(p2)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Polygon draws a closed outline.
func (c *Canvas) Polygon(points []vector.Vector, clr color.Color) {
	if len(points) < 2 {
		return
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.Line(points[i], points[(i+1)%n], clr)
	}
}

// Render outputs the canvas to the writer using half-block characters.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 12) // Estimate ~12 bytes per cell

	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			top := c.pixelAt(col, row*2)
			bottom := c.pixelAt(col, row*2+1)

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue // Skip empty cells
			}

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, ch)
		}
	}

	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

// RenderBorder draws a box around the canvas when the terminal has room for it.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return nil
	}

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	bar := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	if hasV {
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, bar)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, bar)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, bar)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, bar)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

// TerminalWidth returns the canvas width in columns.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas height in rows.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
