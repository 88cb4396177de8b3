package draw

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/tomz197/patatoids/internal/vector"
)

func TestFitSize(t *testing.T) {
	tests := []struct {
		name                   string
		termW, termH           int
		cols, rows, offC, offR int
	}{
		{"exact", 120, 40, 120, 40, 0, 0},
		{"wide_terminal", 200, 40, 120, 40, 40, 0},
		{"tall_terminal", 120, 60, 120, 40, 0, 10},
		{"small", 60, 40, 60, 20, 0, 10},
		{"empty", 0, 0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows, offC, offR := FitSize(tt.termW, tt.termH, 960, 640)
			if cols != tt.cols || rows != tt.rows || offC != tt.offC || offR != tt.offR {
				t.Errorf("FitSize(%d, %d) = %d, %d, %d, %d; expected %d, %d, %d, %d",
					tt.termW, tt.termH, cols, rows, offC, offR, tt.cols, tt.rows, tt.offC, tt.offR)
			}
		})
	}
}

func TestCanvas_Fit(t *testing.T) {
	c := NewScaledCanvas(120, 40, 960, 640)
	if c.Fit(120, 40) {
		t.Error("Fit() with the same size should report no change")
	}
	if !c.Fit(200, 40) {
		t.Error("Fit() with a wider terminal should report a change")
	}
	if c.OffsetCol() != 40 || c.TerminalWidth() != 120 {
		t.Errorf("offset=%d width=%d", c.OffsetCol(), c.TerminalWidth())
	}
}

func TestCanvas_LineRender(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.Line(vector.New(0, 0), vector.New(9, 0), color.White)

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if got := strings.Count(buf.String(), string(BlockUpperHalf)); got != 10 {
		t.Errorf("expected 10 upper half blocks, got %d", got)
	}
	if !strings.HasPrefix(buf.String(), "\033[1;1H") {
		t.Errorf("render should start at the top-left cell, got %q", buf.String()[:min(12, buf.Len())])
	}

	c.Clear()
	buf.Reset()
	if err := c.Render(&buf); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("cleared canvas rendered %d bytes", buf.Len())
	}
}

func TestCanvas_FullBlock(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.Point(vector.New(1, 0), nil)
	c.Point(vector.New(1, 1), nil)
	c.Point(vector.New(100, 100), nil) // Off canvas, ignored

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\033[1;2H"+string(BlockFull) {
		t.Errorf("Render() = %q", buf.String())
	}
}

func TestCanvas_Polygon(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	c.Polygon([]vector.Vector{{X: 2, Y: 2}, {X: 10, Y: 2}, {X: 10, Y: 10}}, color.White)

	for _, p := range [][2]int{{2, 2}, {10, 2}, {10, 10}, {6, 6}} {
		if !c.pixelAt(p[0], p[1]) {
			t.Errorf("pixel %v should be set", p)
		}
	}
	if c.pixelAt(15, 15) {
		t.Error("pixel outside the outline should be clear")
	}
}

func TestCanvas_RenderBorder(t *testing.T) {
	c := NewScaledCanvas(120, 40, 960, 640)
	var buf bytes.Buffer
	if err := c.RenderBorder(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Error("no border without room around the canvas")
	}

	c.Fit(140, 44)
	if err := c.RenderBorder(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "│") {
		t.Error("side bars expected when the terminal is wider than the canvas")
	}
}

func TestFrame(t *testing.T) {
	var out bytes.Buffer
	f := NewFrame(&out)
	f.SetOffset(2, 3)
	f.Text(1, 1, "hi")
	f.Write([]byte("!"))

	if out.Len() != 0 {
		t.Error("nothing should be written before Flush")
	}
	if err := f.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "\033[4;3Hhi!" {
		t.Errorf("Flush() wrote %q", got)
	}
}

func TestFrame_BeginIgnoresOffset(t *testing.T) {
	var out bytes.Buffer
	f := NewFrame(&out)
	f.SetOffset(10, 5)
	f.HideCursor()
	f.Begin()
	f.Text(1, 1, "x")
	f.ShowCursor()
	if err := f.Flush(); err != nil {
		t.Fatal(err)
	}

	expected := "\033[?25l\033[H\033[2J\033[6;11Hx\033[?25h"
	if got := out.String(); got != expected {
		t.Errorf("Flush() wrote %q, expected %q", got, expected)
	}
}

// chunkRecorder records the size of every write.
type chunkRecorder struct {
	bytes.Buffer
	sizes []int
}

func (r *chunkRecorder) Write(p []byte) (int, error) {
	r.sizes = append(r.sizes, len(p))
	return r.Buffer.Write(p)
}

func TestFrame_FlushChunks(t *testing.T) {
	var out chunkRecorder
	f := NewFrame(&out)
	long := strings.Repeat("x", 2*maxChunkSize+10)
	f.Write([]byte(long))
	if err := f.Flush(); err != nil {
		t.Fatal(err)
	}

	if out.String() != long {
		t.Error("chunked flush should write everything")
	}
	expected := []int{maxChunkSize, maxChunkSize, 10}
	if len(out.sizes) != len(expected) {
		t.Fatalf("write sizes = %v, expected %v", out.sizes, expected)
	}
	for i := range expected {
		if out.sizes[i] != expected[i] {
			t.Errorf("write sizes = %v, expected %v", out.sizes, expected)
			break
		}
	}

	out.Reset()
	if err := f.Flush(); err != nil || out.Len() != 0 {
		t.Error("second Flush should write nothing")
	}
}
