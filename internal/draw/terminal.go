package draw

import (
	"bytes"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// maxChunkSize is the most bytes handed to the terminal in one write.
// Frames can be tens of kilobytes; smaller writes keep an SSH channel flowing.
const maxChunkSize = 1400

// ANSI control sequences.
const (
	seqClear      = "\033[H\033[2J"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
)

// Frame collects everything written to the terminal between two Flush calls.
// Text positions are relative to the canvas; the offset centers the canvas
// in the terminal. Frame is an io.Writer so Canvas.Render can write into it.
type Frame struct {
	out    io.Writer
	buf    bytes.Buffer
	num    [20]byte
	offCol int
	offRow int
}

// NewFrame creates a frame writing to w with no offset.
func NewFrame(w io.Writer) *Frame {
	return &Frame{out: w}
}

// SetOffset moves the canvas origin, e.g. after a resize.
func (f *Frame) SetOffset(col, row int) {
	f.offCol = col
	f.offRow = row
}

// Begin starts a new frame by clearing the whole terminal. The clear ignores
// the offset so borders and letterbox areas are wiped too.
func (f *Frame) Begin() {
	f.buf.WriteString(seqClear)
}

// HideCursor queues hiding the terminal cursor.
func (f *Frame) HideCursor() {
	f.buf.WriteString(seqHideCursor)
}

// ShowCursor queues restoring the terminal cursor.
func (f *Frame) ShowCursor() {
	f.buf.WriteString(seqShowCursor)
}

// moveTo queues a cursor move to the 1-based canvas cell (col, row).
func (f *Frame) moveTo(col, row int) {
	f.buf.WriteString("\033[")
	f.buf.Write(strconv.AppendInt(f.num[:0], int64(row+f.offRow), 10))
	f.buf.WriteByte(';')
	f.buf.Write(strconv.AppendInt(f.num[:0], int64(col+f.offCol), 10))
	f.buf.WriteByte('H')
}

// Text queues s at the 1-based canvas cell (col, row).
func (f *Frame) Text(col, row int, s string) {
	f.moveTo(col, row)
	f.buf.WriteString(s)
}

// Write queues raw output. Positions inside p are absolute.
func (f *Frame) Write(p []byte) (int, error) {
	return f.buf.Write(p)
}

var _ io.Writer = (*Frame)(nil)

// Flush sends the queued output in chunks of at most maxChunkSize bytes.
// The buffer is emptied even when a write fails.
func (f *Frame) Flush() error {
	defer f.buf.Reset()
	data := f.buf.Bytes()
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := f.out.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// TermSizeFunc returns the terminal size in columns and rows.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc reads the size of the local terminal on stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}
