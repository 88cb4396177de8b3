package main

import (
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tomz197/patatoids/internal/game"
)

func TestSnapshot(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	opts := options{seed: 7, ticks: 120, level: 1, fire: true, width: 320, height: 200, out: out}

	status, err := snapshot(opts, log.New(io.Discard))
	if err != nil {
		t.Fatalf("snapshot() error: %v", err)
	}
	if status.State != game.StatePlaying && status.State != game.StateLevelCleared && status.State != game.StateShipLost {
		t.Errorf("unexpected state %v", status.State)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Errorf("image size = %dx%d, expected 320x200", b.Dx(), b.Dy())
	}
}

func TestSnapshot_InvalidSize(t *testing.T) {
	_, err := snapshot(options{width: 0, height: 10, out: filepath.Join(t.TempDir(), "x.png")}, log.New(io.Discard))
	if err == nil {
		t.Error("expected an error for an empty world")
	}
}
