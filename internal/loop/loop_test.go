package loop

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/patatoids/internal/config"
	"github.com/tomz197/patatoids/internal/draw"
	"github.com/tomz197/patatoids/internal/game"
)

func fixedSize(w, h int) draw.TermSizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func testOptions() Options {
	s := config.Default()
	s.Seed = 1
	return Options{TermSizeFunc: fixedSize(120, 40), Settings: s}
}

func TestRun_QuitsWhenInputCloses(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out bytes.Buffer
	err := Run(ctx, bufio.NewReader(strings.NewReader("")), &out, testOptions())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	got := out.String()
	if !strings.HasPrefix(got, "\033[?25l") {
		t.Error("Run() should hide the cursor first")
	}
	if !strings.HasSuffix(got, "\033[H\033[2J\033[?25h") {
		t.Error("Run() should clear the screen and restore the cursor on exit")
	}
}

func TestRun_StartAndQuit(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pr, pw := io.Pipe()
	defer pw.Close()
	go func() {
		pw.Write([]byte("\r"))
		time.Sleep(200 * time.Millisecond)
		pw.Write([]byte("q"))
	}()

	var out bytes.Buffer
	if err := Run(ctx, bufio.NewReader(pr), &out, testOptions()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(out.String(), "Score: 0") {
		t.Error("the playing HUD should have been drawn after ENTER")
	}
}

func TestRun_IdleTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pr, pw := io.Pipe()
	defer pw.Close()

	opts := testOptions()
	opts.IdleTimeout = 50 * time.Millisecond

	err := Run(ctx, bufio.NewReader(pr), io.Discard, opts)
	if !errors.Is(err, ErrIdle) {
		t.Errorf("Run() error = %v, expected ErrIdle", err)
	}
}

func TestRun_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	pr, pw := io.Pipe()
	defer pw.Close()

	err := Run(ctx, bufio.NewReader(pr), io.Discard, testOptions())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, expected context.DeadlineExceeded", err)
	}
}

func TestDrawUI(t *testing.T) {
	tests := []struct {
		name     string
		status   game.Status
		idleLeft time.Duration
		expected []string
	}{
		{"title", game.Status{State: game.StateTitle}, 0, []string{"|P|A|T|A|T|O|I|D|S|", "Press ENTER to start"}},
		{"playing", game.Status{State: game.StatePlaying, Score: 140, Level: 2, Lives: 3}, 0, []string{"Score: 140", "Level 2", "Lives: 3"}},
		{"ufo_incoming", game.Status{State: game.StatePlaying, NextUfo: 2 * time.Second}, 0, []string{"UFO incoming!"}},
		{"cleared", game.Status{State: game.StateLevelCleared, Level: 3, Countdown: 2500 * time.Millisecond}, 0, []string{"LEVEL 3 CLEARED", "Next level in 3"}},
		{"ship_lost", game.Status{State: game.StateShipLost, Lives: 1}, 0, []string{"SHIP LOST", "Lives remaining: 1"}},
		{"game_over", game.Status{State: game.StateGameOver, Score: 900, Level: 4}, 0, []string{"GAME OVER", "Score: 900"}},
		{"paused", game.Status{State: game.StatePlaying, Paused: true}, 0, []string{"PAUSED"}},
		{"idle", game.Status{State: game.StatePlaying}, 10 * time.Second, []string{"INACTIVITY WARNING", "in 10 seconds"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			f := draw.NewFrame(&out)
			drawUI(f, 120, 40, tt.status, tt.idleLeft)
			if err := f.Flush(); err != nil {
				t.Fatal(err)
			}
			for _, want := range tt.expected {
				if !strings.Contains(out.String(), want) {
					t.Errorf("overlay missing %q", want)
				}
			}
		})
	}
}

func TestDrawUI_NoIdleWarningEarly(t *testing.T) {
	var out bytes.Buffer
	f := draw.NewFrame(&out)
	drawUI(f, 120, 40, game.Status{State: game.StatePlaying}, time.Minute)
	f.Flush()

	if strings.Contains(out.String(), "INACTIVITY") {
		t.Error("warning shown too early")
	}
}
