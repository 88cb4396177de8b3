// Package loop runs a game on a terminal: Input → Update → Draw at a fixed rate.
package loop

import (
	"bufio"
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/patatoids/internal/config"
	"github.com/tomz197/patatoids/internal/draw"
	"github.com/tomz197/patatoids/internal/game"
	"github.com/tomz197/patatoids/internal/input"
	"github.com/tomz197/patatoids/internal/object"
	"github.com/tomz197/patatoids/internal/render"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// idleWarning is how long before an idle disconnect the warning is shown.
const idleWarning = 30 * time.Second

// ErrIdle is returned by Run when the player was inactive for too long.
var ErrIdle = errors.New("idle timeout")

// Options configures a terminal session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Settings     config.Settings
	IdleTimeout  time.Duration // 0 disables the idle disconnect
	Logger       *log.Logger
}

// session holds the per-terminal state of a running game.
type session struct {
	game      *game.Game
	canvas    *draw.Canvas
	frame     *draw.Frame
	renderer  *render.Renderer
	stream    *input.Stream
	tracker   input.Tracker
	termSize  draw.TermSizeFunc
	logger    *log.Logger
	idle      time.Duration
	lastInput time.Time
}

// Run plays one game on the terminal behind r and w. It returns nil when the
// player quits or the input closes, ErrIdle after IdleTimeout without input,
// and ctx.Err() when ctx is done.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	termSize := opts.TermSizeFunc
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	settings := opts.Settings
	if settings.Width <= 0 || settings.Height <= 0 {
		settings = config.Default()
	}

	bounds := object.Bounds{Width: settings.Width, Height: settings.Height}
	termWidth, termHeight, _ := termSize()
	canvas := draw.NewScaledCanvas(termWidth, termHeight, bounds.Width, bounds.Height)

	s := &session{
		game: game.New(game.Options{
			Bounds:     bounds,
			Seed:       settings.SeedOrNow(time.Now()),
			StartLevel: settings.StartLevel,
			Logger:     logger,
		}),
		canvas:    canvas,
		frame:     draw.NewFrame(w),
		renderer:  render.New(canvas),
		stream:    input.StartStream(r),
		termSize:  termSize,
		logger:    logger,
		idle:      opts.IdleTimeout,
		lastInput: time.Now(),
	}

	s.frame.SetOffset(canvas.OffsetCol(), canvas.OffsetRow())
	s.frame.HideCursor()
	s.frame.Begin()
	if err := s.frame.Flush(); err != nil {
		return err
	}
	defer func() {
		s.frame.Begin()
		s.frame.ShowCursor()
		_ = s.frame.Flush()
	}()

	for {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		s.processInput(frameStart)
		if s.game.Quit() {
			return nil
		}
		if s.idle > 0 && frameStart.Sub(s.lastInput) > s.idle {
			s.logger.Info("idle disconnect", "after", s.idle)
			return ErrIdle
		}

		// ===== UPDATE PHASE =====
		s.updateScreen()
		s.game.Update()

		// ===== DRAW PHASE =====
		if err := s.drawFrame(frameStart); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		wait := targetFrameTime - time.Since(frameStart)
		if wait <= 0 {
			wait = time.Millisecond
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// processInput turns held keys into press/release events for the game.
func (s *session) processInput(now time.Time) {
	pressed, released := s.tracker.Edges(input.ReadInput(s.stream))
	for _, k := range pressed {
		s.game.KeyPressed(k)
	}
	for _, k := range released {
		s.game.KeyReleased(k)
	}
	if len(pressed) > 0 {
		s.lastInput = now
	}
}

// updateScreen refits the canvas after a terminal resize.
func (s *session) updateScreen() {
	termWidth, termHeight, err := s.termSize()
	if err != nil {
		return
	}
	if s.canvas.Fit(termWidth, termHeight) {
		s.frame.SetOffset(s.canvas.OffsetCol(), s.canvas.OffsetRow())
	}
}

// drawFrame clears the screen, draws all objects and the UI overlay.
func (s *session) drawFrame(now time.Time) error {
	s.frame.Begin()
	s.canvas.Clear()
	s.game.Draw(s.renderer)
	if err := s.canvas.Render(s.frame); err != nil {
		return err
	}
	if err := s.canvas.RenderBorder(s.frame); err != nil {
		return err
	}

	var idleLeft time.Duration
	if s.idle > 0 {
		idleLeft = s.idle - now.Sub(s.lastInput)
	}
	drawUI(s.frame, s.canvas.TerminalWidth(), s.canvas.TerminalHeight(), s.game.Status(), idleLeft)

	return s.frame.Flush()
}
