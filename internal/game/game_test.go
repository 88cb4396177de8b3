package game

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/patatoids/internal/input"
	"github.com/tomz197/patatoids/internal/interval"
)

const tick = time.Second / 60

func newTestGame(levels LevelFunc) (*Game, *interval.ManualClock) {
	clock := interval.NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	g := New(Options{Seed: 1, Clock: clock, Levels: levels})
	return g, clock
}

// emptyLevels clears every level on the first tick.
func emptyLevels(int) Level {
	return Level{UfoSpawnInterval: time.Hour, UfoShootFrequency: time.Second}
}

// deadlyLevels sends a fast-shooting UFO after the ship within seconds.
func deadlyLevels(int) Level {
	return Level{Asteroids: 1, UfoShootFrequency: 500 * time.Millisecond}
}

// runUntil ticks the game until cond holds, failing after limit ticks.
func runUntil(t *testing.T, g *Game, clock *interval.ManualClock, limit int, cond func(Status) bool) {
	t.Helper()
	for range limit {
		if cond(g.Status()) {
			return
		}
		clock.Advance(tick)
		g.Update()
	}
	t.Fatalf("condition not reached after %d ticks, status %+v", limit, g.Status())
}

func TestLevelParams(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		expected Level
	}{
		{"first", 1, Level{4, 20 * time.Second, 5 * time.Second}},
		{"third", 3, Level{6, 16 * time.Second, 4 * time.Second}},
		{"capped", 10, Level{12, 8 * time.Second, 1500 * time.Millisecond}},
		{"below_one", 0, Level{4, 20 * time.Second, 5 * time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevelParams(tt.level); got != tt.expected {
				t.Errorf("LevelParams(%d) = %+v, expected %+v", tt.level, got, tt.expected)
			}
		})
	}
}

func TestPoints(t *testing.T) {
	tests := []struct {
		asteroids, ufos, expected int
	}{
		{0, 0, 0},
		{3, 0, 60},
		{0, 2, 200},
		{5, 1, 200},
	}

	for _, tt := range tests {
		if got := Points(tt.asteroids, tt.ufos); got != tt.expected {
			t.Errorf("Points(%d, %d) = %d, expected %d", tt.asteroids, tt.ufos, got, tt.expected)
		}
	}
}

func TestGame_Title(t *testing.T) {
	g, clock := newTestGame(nil)

	s := g.Status()
	if s.State != StateTitle {
		t.Fatalf("State = %v, expected title", s.State)
	}
	if s.Asteroids != TitleAsteroids {
		t.Errorf("title screen should show %d asteroids, got %d", TitleAsteroids, s.Asteroids)
	}

	g.KeyPressed(input.KeyPause)
	g.KeyPressed(input.KeyFire)
	clock.Advance(time.Minute)
	g.Update()

	if s := g.Status(); s.Paused || s.State != StateTitle || s.Ufos != 0 {
		t.Errorf("title screen should ignore game keys, status %+v", s)
	}
}

func TestGame_Start(t *testing.T) {
	g, _ := newTestGame(nil)
	g.KeyPressed(input.KeyEnter)

	s := g.Status()
	if s.State != StatePlaying || s.Level != 1 || s.Lives != InitialLives || s.Score != 0 {
		t.Fatalf("unexpected status after start: %+v", s)
	}
	if s.Asteroids != LevelParams(1).Asteroids {
		t.Errorf("Asteroids = %d, expected %d", s.Asteroids, LevelParams(1).Asteroids)
	}
	if s.NextUfo <= 0 {
		t.Error("UFO spawning should be armed while playing")
	}
}

func TestGame_StartLevelOption(t *testing.T) {
	clock := interval.NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	g := New(Options{Seed: 1, Clock: clock, StartLevel: 4})
	g.KeyPressed(input.KeyEnter)

	if got := g.Status().Level; got != 4 {
		t.Errorf("Level = %d, expected 4", got)
	}
}

func TestGame_LevelCleared(t *testing.T) {
	g, clock := newTestGame(emptyLevels)
	g.KeyPressed(input.KeyEnter)

	g.Update()
	s := g.Status()
	if s.State != StateLevelCleared {
		t.Fatalf("State = %v, expected level cleared", s.State)
	}
	if s.Countdown != TransitionDelay {
		t.Errorf("Countdown = %v, expected %v", s.Countdown, TransitionDelay)
	}
	if s.NextUfo != 0 {
		t.Error("UFO spawning should be disarmed after clearing a level")
	}

	clock.Advance(TransitionDelay)
	g.Update()
	if s := g.Status(); s.State != StatePlaying || s.Level != 2 {
		t.Errorf("expected level 2 to start, status %+v", s)
	}
}

func TestGame_PauseFreezesTransition(t *testing.T) {
	g, clock := newTestGame(emptyLevels)
	g.KeyPressed(input.KeyEnter)
	g.Update()

	g.KeyPressed(input.KeyPause)
	if !g.Status().Paused {
		t.Fatal("P should pause the game")
	}
	for range 10 {
		clock.Advance(time.Second)
		g.Update()
	}
	if s := g.Status(); s.State != StateLevelCleared || s.Countdown != TransitionDelay {
		t.Fatalf("transition advanced while paused, status %+v", s)
	}

	g.KeyPressed(input.KeyPause)
	if g.Status().Paused {
		t.Fatal("P again should resume")
	}
	clock.Advance(TransitionDelay)
	g.Update()
	if got := g.Status().Level; got != 2 {
		t.Errorf("Level = %d, expected 2 after resuming", got)
	}
}

func TestGame_ShipLostAndGameOver(t *testing.T) {
	g, clock := newTestGame(deadlyLevels)
	g.KeyPressed(input.KeyEnter)

	runUntil(t, g, clock, 20000, func(s Status) bool { return s.State == StateShipLost })
	if got := g.Status().Lives; got != InitialLives-1 {
		t.Errorf("Lives = %d, expected %d", got, InitialLives-1)
	}

	runUntil(t, g, clock, 200, func(s Status) bool { return s.State == StatePlaying })
	if got := g.Status().Level; got != 1 {
		t.Errorf("a lost ship should restart the same level, got level %d", got)
	}

	runUntil(t, g, clock, 100000, func(s Status) bool { return s.State == StateGameOver })
	s := g.Status()
	if s.Lives != 0 || s.Ufos != 0 || s.NextUfo != 0 {
		t.Errorf("unexpected game over status %+v", s)
	}

	g.KeyPressed(input.KeyEnter)
	if s := g.Status(); s.State != StatePlaying || s.Lives != InitialLives {
		t.Errorf("Enter should start a new game, status %+v", s)
	}
}

func TestGame_Quit(t *testing.T) {
	g, _ := newTestGame(nil)
	if g.Quit() {
		t.Fatal("new game should not want to quit")
	}
	g.KeyPressed(input.KeyQuit)
	if !g.Quit() {
		t.Error("Q should request quitting")
	}
}

func TestGame_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	clock := interval.NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	g := New(Options{Seed: 1, Clock: clock, Levels: emptyLevels, Logger: logger})

	g.KeyPressed(input.KeyEnter)
	g.Update()

	out := buf.String()
	for _, msg := range []string{"new game", "level started", "level cleared"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output missing %q:\n%s", msg, out)
		}
	}
}

func TestState_String(t *testing.T) {
	if StateGameOver.String() != "game over" || State(42).String() != "unknown" {
		t.Error("unexpected state names")
	}
}
