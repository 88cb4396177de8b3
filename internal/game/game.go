// Package game wraps a simulation.Manager with the rules around it: a title
// screen, levels, lives, score and pausing.
package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/patatoids/internal/config"
	"github.com/tomz197/patatoids/internal/input"
	"github.com/tomz197/patatoids/internal/interval"
	"github.com/tomz197/patatoids/internal/object"
	"github.com/tomz197/patatoids/internal/random"
	"github.com/tomz197/patatoids/internal/simulation"
)

// State is the phase the game is in.
type State int

const (
	StateTitle State = iota
	StatePlaying
	StateLevelCleared
	StateShipLost
	StateGameOver
)

// String returns a human-readable name.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StateLevelCleared:
		return "level cleared"
	case StateShipLost:
		return "ship lost"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Options configures a Game. Zero values fall back to sensible defaults.
type Options struct {
	Bounds     object.Bounds
	Seed       uint64
	Clock      interval.Clock
	StartLevel int
	Levels     LevelFunc
	Logger     *log.Logger
}

// Status is a snapshot of the game for HUDs.
type Status struct {
	State     State
	Paused    bool
	Level     int
	Lives     int
	Score     int
	Asteroids int
	Ufos      int
	NextUfo   time.Duration // Zero when UFO spawning is disarmed
	Countdown time.Duration // Time left in a transition
}

// Game is a single-player session. It is not safe for concurrent use;
// the front end drives it from one goroutine.
type Game struct {
	sim    *simulation.Manager
	clock  interval.Clock
	levels LevelFunc
	logger *log.Logger

	state      State
	paused     bool
	quit       bool
	startLevel int
	level      int
	lives      int
	score      int                // Banked at the end of every level
	delay      *interval.Interval // Running during transitions
}

// New creates a game on the title screen.
func New(opts Options) *Game {
	if opts.Bounds == (object.Bounds{}) {
		opts.Bounds = object.Bounds{Width: config.DefaultWidth, Height: config.DefaultHeight}
	}
	if opts.Clock == nil {
		opts.Clock = interval.SystemClock{}
	}
	if opts.Levels == nil {
		opts.Levels = LevelParams
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	g := &Game{
		sim:        simulation.New(opts.Bounds, random.New(opts.Seed), opts.Clock),
		clock:      opts.Clock,
		levels:     opts.Levels,
		logger:     opts.Logger,
		state:      StateTitle,
		startLevel: max(opts.StartLevel, 1),
	}
	g.sim.CreateAsteroids(TitleAsteroids)
	return g
}

// NewGame starts over from the first level.
func (g *Game) NewGame() {
	g.level = g.startLevel
	g.lives = InitialLives
	g.score = 0
	g.setPaused(false)
	g.logger.Info("new game", "level", g.level, "lives", g.lives)
	g.beginLevel()
}

func (g *Game) beginLevel() {
	p := g.levels(g.level)
	g.sim.StartLevel(p.Asteroids, p.UfoSpawnInterval, p.UfoShootFrequency)
	g.delay = nil
	g.state = StatePlaying
	g.logger.Debug("level started",
		"level", g.level,
		"asteroids", p.Asteroids,
		"ufoSpawnInterval", p.UfoSpawnInterval,
		"ufoShootFrequency", p.UfoShootFrequency,
	)
}

// levelScore is the score of the level in progress.
func (g *Game) levelScore() int {
	return Points(g.sim.CountAsteroidsHit(), g.sim.CountUfosHit())
}

// endLevel banks the level score and starts the transition delay.
func (g *Game) endLevel(next State) {
	g.score += g.levelScore()
	g.state = next
	g.delay = interval.New(g.clock, TransitionDelay)
}

// KeyPressed handles a key going down.
func (g *Game) KeyPressed(k input.Key) {
	switch k {
	case input.KeyQuit:
		g.quit = true
	case input.KeyPause:
		if g.inLevel() {
			g.setPaused(!g.paused)
		}
	case input.KeyEnter:
		if g.state == StateTitle || g.state == StateGameOver {
			g.NewGame()
		}
	default:
		if g.inLevel() && !g.paused {
			g.sim.KeyPressed(k)
		}
	}
}

// KeyReleased handles a key coming up.
func (g *Game) KeyReleased(k input.Key) {
	if g.inLevel() {
		g.sim.KeyReleased(k)
	}
}

// inLevel reports whether a level is loaded (playing or in a transition).
func (g *Game) inLevel() bool {
	switch g.state {
	case StatePlaying, StateLevelCleared, StateShipLost:
		return true
	default:
		return false
	}
}

func (g *Game) setPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	if paused {
		g.sim.Pause()
		if g.delay != nil {
			g.delay.Pause()
		}
		g.logger.Info("paused", "level", g.level)
		return
	}
	g.sim.Unpause()
	if g.delay != nil {
		g.delay.Unpause()
	}
	g.logger.Info("resumed", "level", g.level)
}

// Update advances the game by one tick. Nothing moves while paused.
func (g *Game) Update() {
	if g.paused {
		return
	}
	g.sim.Update()

	switch g.state {
	case StatePlaying:
		switch {
		case g.sim.ShipHit():
			g.lives--
			g.endLevel(StateShipLost)
			g.logger.Info("ship lost", "level", g.level, "lives", g.lives, "score", g.score)
		case g.sim.AsteroidsCount() == 0:
			g.sim.StopLevel()
			g.endLevel(StateLevelCleared)
			g.logger.Info("level cleared", "level", g.level, "score", g.score)
		}

	case StateLevelCleared:
		if g.delay.Elapsed() {
			g.level++
			g.beginLevel()
		}

	case StateShipLost:
		if !g.delay.Elapsed() {
			return
		}
		if g.lives > 0 {
			g.beginLevel()
			return
		}
		g.sim.StopLevel()
		g.delay = nil
		g.state = StateGameOver
		g.logger.Info("game over", "level", g.level, "score", g.score)
	}
}

// Draw renders the current population.
func (g *Game) Draw(r object.Renderer) {
	g.sim.Draw(r)
}

// Status returns a snapshot for HUDs.
func (g *Game) Status() Status {
	s := Status{
		State:     g.state,
		Paused:    g.paused,
		Level:     g.level,
		Lives:     g.lives,
		Score:     g.score,
		Asteroids: g.sim.AsteroidsCount(),
		Ufos:      g.sim.UfosCount(),
	}
	if g.state == StatePlaying {
		s.Score += g.levelScore()
	}
	if next, ok := g.sim.SpawnRemaining(); ok && g.state == StatePlaying {
		s.NextUfo = next
	}
	if g.delay != nil {
		s.Countdown = g.delay.Remaining()
	}
	return s
}

// Quit reports whether the player asked to leave.
func (g *Game) Quit() bool {
	return g.quit
}

// Bounds returns the logical world size.
func (g *Game) Bounds() object.Bounds {
	return g.sim.Bounds()
}
