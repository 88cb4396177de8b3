package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/patatoids/internal/config"
	"github.com/tomz197/patatoids/internal/game"
	"github.com/tomz197/patatoids/internal/input"
	"github.com/tomz197/patatoids/internal/object"
	"github.com/tomz197/patatoids/internal/render"
)

// keyMap binds ebiten keys to game keys. Several keys may share a game key.
var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyA:          input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyD:          input.KeyRight,
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyW:          input.KeyUp,
	ebiten.KeySpace:      input.KeyFire,
	ebiten.KeyEnter:      input.KeyEnter,
	ebiten.KeyP:          input.KeyPause,
	ebiten.KeyQ:          input.KeyQuit,
	ebiten.KeyEscape:     input.KeyQuit,
}

// desktop adapts game.Game to ebiten.Game.
type desktop struct {
	game     *game.Game
	painter  *screenPainter
	renderer *render.Renderer
	bounds   object.Bounds
}

func newDesktop(g *game.Game) *desktop {
	p := &screenPainter{}
	return &desktop{game: g, painter: p, renderer: render.New(p), bounds: g.Bounds()}
}

func (d *desktop) Update() error {
	for k, gk := range keyMap {
		if inpututil.IsKeyJustPressed(k) {
			d.game.KeyPressed(gk)
		}
		if inpututil.IsKeyJustReleased(k) {
			d.game.KeyReleased(gk)
		}
	}
	if d.game.Quit() {
		return ebiten.Termination
	}
	d.game.Update()
	return nil
}

func (d *desktop) Draw(screen *ebiten.Image) {
	d.painter.screen = screen
	d.game.Draw(d.renderer)
	ebitenutil.DebugPrint(screen, hudText(d.game.Status()))
}

func (d *desktop) Layout(_, _ int) (int, int) {
	return int(d.bounds.Width), int(d.bounds.Height)
}

// hudText is the status line shown in the top left corner.
func hudText(s game.Status) string {
	var text string
	switch s.State {
	case game.StateTitle:
		text = "PATATOIDS\nPress ENTER to start\nArrows/WASD move, SPACE shoot, P pause, Q quit"
	case game.StateGameOver:
		text = fmt.Sprintf("GAME OVER  score %d (level %d)\nPress ENTER to play again", s.Score, s.Level)
	default:
		text = fmt.Sprintf("Score %d  Level %d  Lives %d", s.Score, s.Level, s.Lives)
		switch s.State {
		case game.StateLevelCleared:
			text += fmt.Sprintf("\nLEVEL CLEARED, next in %.0fs", math.Ceil(s.Countdown.Seconds()))
		case game.StateShipLost:
			text += "\nSHIP LOST"
		}
		if s.NextUfo > 0 && s.NextUfo <= 5*time.Second {
			text += "\nUFO incoming!"
		}
	}
	if s.Paused {
		text += "\nPAUSED"
	}
	return text
}

func main() {
	settings, err := config.Load()
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "patatoids",
		Level:           settings.LogLevel,
	})
	if err != nil {
		logger.Warn("invalid settings, using defaults", "error", err)
	}

	g := game.New(game.Options{
		Bounds:     object.Bounds{Width: settings.Width, Height: settings.Height},
		Seed:       settings.SeedOrNow(time.Now()),
		StartLevel: settings.StartLevel,
		Logger:     logger,
	})

	ebiten.SetWindowSize(int(settings.Width), int(settings.Height))
	ebiten.SetWindowTitle("Patatoids")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(newDesktop(g)); err != nil {
		logger.Fatal("game error", "error", err)
	}
}
