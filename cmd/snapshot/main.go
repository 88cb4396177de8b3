// Command snapshot plays a seeded game headlessly and saves the final frame as PNG.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/patatoids/internal/config"
	"github.com/tomz197/patatoids/internal/game"
	"github.com/tomz197/patatoids/internal/input"
	"github.com/tomz197/patatoids/internal/interval"
	"github.com/tomz197/patatoids/internal/object"
	"github.com/tomz197/patatoids/internal/render"
)

const tick = time.Second / 60

type options struct {
	seed   uint64
	ticks  int
	level  int
	fire   bool
	width  float64
	height float64
	out    string
}

func main() {
	defaults := config.Default()
	var opts options
	flag.Uint64Var(&opts.seed, "seed", 1, "random seed")
	flag.IntVar(&opts.ticks, "ticks", 300, "number of simulation ticks to run")
	flag.IntVar(&opts.level, "level", 1, "level to play")
	flag.BoolVar(&opts.fire, "fire", false, "fire whenever the ship can")
	flag.Float64Var(&opts.width, "width", defaults.Width, "world width")
	flag.Float64Var(&opts.height, "height", defaults.Height, "world height")
	flag.StringVar(&opts.out, "out", "snapshot.png", "output file")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "snapshot"})

	status, err := snapshot(opts, logger)
	if err != nil {
		logger.Fatal("snapshot failed", "error", err)
	}
	logger.Info("snapshot saved", "out", opts.out, "state", status.State,
		"score", status.Score, "asteroids", status.Asteroids, "ufos", status.Ufos)
}

// snapshot runs the game for opts.ticks fixed steps and writes the last frame.
func snapshot(opts options, logger *log.Logger) (game.Status, error) {
	if opts.width <= 0 || opts.height <= 0 {
		return game.Status{}, fmt.Errorf("invalid world size %vx%v", opts.width, opts.height)
	}

	clock := interval.NewManualClock(time.Unix(0, 0))
	g := game.New(game.Options{
		Bounds:     object.Bounds{Width: opts.width, Height: opts.height},
		Seed:       opts.seed,
		Clock:      clock,
		StartLevel: opts.level,
		Logger:     logger,
	})
	g.KeyPressed(input.KeyEnter)

	for i := range opts.ticks {
		if opts.fire && i%object.ShipFireCooldown == 0 {
			g.KeyPressed(input.KeyFire)
		}
		clock.Advance(tick)
		g.Update()
	}

	painter := render.NewImagePainter(int(opts.width), int(opts.height))
	g.Draw(render.New(painter))
	if err := painter.SavePNG(opts.out); err != nil {
		return game.Status{}, err
	}
	return g.Status(), nil
}
