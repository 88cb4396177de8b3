package loop

import (
	"fmt"
	"math"
	"time"

	"github.com/tomz197/patatoids/internal/draw"
	"github.com/tomz197/patatoids/internal/game"
)

// titleArt is the title screen banner.
var titleArt = []string{
	`+-+-+-+-+-+-+-+-+-+`,
	`|P|A|T|A|T|O|I|D|S|`,
	`+-+-+-+-+-+-+-+-+-+`,
}

const controlsText = "A/D or Arrows to rotate, W or Up to thrust, SPACE to shoot, P to pause, Q to quit"

// drawUI draws the text overlay for the current game state.
// idleLeft is the time until an idle disconnect, or 0 when disabled.
func drawUI(f *draw.Frame, termWidth, termHeight int, status game.Status, idleLeft time.Duration) {
	centerX := termWidth / 2
	centerY := termHeight / 2

	if idleLeft > 0 && idleLeft <= idleWarning {
		drawIdleWarning(f, centerX, centerY, idleLeft)
		return
	}

	switch status.State {
	case game.StateTitle:
		drawStartScreen(f, centerX, centerY)
	case game.StatePlaying:
		drawPlayingHUD(f, termWidth, termHeight, status)
	case game.StateLevelCleared:
		drawPlayingHUD(f, termWidth, termHeight, status)
		drawCentered(f, centerX, centerY-1, fmt.Sprintf("LEVEL %d CLEARED", status.Level))
		drawCentered(f, centerX, centerY+1, fmt.Sprintf("Next level in %d", seconds(status.Countdown)))
	case game.StateShipLost:
		drawPlayingHUD(f, termWidth, termHeight, status)
		drawCentered(f, centerX, centerY-1, "SHIP LOST")
		drawCentered(f, centerX, centerY+1, fmt.Sprintf("Lives remaining: %d", status.Lives))
	case game.StateGameOver:
		drawGameOverScreen(f, centerX, centerY, status)
	}

	if status.Paused {
		drawCentered(f, centerX, centerY-3, "PAUSED")
		drawCentered(f, centerX, centerY+3, "Press P to resume")
	}
}

// drawCentered writes text centered on col.
func drawCentered(f *draw.Frame, col, row int, text string) {
	f.Text(max(1, col-len(text)/2), max(1, row), text)
}

// drawStartScreen draws the title screen.
func drawStartScreen(f *draw.Frame, centerX, centerY int) {
	for i, line := range titleArt {
		drawCentered(f, centerX, centerY-4+i, line)
	}
	drawCentered(f, centerX, centerY+1, "Press ENTER to start")
	drawCentered(f, centerX, centerY+4, controlsText)
}

// drawPlayingHUD draws the in-game HUD (score, level, lives).
func drawPlayingHUD(f *draw.Frame, termWidth, termHeight int, status game.Status) {
	f.Text(2, 1, fmt.Sprintf("Score: %d", status.Score))

	level := fmt.Sprintf("Level %d", status.Level)
	drawCentered(f, termWidth/2, 1, level)

	lives := fmt.Sprintf("Lives: %d", status.Lives)
	f.Text(max(1, termWidth-len(lives)), 1, lives)

	if status.NextUfo > 0 && status.NextUfo <= 5*time.Second {
		drawCentered(f, termWidth/2, termHeight, "UFO incoming!")
	}
}

// drawGameOverScreen draws the final score.
func drawGameOverScreen(f *draw.Frame, centerX, centerY int, status game.Status) {
	drawCentered(f, centerX, centerY-2, "GAME OVER")
	drawCentered(f, centerX, centerY, fmt.Sprintf("Score: %d  (level %d)", status.Score, status.Level))
	drawCentered(f, centerX, centerY+2, "Press ENTER to play again, Q to quit")
}

// drawIdleWarning draws the inactivity warning.
func drawIdleWarning(f *draw.Frame, centerX, centerY int, left time.Duration) {
	drawCentered(f, centerX, centerY-2, "INACTIVITY WARNING")
	drawCentered(f, centerX, centerY, fmt.Sprintf("You will be disconnected in %d seconds.", seconds(left)))
	drawCentered(f, centerX, centerY+2, "Press any key to continue")
}

// seconds rounds d up to whole seconds.
func seconds(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}
