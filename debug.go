package glimmer

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawStats prints the frame-rate overlay toggled by F3.
func (g *Game) drawStats(screen *ebiten.Image) {
	state := "stopped"
	if g.board.Running() {
		state = fmt.Sprintf("running x%d", g.stepsPerFrame())
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f\nTPS: %.1f\n%s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), state))
}
