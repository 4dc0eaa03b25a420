package glimmer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// readKeys handles run control: space toggles run/stop (snapshotting or
// restoring firefly state), backquote and 1 hold the slow and fast speed,
// F3 toggles the stats overlay. The run toggle is suppressed mid-drag so
// a drag cannot silently become the run's starting state.
func (g *Game) readKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && !g.board.Dragging() {
		g.board.ToggleRun()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showStats = !g.showStats
	}
}

// stepsPerFrame returns the sub-step batch size for this frame from the
// held speed keys.
func (g *Game) stepsPerFrame() int {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyBackquote):
		return speedSlow
	case ebiten.IsKeyPressed(ebiten.KeyDigit1):
		return speedFast
	}
	return speedNormal
}

// readMouse forwards the left button's press/drag/release to the board's
// pointer protocol, in board coordinates.
func (g *Game) readMouse() {
	x, y := ebiten.CursorPosition()
	p := g.view.ToBoard(Vec2{float64(x), float64(y)})
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.board.PointerDown(p)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.board.PointerUp()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.board.PointerMove(p)
	}
}
