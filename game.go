package glimmer

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Sub-steps executed per frame at each speed setting.
const (
	speedSlow   = 1
	speedNormal = 4
	speedFast   = 16
)

// Game wraps a Board in an ebiten.Game: it feeds mouse and keyboard
// input to the board, drives the sub-step batch while a run is active,
// and renders the frame with the bloom pass.
type Game struct {
	board *Board
	view  View

	attractPulse *ripple
	returnPulse  *ripple

	// Render state, allocated lazily on the first Draw so headless use
	// of the Game (tests, tools) needs no graphics context.
	bloom  *Bloom
	bg     *Background
	chimes *Chimes

	frame     int64
	inject    []pointerEvent
	showStats bool
}

// NewGame builds the level and wraps it in a Game using the default view.
func NewGame(level Level) (*Game, error) {
	board, err := level.Build()
	if err != nil {
		return nil, err
	}
	return &Game{
		board:        board,
		view:         DefaultView(),
		attractPulse: newAttractRipple(),
		returnPulse:  newReturnRipple(),
	}, nil
}

// Board returns the underlying board.
func (g *Game) Board() *Board { return g.board }

// InitAudio opens the speaker for bellflower chimes. Optional; without it
// the game is silent. The returned error is informational — the game
// remains fully playable when audio is unavailable.
func (g *Game) InitAudio() error {
	chimes, err := NewChimes()
	g.chimes = chimes
	return err
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.frame++

	if !g.processInjected() {
		g.readMouse()
	}
	g.readKeys()

	if g.board.Running() {
		g.board.Step(g.stepsPerFrame())
	}
	if g.board.DrainChimes() > 0 && g.chimes != nil {
		g.chimes.Play()
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.attractPulse.Update(dt)
	g.returnPulse.Update(dt)
	return nil
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.view.W), int(g.view.H)
}
