package glimmer

type pointerEventKind uint8

const (
	eventPress pointerEventKind = iota
	eventMove
	eventRelease
)

// pointerEvent is one synthetic pointer action in screen coordinates,
// matching what real mouse input would deliver.
type pointerEvent struct {
	x, y float64
	kind pointerEventKind
}

// InjectPress queues a synthetic pointer press at the given screen
// coordinates. Queued events are consumed one per Update, before real
// mouse input, and travel the same view-transform path. Intended for
// headless interaction tests.
func (g *Game) InjectPress(x, y float64) {
	g.inject = append(g.inject, pointerEvent{x, y, eventPress})
}

// InjectMove queues a synthetic pointer move with the button held down.
func (g *Game) InjectMove(x, y float64) {
	g.inject = append(g.inject, pointerEvent{x, y, eventMove})
}

// InjectRelease queues a synthetic pointer release.
func (g *Game) InjectRelease(x, y float64) {
	g.inject = append(g.inject, pointerEvent{x, y, eventRelease})
}

// InjectDrag queues a full drag: press at (fromX, fromY), interpolated
// moves ending at (toX, toY), and a release. The sequence consumes
// frames+1 Updates; the minimum for frames is 2.
func (g *Game) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	g.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		g.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	g.InjectMove(toX, toY)
	g.InjectRelease(toX, toY)
}

// processInjected pops one queued event and feeds it to the board.
// Reports whether an event was consumed (real mouse input is skipped for
// that frame).
func (g *Game) processInjected() bool {
	if len(g.inject) == 0 {
		return false
	}
	evt := g.inject[0]
	copy(g.inject, g.inject[1:])
	g.inject = g.inject[:len(g.inject)-1]

	p := g.view.ToBoard(Vec2{evt.x, evt.y})
	switch evt.kind {
	case eventPress:
		g.board.PointerDown(p)
	case eventMove:
		g.board.PointerMove(p)
	case eventRelease:
		g.board.PointerUp()
	}
	return true
}
