package glimmer

import "testing"

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(testLevel())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestNewGameRejectsBadLevel(t *testing.T) {
	l := testLevel()
	l.Fireflies[0].Track = 9
	if _, err := NewGame(l); err == nil {
		t.Fatal("NewGame accepted a defective level")
	}
}

func TestLayoutUsesViewSize(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Layout(1920, 1080)
	if w != 700 || h != 420 {
		t.Fatalf("Layout = %dx%d, want 700x420", w, h)
	}
}

// Injected events are consumed one per frame, go through the screen-to-
// board transform, and drive the same pick protocol as real mouse input.
func TestInjectedDragMovesFirefly(t *testing.T) {
	g := newTestGame(t)
	v := g.view

	// Firefly 0 sits at board (-4, 0). Drag it two units right.
	from := v.ToScreen(Vec2{-4, 0})
	to := v.ToScreen(Vec2{-2, 0})
	g.InjectDrag(from.X, from.Y, to.X, to.Y, 4)

	consumed := 0
	for g.processInjected() {
		consumed++
	}
	if consumed != 5 {
		t.Fatalf("consumed %d events, want 5 for a 4-frame drag", consumed)
	}
	if g.board.Dragging() {
		t.Fatal("drag not released")
	}
	assertNearTol(t, "dragged phase", g.board.Fireflies[0].Phase, 6, 1e-9)
}

func TestInjectPressSelects(t *testing.T) {
	g := newTestGame(t)
	p := g.view.ToScreen(Vec2{4, 0})
	g.InjectPress(p.X, p.Y)

	if !g.processInjected() {
		t.Fatal("queued event not consumed")
	}
	if !g.board.Fireflies[1].Selected {
		t.Fatal("injected press did not select firefly 1")
	}
	if g.processInjected() {
		t.Fatal("queue should be empty")
	}
	g.board.PointerUp()
}

func TestInjectDragMinimumFrames(t *testing.T) {
	g := newTestGame(t)
	g.InjectDrag(0, 0, 10, 10, 0)
	// Clamped to 2 frames: press, final move, release.
	if len(g.inject) != 3 {
		t.Fatalf("queued %d events, want 3", len(g.inject))
	}
	if g.inject[0].kind != eventPress || g.inject[1].kind != eventMove || g.inject[2].kind != eventRelease {
		t.Fatal("event order wrong")
	}
	if g.inject[1].x != 10 || g.inject[1].y != 10 {
		t.Fatalf("final move at (%v, %v), want (10, 10)", g.inject[1].x, g.inject[1].y)
	}
}

func TestInjectDragInterpolates(t *testing.T) {
	g := newTestGame(t)
	g.InjectDrag(0, 0, 30, 0, 5)
	// 5 frames: press, 3 moves at 10-pixel spacing, final move, release.
	if len(g.inject) != 6 {
		t.Fatalf("queued %d events, want 6", len(g.inject))
	}
	for i, wantX := range []float64{7.5, 15, 22.5, 30} {
		evt := g.inject[1+i]
		if evt.kind != eventMove {
			t.Fatalf("event %d kind = %d, want move", 1+i, evt.kind)
		}
		assertNear(t, "interpolated x", evt.x, wantX)
	}
}
