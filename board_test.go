package glimmer

import (
	"math"
	"testing"
)

// testLevel is a small board used throughout: one long draggable segment
// along y = 0, one Fixed circle above it, two fireflies on the segment,
// and an immediate bellflower sitting on the segment's path.
func testLevel() Level {
	return Level{
		Title: "test",
		Tracks: []TrackDef{
			{Kind: KindSegment, Origin: Vec2{0, 0}, Ext: Vec2{8, 0}},
			{Kind: KindCircle, Origin: Vec2{0, 4}, Radius: 2, Flags: Fixed},
		},
		Fireflies: []FireflyDef{
			{Track: 0, Phase: 0.25, Speed: 1},
			{Track: 0, Phase: 0.75, Speed: 1},
		},
		Bellflowers: []BellflowerDef{
			{Kind: Immediate, Center: Vec2{6, 0}, Radius: 0.5, Count: 1},
		},
	}
}

func mustBuild(t *testing.T, l Level) *Board {
	t.Helper()
	b, err := l.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return b
}

func TestStepAdvancesAllFireflies(t *testing.T) {
	b := mustBuild(t, testLevel())
	p0 := b.Fireflies[0].Phase
	p1 := b.Fireflies[1].Phase
	b.Step(Steps)
	assertNear(t, "firefly 0", b.Fireflies[0].Phase, p0+1)
	assertNear(t, "firefly 1", b.Fireflies[1].Phase, p1+1)
}

func TestStopRunRestoresSnapshot(t *testing.T) {
	b := mustBuild(t, testLevel())
	want := append([]Firefly(nil), b.Fireflies...)

	b.StartRun()
	if !b.Running() {
		t.Fatal("not running after StartRun")
	}
	b.Step(3 * Steps)
	if b.Fireflies[0].Phase == want[0].Phase {
		t.Fatal("run did not move the fireflies")
	}
	if b.Bellflowers[0].Count != 0 {
		t.Fatalf("bellflower count = %d mid-run, want 0", b.Bellflowers[0].Count)
	}

	b.StopRun()
	if b.Running() {
		t.Fatal("still running after StopRun")
	}
	for i := range want {
		assertNear(t, "restored phase", b.Fireflies[i].Phase, want[i].Phase)
		assertNear(t, "restored speed", b.Fireflies[i].Speed, want[i].Speed)
	}
	if b.Bellflowers[0].Count != 1 {
		t.Fatalf("bellflower count = %d after stop, want initial 1", b.Bellflowers[0].Count)
	}
	if b.TrailPointer() != 0 {
		t.Fatalf("trail pointer = %d after stop, want 0", b.TrailPointer())
	}
}

func TestToggleRun(t *testing.T) {
	b := mustBuild(t, testLevel())
	b.ToggleRun()
	if !b.Running() {
		t.Fatal("first toggle must start the run")
	}
	b.ToggleRun()
	if b.Running() {
		t.Fatal("second toggle must stop the run")
	}
}

func TestDrainChimes(t *testing.T) {
	b := mustBuild(t, testLevel())
	// Firefly 1 starts at x = 4 and reaches the bellflower at x = 6
	// within two time units.
	b.Step(3 * Steps)
	if got := b.DrainChimes(); got != 1 {
		t.Fatalf("DrainChimes = %d, want 1", got)
	}
	if got := b.DrainChimes(); got != 0 {
		t.Fatalf("second DrainChimes = %d, want 0", got)
	}
}

func TestSolved(t *testing.T) {
	b := mustBuild(t, testLevel())
	if b.Solved() {
		t.Fatal("solved before any firefly visit")
	}
	b.Step(3 * Steps)
	if !b.Solved() {
		t.Fatalf("not solved with count %d", b.Bellflowers[0].Count)
	}
	// Overshooting below zero is a failure, not a solve.
	b.Bellflowers[0].Count = -1
	if b.Solved() {
		t.Fatal("negative count must not read as solved")
	}
}

func TestSolvedNeedsBellflowers(t *testing.T) {
	l := testLevel()
	l.Bellflowers = nil
	b := mustBuild(t, l)
	if b.Solved() {
		t.Fatal("a board without bellflowers is never solved")
	}
}

func TestPointerPicksNearestFirefly(t *testing.T) {
	b := mustBuild(t, testLevel())
	// Firefly 0 sits at x = -4. Press slightly off it.
	b.PointerDown(Vec2{-4.2, 0.1})
	if !b.Dragging() {
		t.Fatal("press near a firefly must start a drag")
	}
	if !b.Fireflies[0].Selected {
		t.Fatal("firefly 0 not selected")
	}

	// The drag re-phases the firefly to the track point nearest the
	// pointer, preserving the grab offset.
	b.PointerMove(Vec2{-1.2, 0.1})
	assertNearTol(t, "dragged phase", b.Fireflies[0].Phase, 7, 1e-9)

	b.PointerUp()
	if b.Dragging() || b.Fireflies[0].Selected {
		t.Fatal("release must clear the selection")
	}
}

func TestPointerPrefersFireflyOverTrack(t *testing.T) {
	b := mustBuild(t, testLevel())
	// On the segment and within pick range of firefly 1.
	b.PointerDown(Vec2{4.3, 0})
	if !b.Fireflies[1].Selected {
		t.Fatal("firefly must win over the track under the same point")
	}
	if b.Tracks[0].Selected {
		t.Fatal("track selected despite a firefly hit")
	}
	b.PointerUp()
}

func TestPointerDragsTrackOrigin(t *testing.T) {
	b := mustBuild(t, testLevel())
	// Away from both fireflies, on the segment.
	b.PointerDown(Vec2{1, 0.2})
	if !b.Tracks[0].Selected {
		t.Fatal("track 0 not selected")
	}
	b.PointerMove(Vec2{1, 2.2})
	assertVec2(t, "moved origin", b.Tracks[0].Origin, Vec2{0, 2})
	b.PointerUp()
}

func TestPointerSkipsFixedTracks(t *testing.T) {
	b := mustBuild(t, testLevel())
	// On the Fixed circle's rim, far from everything else.
	b.PointerDown(Vec2{0, 6})
	if b.Dragging() {
		t.Fatal("Fixed tracks must not be pickable")
	}
}

func TestPointerIgnoredWhileRunning(t *testing.T) {
	b := mustBuild(t, testLevel())
	b.StartRun()
	b.PointerDown(Vec2{-4, 0})
	if b.Dragging() {
		t.Fatal("pointer press must be ignored during a run")
	}
}

func TestPointerMissSelectsNothing(t *testing.T) {
	b := mustBuild(t, testLevel())
	b.PointerDown(Vec2{-7, -5})
	if b.Dragging() {
		t.Fatal("press in empty space must not select")
	}
	// Move and release with no selection are no-ops.
	b.PointerMove(Vec2{0, 0})
	b.PointerUp()
}

func TestDragPropagatesThroughLinks(t *testing.T) {
	l := testLevel()
	l.Links = [][]int{{0, 1}}
	b := mustBuild(t, l)

	b.PointerDown(Vec2{-4, 0})
	if !b.Fireflies[0].Selected {
		t.Fatal("firefly 0 not selected")
	}
	b.PointerMove(Vec2{-3, 0})
	b.PointerUp()

	assertNear(t, "dragged firefly", b.Fireflies[0].Phase, 5)
	// The peer keeps its captured offset of half the track length.
	assertNear(t, "linked peer", b.Fireflies[1].Phase, 13)
}

func TestRunRoundTripAfterEdit(t *testing.T) {
	b := mustBuild(t, testLevel())

	// Edit, run, stop: the pre-run edit must survive the round trip.
	b.PointerDown(Vec2{-4, 0})
	b.PointerMove(Vec2{-2, 0})
	b.PointerUp()
	edited := b.Fireflies[0].Phase

	b.StartRun()
	b.Step(2*Steps + 7)
	b.StopRun()
	assertNear(t, "edited phase survives", b.Fireflies[0].Phase, edited)

	if math.Abs(edited-6) > epsilon {
		t.Fatalf("edited phase = %v, want 6", edited)
	}
}
