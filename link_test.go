package glimmer

import "testing"

func TestBuildLinksOffsets(t *testing.T) {
	fireflies := []Firefly{{Phase: 1}, {Phase: 4}, {Phase: 2.5}}
	links := buildLinks([][]int{{0, 1, 2}}, fireflies)

	if len(links[0]) != 2 || len(links[1]) != 2 || len(links[2]) != 2 {
		t.Fatalf("link fan-out %d/%d/%d, want 2 each", len(links[0]), len(links[1]), len(links[2]))
	}
	assertNear(t, "0→1 offset", links[0][0].offset, 3)
	assertNear(t, "0→2 offset", links[0][1].offset, 1.5)
	assertNear(t, "1→0 offset", links[1][0].offset, -3)
}

func TestBuildLinksMultipleGroups(t *testing.T) {
	fireflies := make([]Firefly, 4)
	links := buildLinks([][]int{{0, 1}, {2, 3}}, fireflies)
	if links[0][0].index != 1 || links[2][0].index != 3 {
		t.Fatal("groups wired to the wrong peers")
	}
	if len(links[1]) != 1 || len(links[3]) != 1 {
		t.Fatal("groups must not leak into each other")
	}
}

// A firefly in two groups accumulates the links of both.
func TestBuildLinksSharedMember(t *testing.T) {
	fireflies := make([]Firefly, 3)
	links := buildLinks([][]int{{0, 1}, {1, 2}}, fireflies)
	if len(links[1]) != 2 {
		t.Fatalf("shared member has %d links, want 2", len(links[1]))
	}
	if len(links[0]) != 1 || len(links[2]) != 1 {
		t.Fatal("outer members must have one link each")
	}
}

func TestPropagateAppliesOffsets(t *testing.T) {
	fireflies := []Firefly{{Phase: 1}, {Phase: 4}}
	links := buildLinks([][]int{{0, 1}}, fireflies)

	fireflies[0].Phase = 2
	propagate(links, fireflies, 0)
	assertNear(t, "peer follows edit", fireflies[1].Phase, 5)
}

// Offsets are applied without wrapping: a propagated phase may land
// outside the peer's track range, to be normalized by its next step.
func TestPropagateDoesNotWrap(t *testing.T) {
	fireflies := []Firefly{{Phase: 1}, {Phase: 4}}
	links := buildLinks([][]int{{0, 1}}, fireflies)

	fireflies[0].Phase = 10
	propagate(links, fireflies, 0)
	assertNear(t, "unwrapped peer phase", fireflies[1].Phase, 13)
}

func TestPropagateUnlinked(t *testing.T) {
	fireflies := []Firefly{{Phase: 1}, {Phase: 4}}
	links := buildLinks(nil, fireflies)
	propagate(links, fireflies, 0)
	assertNear(t, "untouched peer", fireflies[1].Phase, 4)
}
