package glimmer

// Editor pick radii, in board units. A pointer press prefers the nearest
// firefly within fireflyPickRadius; failing that it takes the nearest
// non-Fixed track whose nearest-point distance is below trackPickRadius.
const (
	fireflyPickRadius = 0.75
	trackPickRadius   = 0.5
)

// Board owns a level's tracks, fireflies, bellflowers, and link groups,
// and drives the sub-step loop and the editor pick/drag protocol.
//
// Everything is single-threaded: callers must not interleave pointer
// edits or run-control calls with an in-progress Step batch. Tracks are
// never added or removed after construction, so a firefly's TrackIndex
// can never dangle.
type Board struct {
	Title       string
	Tracks      []Track
	Fireflies   []Firefly
	Bellflowers []Bellflower

	links  [][]phaseLink
	trails Trails

	initial []Firefly // firefly snapshot taken at run start

	selFirefly int // index into Fireflies, or -1
	selTrack   int // index into Tracks, or -1
	grabOffset Vec2

	running bool
	chimes  int // bellflower decrements not yet drained
}

// Step runs n simulation sub-steps: every firefly advances and resolves
// crossings, every bellflower updates, and the trail sampler ticks.
// Run gating is the caller's concern; Step itself always simulates.
func (b *Board) Step(n int) {
	for s := 0; s < n; s++ {
		for i := range b.Fireflies {
			b.Fireflies[i].Step(b.Tracks)
		}
		for i := range b.Bellflowers {
			if b.Bellflowers[i].Update(b.Fireflies, b.Tracks) {
				b.chimes++
			}
		}
		b.trails.Step(b.Fireflies, b.Tracks)
	}
}

// Running reports whether a run is active.
func (b *Board) Running() bool { return b.running }

// StartRun snapshots all firefly state and begins a run.
func (b *Board) StartRun() {
	b.initial = append(b.initial[:0], b.Fireflies...)
	b.running = true
}

// StopRun ends the run, restores the firefly snapshot taken at StartRun,
// and resets every bellflower and the trail sampler.
func (b *Board) StopRun() {
	b.running = false
	copy(b.Fireflies, b.initial)
	for i := range b.Bellflowers {
		b.Bellflowers[i].Reset()
	}
	b.trails.Reset()
}

// ToggleRun starts a run if stopped and stops it if running.
func (b *Board) ToggleRun() {
	if b.running {
		b.StopRun()
	} else {
		b.StartRun()
	}
}

// Solved reports whether every bellflower count has reached exactly zero.
func (b *Board) Solved() bool {
	for i := range b.Bellflowers {
		if b.Bellflowers[i].Count != 0 {
			return false
		}
	}
	return len(b.Bellflowers) > 0
}

// DrainChimes returns the number of bellflower decrements since the last
// call. The rendering layer uses this to trigger chime playback.
func (b *Board) DrainChimes() int {
	n := b.chimes
	b.chimes = 0
	return n
}

// Dragging reports whether a firefly or track is currently selected.
func (b *Board) Dragging() bool { return b.selFirefly >= 0 || b.selTrack >= 0 }

// TrailPointer returns the trail ring index of the most recent sample,
// for use with Firefly.TrailAt.
func (b *Board) TrailPointer() int { return b.trails.Pointer() }

// PointerDown starts an editor drag at the board-space point p. Ignored
// while a run is active.
func (b *Board) PointerDown(p Vec2) {
	if b.running {
		return
	}
	best := fireflyPickRadius
	for i := range b.Fireflies {
		if d := b.Fireflies[i].Pos(b.Tracks).Sub(p).Norm(); d < best {
			best = d
			b.selFirefly = i
		}
	}
	if b.selFirefly >= 0 {
		f := &b.Fireflies[b.selFirefly]
		f.Selected = true
		b.grabOffset = f.Pos(b.Tracks).Sub(p)
		return
	}

	best = trackPickRadius
	for i := range b.Tracks {
		tr := &b.Tracks[i]
		if tr.Flags&Fixed != 0 {
			continue
		}
		if _, d := tr.NearestTo(p); d < best {
			best = d
			b.selTrack = i
		}
	}
	if b.selTrack >= 0 {
		b.Tracks[b.selTrack].Selected = true
		b.grabOffset = b.Tracks[b.selTrack].Origin.Sub(p)
	}
}

// PointerMove drags the current selection to follow p. A selected firefly
// is re-phased to the nearest point on its track (keeping the grab
// offset) and the edit propagates through its link group; a selected
// track's origin follows the pointer.
func (b *Board) PointerMove(p Vec2) {
	if b.selFirefly >= 0 {
		f := &b.Fireflies[b.selFirefly]
		f.Phase, _ = b.Tracks[f.TrackIndex].NearestTo(p.Add(b.grabOffset))
		propagate(b.links, b.Fireflies, b.selFirefly)
		b.trails.Backfill(b.Fireflies, b.Tracks)
	}
	if b.selTrack >= 0 {
		b.Tracks[b.selTrack].Origin = p.Add(b.grabOffset)
		b.trails.Backfill(b.Fireflies, b.Tracks)
	}
}

// PointerUp ends the drag and clears the selection.
func (b *Board) PointerUp() {
	if b.selFirefly >= 0 {
		b.Fireflies[b.selFirefly].Selected = false
		b.selFirefly = -1
	}
	if b.selTrack >= 0 {
		b.Tracks[b.selTrack].Selected = false
		b.selTrack = -1
	}
}
