package glimmer

import "math"

// crossingGate is the proximity threshold, in board units, below which a
// firefly's pre-step position is close enough to a track to test for a
// crossing this sub-step.
const crossingGate = 0.01

// Firefly is a point particle constrained to a track. Its state is the
// index of its current track, its phase on that track, and its signed
// speed (the sign is the direction of travel).
type Firefly struct {
	TrackIndex int
	Phase      float64
	Speed      float64
	Selected   bool

	trail [TrailN]Vec2
}

// Pos returns the firefly's board-space position.
func (f *Firefly) Pos(tracks []Track) Vec2 {
	return tracks[f.TrackIndex].PositionAt(f.Phase)
}

// TrailAt returns the i-th trail sample counting back from the ring
// pointer returned by Trails.Pointer.
func (f *Firefly) TrailAt(i, pointer int) Vec2 {
	return f.trail[(i+pointer)%TrailN]
}

// Step advances the firefly by one sub-step and resolves at most one
// curve crossing against the collidable tracks, in declaration order.
// The first track whose chord the step segment crosses wins; an Attract
// track captures the firefly at the later of the two chord parameters
// (so the same crossing cannot re-fire next sub-step), a Return track
// reverts the phase to its pre-step value and flips the speed.
//
// Preconditions, checked at level build time rather than here: track
// curvature over one sub-step is small relative to the step length, and
// |Speed/Steps| is below every track length so the single conditional
// wrap below is sufficient.
func (f *Firefly) Step(tracks []Track) {
	tr := &tracks[f.TrackIndex]
	prev := f.Phase
	p1 := tr.PositionAt(prev)
	f.Phase += f.Speed / Steps
	if f.Phase >= tr.Length {
		f.Phase -= tr.Length
	}
	if f.Phase < 0 {
		f.Phase += tr.Length
	}
	p2 := tr.PositionAt(f.Phase)

	for i := range tracks {
		other := &tracks[i]
		if i == f.TrackIndex || !other.Collidable() {
			continue
		}
		t1, d1 := other.NearestTo(p1)
		if d1 >= crossingGate {
			continue
		}
		t2, _ := other.NearestTo(p2)
		if math.Abs(t1-t2) < 1e-6 {
			// Both endpoints map to the same parameter; nudge them
			// apart with a scale-aware epsilon so the chord below is
			// non-degenerate.
			eps := 1e-6
			if t1 >= 1 {
				eps = t1 * 1e-6
			}
			t1 -= eps
			t2 += eps
		}
		// The step segment crosses the curve iff it crosses the chord
		// between the two nearest-point parameters (valid while the
		// curvature precondition holds).
		if !segmentsCross(p1, p2, other.PositionAt(t1), other.PositionAt(t2)) {
			continue
		}
		if other.Flags&Attract != 0 {
			f.TrackIndex = i
			f.Phase = t2
			// Keep the travel direction consistent with the new
			// track's parametrization.
			if f.Speed*(t2-t1) < 0 {
				f.Speed = -f.Speed
			}
		}
		if other.Flags&Return != 0 {
			f.Phase = prev
			f.Speed = -f.Speed
		}
		break
	}
}

// segmentsCross reports whether segments (a, b) and (c, d) intersect.
// Touching endpoints count as crossing: each segment's endpoints must lie
// on opposite sides (or on) the other segment's carrier line.
func segmentsCross(a, b, c, d Vec2) bool {
	ab := b.Sub(a)
	cd := d.Sub(c)
	return c.Sub(a).Det(ab)*d.Sub(a).Det(ab) <= 0 &&
		a.Sub(c).Det(cd)*b.Sub(c).Det(cd) <= 0
}
