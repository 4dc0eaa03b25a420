package glimmer

import "math"

// TrackKind selects the curve variant of a Track.
type TrackKind uint8

const (
	// KindCircle is a full circle; phase is the cyclic arc-length
	// coordinate with period 2πr.
	KindCircle TrackKind = iota
	// KindSegment is a straight segment; phase is the clamped
	// (non-wrapping) arc-length coordinate measured from one endpoint.
	KindSegment
)

// TrackFlags is a bit set of track behaviors. Attract and Return may be
// combined; Fixed marks a track as non-draggable.
type TrackFlags uint8

const (
	Attract TrackFlags = 1 << 0
	Return  TrackFlags = 1 << 1
	Fixed   TrackFlags = 1 << 4

	// collidable tracks take part in crossing detection.
	collidable = Attract | Return
)

// Track is a parametrized curve that fireflies travel along: a tagged
// variant over the circle and segment shapes, sharing the phase-based
// position and nearest-point queries. Phase lives in [0, Length).
//
// Tracks are created once from level data and live for the board's whole
// lifetime; drags move Origin in place.
type Track struct {
	Kind     TrackKind
	Origin   Vec2
	Length   float64 // total arc length
	Flags    TrackFlags
	Selected bool

	// Circle only.
	Radius   float64
	FixAngle float64 // angle of the decorative fix marks, radians
	FixCount int     // 1 or 2 marks

	// Segment only. The segment spans Origin ± Dir·Length/2.
	Dir Vec2 // unit direction
}

// NewCircleTrack returns a circular track of radius r centered at o.
func NewCircleTrack(o Vec2, r float64, flags TrackFlags) Track {
	return Track{
		Kind:     KindCircle,
		Origin:   o,
		Length:   2 * math.Pi * r,
		Flags:    flags,
		Radius:   r,
		FixCount: 2,
	}
}

// NewSegmentTrack returns a straight track centered at o, extending ext
// in both directions (so its length is twice ext's).
func NewSegmentTrack(o, ext Vec2, flags TrackFlags) Track {
	n := ext.Norm()
	return Track{
		Kind:   KindSegment,
		Origin: o,
		Length: 2 * n,
		Flags:  flags,
		Dir:    ext.Div(n),
	}
}

// Collidable reports whether the track takes part in crossing detection.
func (tr *Track) Collidable() bool { return tr.Flags&collidable != 0 }

// PositionAt returns the board-space point at phase t. Total for every
// t; out-of-range phases extrapolate (circle wraps, segment extends).
func (tr *Track) PositionAt(t float64) Vec2 {
	if tr.Kind == KindCircle {
		return tr.Origin.Add(Vec2{tr.Radius, 0}.Rot(t / tr.Radius))
	}
	return tr.Origin.Add(tr.Dir.Mul(t - tr.Length/2))
}

// NearestTo returns the phase of the track point nearest to p together
// with the Euclidean distance from p to that point. For a segment the
// phase is clamped to the endpoints, so past an endpoint the distance is
// measured to the endpoint itself, not to the segment's carrier line.
func (tr *Track) NearestTo(p Vec2) (phase, dist float64) {
	q := p.Sub(tr.Origin)
	if tr.Kind == KindCircle {
		a := math.Atan2(q.Y, q.X)
		if a < 0 {
			a += 2 * math.Pi
		}
		return a * tr.Radius, q.Sub(Vec2{tr.Radius, 0}.Rot(a)).Norm()
	}
	t := q.Dot(tr.Dir)
	h := tr.Length / 2
	if t < -h {
		t = -h
	} else if t > h {
		t = h
	}
	return t + h, q.Sub(tr.Dir.Mul(t)).Norm()
}
