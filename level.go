package glimmer

import (
	"fmt"
	"math"
)

// TrackDef declares one track in a level.
type TrackDef struct {
	Kind   TrackKind
	Origin Vec2
	Flags  TrackFlags

	// Circle only.
	Radius   float64
	FixAngle float64
	FixCount int // 0 means the default of 2

	// Segment only: half-extent vector; the track spans Origin ± Ext.
	Ext Vec2
}

// FireflyDef declares one firefly. Phase is a fraction of the referenced
// track's length, in [0, 1).
type FireflyDef struct {
	Track int
	Phase float64
	Speed float64
}

// BellflowerDef declares one bellflower. Delay is in time units and only
// meaningful for the Delayed kind.
type BellflowerDef struct {
	Kind   BellflowerKind
	Center Vec2
	Radius float64
	Count  int
	Delay  float64
}

// Level is the declarative definition of a puzzle. Levels are plain
// values; Build validates them and produces a ready Board.
type Level struct {
	Title       string
	Tracks      []TrackDef
	Fireflies   []FireflyDef
	Bellflowers []BellflowerDef
	Links       [][]int // groups of firefly indices with linked phases
}

// Build validates the level and constructs its Board. All configuration
// defects (zero-radius circles, zero-length segments, dangling indices,
// speeds that would outrun a track in a single sub-step) are rejected
// here; the simulation itself has no runtime error paths.
func (l Level) Build() (*Board, error) {
	b := &Board{Title: l.Title, selFirefly: -1, selTrack: -1}

	for i, td := range l.Tracks {
		switch td.Kind {
		case KindCircle:
			if td.Radius <= 0 {
				return nil, fmt.Errorf("level %q: track %d: circle radius must be positive", l.Title, i)
			}
			tr := NewCircleTrack(td.Origin, td.Radius, td.Flags)
			tr.FixAngle = td.FixAngle
			if td.FixCount != 0 {
				tr.FixCount = td.FixCount
			}
			b.Tracks = append(b.Tracks, tr)
		case KindSegment:
			if td.Ext.Norm() == 0 {
				return nil, fmt.Errorf("level %q: track %d: segment extent must be nonzero", l.Title, i)
			}
			b.Tracks = append(b.Tracks, NewSegmentTrack(td.Origin, td.Ext, td.Flags))
		default:
			return nil, fmt.Errorf("level %q: track %d: unknown kind %d", l.Title, i, td.Kind)
		}
	}

	for i, fd := range l.Fireflies {
		if fd.Track < 0 || fd.Track >= len(b.Tracks) {
			return nil, fmt.Errorf("level %q: firefly %d: track %d out of range", l.Title, i, fd.Track)
		}
		tr := &b.Tracks[fd.Track]
		if math.Abs(fd.Speed)/Steps >= tr.Length {
			return nil, fmt.Errorf("level %q: firefly %d: speed %g covers a whole track per sub-step", l.Title, i, fd.Speed)
		}
		b.Fireflies = append(b.Fireflies, Firefly{
			TrackIndex: fd.Track,
			Phase:      tr.Length * fd.Phase,
			Speed:      fd.Speed,
		})
	}

	for gi, group := range l.Links {
		for _, idx := range group {
			if idx < 0 || idx >= len(b.Fireflies) {
				return nil, fmt.Errorf("level %q: link group %d: firefly %d out of range", l.Title, gi, idx)
			}
		}
	}
	b.links = buildLinks(l.Links, b.Fireflies)

	for i, bd := range l.Bellflowers {
		if bd.Radius <= 0 {
			return nil, fmt.Errorf("level %q: bellflower %d: radius must be positive", l.Title, i)
		}
		switch bd.Kind {
		case Immediate:
			b.Bellflowers = append(b.Bellflowers, NewBellflower(bd.Center, bd.Radius, bd.Count))
		case Delayed:
			if bd.Delay <= 0 {
				return nil, fmt.Errorf("level %q: bellflower %d: delay must be positive", l.Title, i)
			}
			b.Bellflowers = append(b.Bellflowers, NewDelayedBellflower(bd.Center, bd.Radius, bd.Count, bd.Delay))
		default:
			return nil, fmt.Errorf("level %q: bellflower %d: unknown kind %d", l.Title, i, bd.Kind)
		}
	}

	b.trails.Backfill(b.Fireflies, b.Tracks)
	return b, nil
}
