package glimmer

const (
	// TrailN is the number of history slots in each firefly's trail ring.
	TrailN = 20
	// trailInterval is the number of sub-steps between trail samples.
	trailInterval = 8
)

// Trails samples firefly positions into the per-firefly history rings.
// Purely visual: it feeds the fading trail rendering and carries no
// simulation-affecting state.
type Trails struct {
	counter int
	pointer int
}

// Pointer returns the ring index of the most recent sample.
func (tm *Trails) Pointer() int { return tm.pointer }

// Reset rewinds the sample counter and ring pointer.
func (tm *Trails) Reset() {
	tm.counter = 0
	tm.pointer = 0
}

// Step advances the sample counter and records every firefly's position
// once per trailInterval sub-steps.
func (tm *Trails) Step(fireflies []Firefly, tracks []Track) {
	tm.counter++
	if tm.counter < trailInterval {
		return
	}
	tm.counter = 0
	tm.pointer = (tm.pointer + TrailN - 1) % TrailN
	for i := range fireflies {
		fireflies[i].trail[tm.pointer] = fireflies[i].Pos(tracks)
	}
}

// Backfill rebuilds every firefly's trail by evaluating its track at
// phases walked backward at the current speed. An approximation used
// after a manual reposition so trails do not streak across the board.
func (tm *Trails) Backfill(fireflies []Firefly, tracks []Track) {
	for i := range fireflies {
		f := &fireflies[i]
		tr := &tracks[f.TrackIndex]
		step := f.Speed * (float64(trailInterval) / Steps)
		for j := 0; j < TrailN; j++ {
			f.trail[j] = tr.PositionAt(f.Phase - step*float64(j))
		}
	}
}
