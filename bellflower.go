package glimmer

// BellflowerKind selects the counting behavior of a bellflower.
type BellflowerKind uint8

const (
	// Immediate decrements the count on every entry of a firefly into
	// the radius, regardless of dwell time.
	Immediate BellflowerKind = iota
	// Delayed requires unbroken presence for the configured delay before
	// one decrement fires. Any loss of presence restarts the countdown
	// in full.
	Delayed
)

// Bellflower is a proximity counter. Its count drops by one on each
// rising edge of its trigger signal: raw presence for the immediate
// variant, "presence sustained for the full delay" for the delayed one.
// The count has no floor and may go negative.
type Bellflower struct {
	Kind    BellflowerKind
	Center  Vec2
	Radius  float64
	Initial int
	Count   int

	lastOn    bool
	delay     int // countdown start, in sub-steps (delayed only)
	countdown int
}

// NewBellflower returns an immediate bellflower.
func NewBellflower(center Vec2, radius float64, count int) Bellflower {
	return Bellflower{
		Kind:    Immediate,
		Center:  center,
		Radius:  radius,
		Initial: count,
		Count:   count,
	}
}

// NewDelayedBellflower returns a delayed bellflower. The delay is given
// in time units and stored in sub-steps.
func NewDelayedBellflower(center Vec2, radius float64, count int, delay float64) Bellflower {
	b := Bellflower{
		Kind:    Delayed,
		Center:  center,
		Radius:  radius,
		Initial: count,
		Count:   count,
		delay:   int(delay * Steps),
	}
	b.countdown = b.delay
	return b
}

// Update runs one sub-step of the counting state machine and reports
// whether the count decremented this sub-step.
func (b *Bellflower) Update(fireflies []Firefly, tracks []Track) bool {
	on := false
	for i := range fireflies {
		if fireflies[i].Pos(tracks).Sub(b.Center).Norm() <= b.Radius {
			on = true
			break
		}
	}
	if b.Kind == Delayed {
		if on {
			if b.countdown > 0 {
				b.countdown--
			}
		} else {
			b.countdown = b.delay
		}
		on = b.countdown == 0
	}
	fired := on && !b.lastOn
	if fired {
		b.Count--
	}
	b.lastOn = on
	return fired
}

// Reset restores the initial count, clears the edge detector, and rewinds
// the countdown. Applied to every bellflower when a run stops.
func (b *Bellflower) Reset() {
	b.Count = b.Initial
	b.lastOn = false
	b.countdown = b.delay
}

// Active reports the current state of the edge detector's input, for the
// rendering layer.
func (b *Bellflower) Active() bool { return b.lastOn }

// Progress returns the fraction of the delay already satisfied, in
// [0, 1]. Always 0 for immediate bellflowers.
func (b *Bellflower) Progress() float64 {
	if b.Kind != Delayed || b.delay == 0 {
		return 0
	}
	return float64(b.delay-b.countdown) / float64(b.delay)
}
