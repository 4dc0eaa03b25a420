package glimmer

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Ripple pulse timing, seconds. Matches the original board dressing: a
// ten-second pulse every fifteen seconds, with the Return pulse offset
// half a period from the Attract pulse.
const (
	rippleDuration = 10.0
	ripplePeriod   = 15.0
	ripplePeak     = 0.6
	rippleReach    = 0.26
)

// ripple animates the echo ring drawn around collidable tracks: Attract
// tracks pulse a ring contracting onto the curve, Return tracks one
// expanding away from it. One instance drives all tracks of its flavor.
type ripple struct {
	dist  *gween.Tween
	alpha *gween.Tween
	wait  float32 // seconds until the pulse starts (or restarts)
	d, a  float32
}

// newAttractRipple returns the contracting pulse, starting immediately.
func newAttractRipple() *ripple {
	return &ripple{
		// 0.26·(1-t)^4 falloff.
		dist:  gween.New(rippleReach, 0, rippleDuration, ease.OutQuart),
		alpha: alphaEnvelope(),
	}
}

// newReturnRipple returns the expanding pulse, offset half a period.
func newReturnRipple() *ripple {
	return &ripple{
		dist:  gween.New(0, rippleReach, rippleDuration, ease.OutQuart),
		alpha: alphaEnvelope(),
		wait:  ripplePeriod / 2,
	}
}

// alphaEnvelope approximates the original's analytic flash-and-fade curve
// with a single eased decay from the peak.
func alphaEnvelope() *gween.Tween {
	return gween.New(ripplePeak, 0, rippleDuration, ease.OutExpo)
}

// Update advances the pulse by dt seconds, looping with the configured
// rest between pulses.
func (r *ripple) Update(dt float64) {
	if r.wait > 0 {
		r.wait -= float32(dt)
		r.d, r.a = 0, 0
		return
	}
	var doneD, doneA bool
	r.d, doneD = r.dist.Update(float32(dt))
	r.a, doneA = r.alpha.Update(float32(dt))
	if doneD && doneA {
		r.dist.Reset()
		r.alpha.Reset()
		r.wait = ripplePeriod - rippleDuration
	}
}

// Dist returns the current ring offset from the track, in board units.
func (r *ripple) Dist() float64 { return float64(r.d) }

// Alpha returns the current ring opacity in [0, 1].
func (r *ripple) Alpha() float64 { return float64(r.a) }
