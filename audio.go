package glimmer

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	chimeSampleRate = beep.SampleRate(48000)
	chimeFreq       = 880.0
	chimeSeconds    = 0.9
)

// Chimes plays the synthesized bell tone heard when a bellflower count
// drops. Audio is strictly decorative: when the speaker cannot be
// initialized (headless runs, tests), Play is a no-op.
type Chimes struct {
	enabled bool
}

// NewChimes opens the speaker. A nil error does not guarantee sound
// hardware exists, only that the backend accepted the stream.
func NewChimes() (*Chimes, error) {
	if err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Millisecond*100)); err != nil {
		return &Chimes{}, err
	}
	return &Chimes{enabled: true}, nil
}

// Play starts one chime. Safe to call from the game loop; mixing happens
// on the speaker's own goroutine.
func (c *Chimes) Play() {
	if !c.enabled {
		return
	}
	speaker.Play(&bellTone{})
}

// bellTone is a beep.Streamer synthesizing a struck bell: a fundamental
// with one inharmonic partial under an exponential decay envelope.
type bellTone struct {
	pos int
}

func (t *bellTone) Stream(samples [][2]float64) (int, bool) {
	total := int(chimeSeconds * float64(chimeSampleRate))
	for i := range samples {
		if t.pos >= total {
			return i, i > 0
		}
		ts := float64(t.pos) / float64(chimeSampleRate)
		env := math.Exp(-6 * ts)
		v := 0.25 * env * (math.Sin(2*math.Pi*chimeFreq*ts) +
			0.4*math.Sin(2*math.Pi*chimeFreq*2.76*ts))
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *bellTone) Err() error { return nil }
