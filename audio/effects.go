package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Launch pop shape
const (
	PopDuration = 60 * time.Millisecond
	PopAttack   = 4 * time.Millisecond
	PopRelease  = 40 * time.Millisecond
	// PopBaseFreq is the pitch for a single relaunch; each extra relaunch raises it a semitone
	PopBaseFreq = 440.0
	// PopMaxSteps caps the pitch climb at one octave
	PopMaxSteps = 12
)

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope lasting duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; math.Log2(0) is -Inf so zero volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// PopFrequency returns the pitch for a pass that relaunched n particles
func PopFrequency(n int) float64 {
	steps := min(max(n-1, 0), PopMaxSteps)
	return PopBaseFreq * math.Pow(2, float64(steps)/12)
}

// CreatePopSound builds the short sine pop played after a relaunch pass
func CreatePopSound(rate beep.SampleRate, relaunched int, volume float64) (beep.Streamer, error) {
	tone, err := generators.SineTone(rate, PopFrequency(relaunched))
	if err != nil {
		return nil, err
	}
	clipped := beep.Take(rate.N(PopDuration), tone)
	shaped := NewEnvelope(clipped, PopDuration, PopAttack, PopRelease, rate)
	return newVolume(shaped, volume), nil
}
