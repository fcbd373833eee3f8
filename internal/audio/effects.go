package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects the oscillator wave shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave, optionally sweeping frequency from
// freqFrom to freqTo over sweepSamples.
type oscillator struct {
	freqFrom     float64
	freqTo       float64
	sweepSamples int
	phase        float64
	duration     int
	position     int
	wave         WaveType
	rate         beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweepOscillator(freq, freq, duration, duration, wave, rate)
}

// NewSweepOscillator creates an oscillator whose frequency glides from
// freqFrom to freqTo over the sweep duration, then holds.
func NewSweepOscillator(freqFrom, freqTo float64, sweep, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	sweepSamples := rate.N(sweep)
	if sweepSamples < 1 {
		sweepSamples = 1
	}
	return &oscillator{
		freqFrom:     freqFrom,
		freqTo:       freqTo,
		sweepSamples: sweepSamples,
		duration:     rate.N(duration),
		wave:         wave,
		rate:         rate,
	}
}

func (o *oscillator) freq() float64 {
	t := float64(o.position) / float64(o.sweepSamples)
	if t > 1 {
		t = 1
	}
	return o.freqFrom + (o.freqTo-o.freqFrom)*t
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq() / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps a streamer in an attack/sustain/release envelope.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a streamer; math.Log2(0) is -Inf, so zero volume is
// mapped to silence instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators. One per game event.

// FlapSound is a short rising chirp, 400Hz gliding up to 800Hz.
func FlapSound(rate beep.SampleRate) beep.Streamer {
	const duration = 120 * time.Millisecond
	osc := NewSweepOscillator(400, 800, 80*time.Millisecond, duration, WaveSine, rate)
	shaped := NewEnvelope(osc, duration, 2*time.Millisecond, 90*time.Millisecond, rate)
	return newVolume(shaped, 0.3)
}

// ScoreSound is a bright two-note chime played on every passed pipe.
func ScoreSound(rate beep.SampleRate) beep.Streamer {
	const noteLen = 120 * time.Millisecond

	n1 := NewOscillator(520, noteLen, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, noteLen, 2*time.Millisecond, 100*time.Millisecond, rate)

	n2 := NewOscillator(680, noteLen, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, noteLen, 2*time.Millisecond, 100*time.Millisecond, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.25)
}

// WhooshSound is a quick noise burst marking a new pipe entering the
// screen.
func WhooshSound(rate beep.SampleRate) beep.Streamer {
	const duration = 80 * time.Millisecond
	noise := NewOscillator(0, duration, WaveNoise, rate)
	shaped := NewEnvelope(noise, duration, 2*time.Millisecond, 70*time.Millisecond, rate)
	return newVolume(shaped, 0.08)
}

// DeathSound is a falling saw, 400Hz sliding down to 80Hz while fading
// out.
func DeathSound(rate beep.SampleRate) beep.Streamer {
	const duration = 500 * time.Millisecond
	osc := NewSweepOscillator(400, 80, 400*time.Millisecond, duration, WaveSaw, rate)
	shaped := NewEnvelope(osc, duration, 2*time.Millisecond, 450*time.Millisecond, rate)
	return newVolume(shaped, 0.2)
}
