package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/badgers-arcade/internal/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed duration.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer producing one wave shape at freq Hz.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1.0
			if o.phase < 0.5 {
				val = 1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

// NewEnvelope wraps s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		release:      rate.N(release),
		totalSamples: rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.release
	for i := range n {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = max(float64(e.totalSamples-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one shaped tone of a cue.
type note struct {
	freq     float64
	duration time.Duration
	wave     WaveType
}

// tone renders a note with short attack and release ramps.
func tone(n note, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(n.freq, n.duration, n.wave, rate)
	return NewEnvelope(osc, n.duration, 5*time.Millisecond, n.duration/2, rate)
}

// sequence plays notes one after another.
func sequence(rate beep.SampleRate, notes ...note) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, tone(n, rate))
	}
	return beep.Seq(parts...)
}

// Cue returns the sound for a game event, or nil when the event is silent.
func Cue(kind core.EventKind, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch kind {
	case core.EventAte:
		// Bell: A5 with an octave overtone
		s = beep.Mix(
			newVolume(tone(note{880, 120 * time.Millisecond, WaveSine}, rate), 0.7),
			newVolume(tone(note{1760, 120 * time.Millisecond, WaveSine}, rate), 0.3),
		)
	case core.EventSlowed:
		s = sequence(rate,
			note{660, 90 * time.Millisecond, WaveSine},
			note{440, 140 * time.Millisecond, WaveSine},
		)
	case core.EventHit:
		s = tone(note{100, 200 * time.Millisecond, WaveSaw}, rate)
	case core.EventSpawned:
		s = newVolume(tone(note{0, 60 * time.Millisecond, WaveNoise}, rate), 0.3)
	case core.EventGameOver:
		s = sequence(rate,
			note{440, 150 * time.Millisecond, WaveSquare},
			note{330, 150 * time.Millisecond, WaveSquare},
			note{220, 300 * time.Millisecond, WaveSquare},
		)
	case core.EventResumed:
		// Coin: B5 then E6
		s = sequence(rate,
			note{987.77, 80 * time.Millisecond, WaveSquare},
			note{1318.51, 160 * time.Millisecond, WaveSquare},
		)
	default:
		return nil
	}
	return newVolume(s, volume)
}
