package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	clickDuration    = 100 * time.Millisecond
	clickStartFreq   = 800.0
	clickEndFreq     = 200.0
	clickStartGain   = 0.3
	clickEndGain     = 0.01
	gameOverDuration = 350 * time.Millisecond
	gameOverStart    = 400.0
	gameOverEnd      = 80.0
)

// sweep is a sine oscillator whose frequency and gain both ramp
// exponentially from their start to their end value over its duration.
type sweep struct {
	rate     beep.SampleRate
	fromFreq float64
	toFreq   float64
	fromGain float64
	toGain   float64
	total    int
	position int
	phase    float64
}

// NewSweep creates a finite sine sweep. Frequencies and gains must be
// positive for the exponential ramp.
func NewSweep(rate beep.SampleRate, fromFreq, toFreq float64, duration time.Duration, fromGain, toGain float64) beep.Streamer {
	return &sweep{
		rate:     rate,
		fromFreq: fromFreq,
		toFreq:   toFreq,
		fromGain: fromGain,
		toGain:   toGain,
		total:    rate.N(duration),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.position >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.position >= s.total {
			return i, true
		}
		t := float64(s.position) / float64(s.total)
		freq := s.fromFreq * math.Pow(s.toFreq/s.fromFreq, t)
		gain := s.fromGain * math.Pow(s.toGain/s.fromGain, t)

		val := gain * math.Sin(2*math.Pi*s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateClickSound is the short retro click used for countdown steps and
// collected targets.
func CreateClickSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewSweep(rate, clickStartFreq, clickEndFreq, clickDuration, clickStartGain, clickEndGain)
	return newVolume(osc, volume)
}

// CreateGameOverSound is a longer, lower click.
func CreateGameOverSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewSweep(rate, gameOverStart, gameOverEnd, gameOverDuration, clickStartGain, clickEndGain)
	return newVolume(osc, volume)
}
