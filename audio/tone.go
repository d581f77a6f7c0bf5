// Package audio synthesizes the short tones played for game events.
// Playback backends consume either a beep.Streamer or 16-bit PCM bytes.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"ebiten-pong/systems"
)

// SampleRate is shared by every backend
const SampleRate = beep.SampleRate(44100)

// fadeOut is applied at the tail of every tone to avoid clicks
const fadeOut = 10 * time.Millisecond

// Streamer returns a finite stream playing t at volume (0.0 to 1.0)
func Streamer(t systems.Tone, volume float64) (beep.Streamer, error) {
	var osc beep.Streamer
	var err error
	switch t.Wave {
	case systems.WaveSine:
		osc, err = generators.SineTone(SampleRate, t.Frequency)
	case systems.WaveSquare:
		osc, err = generators.SquareTone(SampleRate, t.Frequency)
	default:
		return nil, fmt.Errorf("unknown wave %d", t.Wave)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %v Hz tone: %w", t.Frequency, err)
	}

	samples := SampleRate.N(t.Duration)
	shaped := newFade(beep.Take(samples, osc), samples, SampleRate.N(fadeOut))
	return newVolume(shaped, volume), nil
}

// fade ramps the last release samples of a stream down to silence
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
}

func newFade(s beep.Streamer, total, release int) beep.Streamer {
	if release > total {
		release = total
	}
	return &fade{streamer: s, total: total, release: release}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	releaseStart := f.total - f.release
	for i := 0; i < n; i++ {
		if f.position >= releaseStart && f.release > 0 {
			vol := float64(f.total-f.position) / float64(f.release)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
