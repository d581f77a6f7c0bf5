// Package speaker plays tones through the system audio device with beep's
// speaker. It backs the terminal frontend, where no ebiten audio context
// exists.
package speaker

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	beepspeaker "github.com/gopxl/beep/speaker"

	"ebiten-pong/audio"
	"ebiten-pong/systems"
)

// Player mixes tones into the speaker output
type Player struct {
	mixer *beep.Mixer
}

// New initializes the speaker with a 100ms buffer
func New() (*Player, error) {
	if err := beepspeaker.Init(audio.SampleRate, audio.SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to initialize speaker: %w", err)
	}
	p := &Player{mixer: &beep.Mixer{}}
	beepspeaker.Play(p.mixer)
	return p, nil
}

// Play queues t on the mixer; overlapping tones are summed
func (p *Player) Play(t systems.Tone, volume float64) error {
	s, err := audio.Streamer(t, volume)
	if err != nil {
		return err
	}
	beepspeaker.Lock()
	p.mixer.Add(s)
	beepspeaker.Unlock()
	return nil
}

func (p *Player) Close() error {
	beepspeaker.Clear()
	beepspeaker.Close()
	return nil
}
