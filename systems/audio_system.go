package systems

import (
	"time"

	"ebiten-pong/components"
	"ebiten-pong/ecs"
)

// Wave selects the oscillator used for a tone
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// Tone is a short synthesized sound cue
type Tone struct {
	Wave      Wave
	Frequency float64
	Duration  time.Duration
}

// Sound cues played for game events
var (
	ToneBounce    = Tone{Wave: WaveSquare, Frequency: 440, Duration: 40 * time.Millisecond}
	ToneBallHit   = Tone{Wave: WaveSquare, Frequency: 660, Duration: 40 * time.Millisecond}
	ToneGoal      = Tone{Wave: WaveSine, Frequency: 220, Duration: 250 * time.Millisecond}
	ToneMatchOver = Tone{Wave: WaveSine, Frequency: 880, Duration: 600 * time.Millisecond}
)

// TonePlayer plays tones on an audio backend
type TonePlayer interface {
	Play(t Tone, volume float64) error
	Close() error
}

// AudioSystem turns game events into sound cues
type AudioSystem struct {
	player     TonePlayer
	volume     float64
	logMessage func(string)
}

// NewAudioSystem creates a new audio system. A nil player mutes it.
func NewAudioSystem(player TonePlayer, volume float64, logFunc func(string)) *AudioSystem {
	return &AudioSystem{
		player:     player,
		volume:     volume,
		logMessage: logFunc,
	}
}

// CollisionTone picks the cue for a resolved collision. Paddles sliding
// into walls stay silent.
func CollisionTone(a, b components.ColliderType) (Tone, bool) {
	switch {
	case a == components.Actor && b == components.Actor:
		return ToneBallHit, true
	case a == components.Actor || b == components.Actor:
		return ToneBounce, true
	default:
		return Tone{}, false
	}
}

// Subscribe registers the audio cues with the event manager
func (s *AudioSystem) Subscribe(em *ecs.EventManager) {
	em.Subscribe(EventCollision, func(e ecs.Event) {
		c := e.(CollisionEvent)
		if tone, ok := CollisionTone(c.Type1, c.Type2); ok {
			s.Play(tone)
		}
	})
	em.Subscribe(EventGoal, func(ecs.Event) { s.Play(ToneGoal) })
	em.Subscribe(EventMatchOver, func(ecs.Event) { s.Play(ToneMatchOver) })
}

// Play plays a tone at the current volume. Failures are logged, never fatal.
func (s *AudioSystem) Play(t Tone) {
	if s.player == nil || s.volume <= 0 {
		return
	}
	if err := s.player.Play(t, s.volume); err != nil && s.logMessage != nil {
		s.logMessage("audio: " + err.Error())
	}
}

// SetVolume sets the cue volume, clamped to [0, 1]
func (s *AudioSystem) SetVolume(volume float64) {
	s.volume = min(max(volume, 0), 1)
}

// GetVolume returns the current volume setting
func (s *AudioSystem) GetVolume() float64 {
	return s.volume
}

func (s *AudioSystem) Close() error {
	if s.player == nil {
		return nil
	}
	return s.player.Close()
}
