package screens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"

	pongaudio "ebiten-pong/audio"
	"ebiten-pong/systems"
)

// AudioPlayer plays synthesized tones through ebiten's audio context
type AudioPlayer struct {
	audioContext *audio.Context
	cache        map[systems.Tone][]byte
	volume       float64
	playing      []*audio.Player
}

// NewAudioPlayer creates the audio context on first use and reuses it after
func NewAudioPlayer() *AudioPlayer {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(int(pongaudio.SampleRate))
	}
	return &AudioPlayer{
		audioContext: ctx,
		cache:        make(map[systems.Tone][]byte),
	}
}

// Play synthesizes t once per volume and starts a new player for it
func (p *AudioPlayer) Play(t systems.Tone, volume float64) error {
	if volume != p.volume {
		clear(p.cache)
		p.volume = volume
	}
	pcm, ok := p.cache[t]
	if !ok {
		var err error
		pcm, err = pongaudio.TonePCM(t, volume)
		if err != nil {
			return fmt.Errorf("failed to synthesize tone: %w", err)
		}
		p.cache[t] = pcm
	}

	p.prune()
	player := p.audioContext.NewPlayerFromBytes(pcm)
	player.Play()
	// Players stop when collected, so hold them until they finish
	p.playing = append(p.playing, player)
	return nil
}

func (p *AudioPlayer) prune() {
	active := p.playing[:0]
	for _, player := range p.playing {
		if player.IsPlaying() {
			active = append(active, player)
			continue
		}
		player.Close()
	}
	p.playing = active
}

// Close stops every tone still playing
func (p *AudioPlayer) Close() error {
	for _, player := range p.playing {
		player.Close()
	}
	p.playing = nil
	return nil
}
