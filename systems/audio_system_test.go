package systems

import (
	"errors"
	"testing"

	"ebiten-pong/components"
	"ebiten-pong/ecs"
)

type recordingPlayer struct {
	tones   []Tone
	volumes []float64
	err     error
	closed  bool
}

func (p *recordingPlayer) Play(t Tone, volume float64) error {
	p.tones = append(p.tones, t)
	p.volumes = append(p.volumes, volume)
	return p.err
}

func (p *recordingPlayer) Close() error {
	p.closed = true
	return nil
}

func TestCollisionTone(t *testing.T) {
	block, actor := components.Block, components.Actor
	tests := []struct {
		a, b components.ColliderType
		want Tone
		ok   bool
	}{
		{block, block, Tone{}, false},
		{block, actor, ToneBounce, true},
		{actor, block, ToneBounce, true},
		{actor, actor, ToneBallHit, true},
	}
	for _, tt := range tests {
		got, ok := CollisionTone(tt.a, tt.b)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CollisionTone(%v, %v) = %v, %v; want %v, %v", tt.a, tt.b, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAudioSystemPlaysEventCues(t *testing.T) {
	em := ecs.NewEventManager()
	player := &recordingPlayer{}
	s := NewAudioSystem(player, 0.3, nil)
	s.Subscribe(em)

	em.Emit(CollisionEvent{Type1: components.Block, Type2: components.Block})
	em.Emit(CollisionEvent{Type1: components.Block, Type2: components.Actor})
	em.Emit(GoalEvent{})
	em.Emit(MatchOverEvent{})

	want := []Tone{ToneBounce, ToneGoal, ToneMatchOver}
	if len(player.tones) != len(want) {
		t.Fatalf("Played %v, want %v", player.tones, want)
	}
	for i := range want {
		if player.tones[i] != want[i] || player.volumes[i] != 0.3 {
			t.Errorf("Cue %d = %v at %v, want %v at 0.3", i, player.tones[i], player.volumes[i], want[i])
		}
	}

	if err := s.Close(); err != nil || !player.closed {
		t.Errorf("Close did not close the player: %v", err)
	}
}

func TestAudioSystemMutedAndFailing(t *testing.T) {
	player := &recordingPlayer{err: errors.New("device busy")}
	var logged []string
	s := NewAudioSystem(player, 0, func(m string) { logged = append(logged, m) })

	s.Play(ToneGoal)
	if len(player.tones) != 0 {
		t.Errorf("Muted system played %v", player.tones)
	}

	s.SetVolume(0.5)
	s.Play(ToneGoal)
	if len(logged) != 1 || logged[0] != "audio: device busy" {
		t.Errorf("Logged %v, want one audio error", logged)
	}

	for in, want := range map[float64]float64{-1: 0, 0.25: 0.25, 3: 1} {
		if s.SetVolume(in); s.GetVolume() != want {
			t.Errorf("SetVolume(%v) left volume %v, want %v", in, s.GetVolume(), want)
		}
	}

	if err := NewAudioSystem(nil, 1, nil).Close(); err != nil {
		t.Errorf("Close without player = %v", err)
	}
}
