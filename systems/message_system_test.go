package systems

import (
	"strings"
	"testing"

	"ebiten-pong/components"
	"ebiten-pong/ecs"
	"ebiten-pong/geom"
)

func TestMessageLogTruncates(t *testing.T) {
	ml := NewMessageLog()
	ml.MaxMessages = 3
	for _, m := range []string{"a", "b", "c", "d"} {
		ml.Add(m)
	}

	if len(ml.Messages) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(ml.Messages))
	}
	recent := ml.RecentMessages(10)
	if len(recent) != 3 || recent[0].Text != "d" || recent[2].Text != "b" {
		t.Errorf("RecentMessages = %v, want newest first d..b", recent)
	}
	ml.Clear()
	if len(ml.RecentMessages(1)) != 0 {
		t.Errorf("Clear left messages behind")
	}
}

func TestMessageLogSubscribesToGameEvents(t *testing.T) {
	em := ecs.NewEventManager()
	ml := NewMessageLog()
	ml.Subscribe(em)

	em.Emit(CollisionEvent{})
	em.Emit(GoalEvent{Side: SideLeft, Slot: 1, Scores: components.Scores{0, 1}})
	em.Emit(ServeEvent{Velocity: geom.V(-80, 60)})
	em.Emit(MatchOverEvent{Winner: 1, Scores: components.Scores{3, 5}})

	if len(ml.Messages) != 3 {
		t.Fatalf("Expected 3 messages, got %d: %v", len(ml.Messages), ml.Messages)
	}
	tests := []struct {
		typ  MessageType
		text string
	}{
		{MessageTypeGoal, "00 - 01"},
		{MessageTypeServe, "-80.0,60.0"},
		{MessageTypeAlert, "Player 2 wins 03 - 05"},
	}
	for i, tt := range tests {
		m := ml.Messages[i]
		if m.Type != tt.typ || !strings.Contains(m.Text, tt.text) {
			t.Errorf("Message %d = %+v, want type %d containing %q", i, m, tt.typ, tt.text)
		}
	}
}

func TestColoredMessageColors(t *testing.T) {
	seen := map[[4]uint8]MessageType{}
	for _, typ := range []MessageType{MessageTypeNormal, MessageTypeGoal, MessageTypeServe, MessageTypeAlert, MessageTypeSystem} {
		c := ColoredMessage{Type: typ}.GetColor()
		key := [4]uint8{c.R, c.G, c.B, c.A}
		if prev, dup := seen[key]; dup {
			t.Errorf("Message types %d and %d share color %v", prev, typ, c)
		}
		seen[key] = typ
	}
}
