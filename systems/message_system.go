package systems

import (
	"fmt"

	"ebiten-pong/ecs"
)

// MessageLog stores game messages
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// Global message log instance (singleton)
var globalMessageLog *MessageLog

// GetMessageLog returns the global message log instance
func GetMessageLog() *MessageLog {
	if globalMessageLog == nil {
		globalMessageLog = NewMessageLog()
	}
	return globalMessageLog
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []ColoredMessage{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Add adds a normal message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddColored(message, MessageTypeNormal)
}

// AddColored adds a message of the given type to the log
func (ml *MessageLog) AddColored(message string, t MessageType) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: t})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []ColoredMessage{}
}

// Subscribe appends goal, serve and match messages to the log as the
// events are emitted. Collisions are too frequent to be worth logging.
func (ml *MessageLog) Subscribe(em *ecs.EventManager) {
	em.Subscribe(EventGoal, func(e ecs.Event) {
		goal := e.(GoalEvent)
		ml.AddColored(fmt.Sprintf("Ball out on the %s, score %s", goal.Side, goal.Scores), MessageTypeGoal)
	})
	em.Subscribe(EventServe, func(e ecs.Event) {
		serve := e.(ServeEvent)
		ml.AddColored(fmt.Sprintf("Serve at %.1f,%.1f", serve.Velocity.X, serve.Velocity.Y), MessageTypeServe)
	})
	em.Subscribe(EventMatchOver, func(e ecs.Event) {
		over := e.(MatchOverEvent)
		ml.AddColored(fmt.Sprintf("Player %d wins %s", over.Winner+1, over.Scores), MessageTypeAlert)
	})
}
