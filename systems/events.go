package systems

import (
	"ebiten-pong/components"
	"ebiten-pong/ecs"
	"ebiten-pong/geom"
)

// Event type constants
const (
	EventCollision ecs.EventType = "collision"
	EventGoal      ecs.EventType = "goal"
	EventServe     ecs.EventType = "serve"
	EventMatchOver ecs.EventType = "match_over"
)

// CollisionEvent is emitted for every resolved overlap
type CollisionEvent struct {
	EntityID1   ecs.EntityID // First entity of the pair
	EntityID2   ecs.EntityID // Second entity of the pair
	Type1       components.ColliderType
	Type2       components.ColliderType
	Normal      geom.Vec2 // Points from the first entity toward the second
	Penetration float64
}

// Type returns the event type
func (e CollisionEvent) Type() ecs.EventType {
	return EventCollision
}

// Side names the arena edge a ball left through
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// GoalEvent is emitted when a ball leaves the arena horizontally
type GoalEvent struct {
	Ball   ecs.EntityID
	Side   Side
	Slot   int               // Score slot that was incremented
	Scores components.Scores // Scores after the increment
}

// Type returns the event type
func (e GoalEvent) Type() ecs.EventType {
	return EventGoal
}

// ServeEvent is emitted when a new ball is queued
type ServeEvent struct {
	Velocity geom.Vec2
}

// Type returns the event type
func (e ServeEvent) Type() ecs.EventType {
	return EventServe
}

// MatchOverEvent is emitted once when a score slot reaches the win score
type MatchOverEvent struct {
	Winner int
	Scores components.Scores
}

// Type returns the event type
func (e MatchOverEvent) Type() ecs.EventType {
	return EventMatchOver
}
