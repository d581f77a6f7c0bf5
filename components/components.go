package components

import (
	"fmt"
	"image/color"

	"ebiten-pong/collision"
	"ebiten-pong/geom"
)

// Position stores the entity's world-space location
type Position struct {
	geom.Vec2
}

// Velocity stores world units per second. Entities without it are immobile.
type Velocity struct {
	geom.Vec2
}

// Collider is the entity's shape in local coordinates
type Collider = collision.Collider

// ColliderType selects how an entity is weighted and how it bounces when
// resolving overlaps
type ColliderType uint8

const (
	// Block is static or semi-static geometry: walls and paddles
	Block ColliderType = iota
	// Actor is a dynamic game object such as the ball
	Actor
)

func (t ColliderType) String() string {
	switch t {
	case Block:
		return "Block"
	case Actor:
		return "Actor"
	default:
		return fmt.Sprintf("ColliderType(%d)", uint8(t))
	}
}

// Bounciness returns the restitution applied along the collision normal
func (t ColliderType) Bounciness() float64 {
	if t == Actor {
		return 1
	}
	return 0
}

// Player marks a paddle controlled by input slot ID
type Player struct {
	ID    int
	Speed float64
}

// NewPlayer creates a player component
func NewPlayer(id int, speed float64) Player {
	return Player{ID: id, Speed: speed}
}

// Ball marks the ball entity
type Ball struct{}

// Color is an optional draw color for debug shape rendering
type Color struct {
	color.RGBA
}
