package components

import (
	"fmt"

	"ebiten-pong/geom"
)

// PlayerCount is the number of paddles and score slots
const PlayerCount = 2

// TimeRes holds the tick's delta and the accumulated game time, in seconds
type TimeRes struct {
	DeltaTime float64
	GameTime  float64
}

// PlayerControl holds the per-tick input direction of each player in
// {-1, 0, 1}, positive is up
type PlayerControl struct {
	Directions [PlayerCount]float64
}

// Scores counts goals per score slot
type Scores [PlayerCount]uint32

// String formats the scores as "00 - 00"
func (s Scores) String() string {
	return fmt.Sprintf("%02d - %02d", s[0], s[1])
}

// Boundary is the arena rectangle; a ball leaving it horizontally scores
type Boundary struct {
	geom.Aabb
}

// Camera describes the 2D view: Center is the world point shown in the
// middle of the screen and Fov the world height that fits the screen
type Camera struct {
	Center geom.Vec2
	Fov    float64
}

// MatchState records whether a score slot has reached the win score.
// WinScore 0 means the match never ends.
type MatchState struct {
	WinScore uint32
	Over     bool
	Winner   int
}
