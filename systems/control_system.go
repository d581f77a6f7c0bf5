package systems

import (
	"ebiten-pong/components"
	"ebiten-pong/ecs"
	"ebiten-pong/geom"
)

// ControlSystem turns the PlayerControl input into paddle velocities
type ControlSystem struct {
	reg *components.Registry
}

// NewControlSystem creates a new control system
func NewControlSystem(reg *components.Registry) *ControlSystem {
	return &ControlSystem{reg: reg}
}

// Run sets each paddle's velocity to straight up or down at its speed
func (s *ControlSystem) Run(w *ecs.World, _ *ecs.Commands) {
	control := ecs.Resource[components.PlayerControl](w)

	for _, e := range w.Query(s.reg.Players, s.reg.Velocities).Entities() {
		player := s.reg.Players.Get(e)
		velocity := s.reg.Velocities.Get(e)
		velocity.Vec2 = geom.UnitY.Scale(control.Directions[player.ID] * player.Speed)
	}
}

// Direction folds a pair of held keys into an input direction: up adds one,
// down subtracts one
func Direction(up, down bool) float64 {
	var dir float64
	if up {
		dir++
	}
	if down {
		dir--
	}
	return dir
}
