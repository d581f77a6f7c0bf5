package systems

import (
	"ebiten-pong/components"
	"ebiten-pong/ecs"
)

// MovementSystem integrates positions from velocities
type MovementSystem struct {
	reg *components.Registry
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(reg *components.Registry) *MovementSystem {
	return &MovementSystem{reg: reg}
}

// Run advances every moving entity by velocity * delta time
func (s *MovementSystem) Run(w *ecs.World, _ *ecs.Commands) {
	dt := ecs.Resource[components.TimeRes](w).DeltaTime

	for _, e := range w.Query(s.reg.Positions, s.reg.Velocities).Entities() {
		pos := s.reg.Positions.Get(e)
		pos.Vec2 = pos.Add(s.reg.Velocities.Get(e).Scale(dt))
	}
}
