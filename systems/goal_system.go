package systems

import (
	"ebiten-pong/components"
	"ebiten-pong/ecs"
	"ebiten-pong/spawners"
)

// GoalSystem scores balls that left the arena horizontally and serves a
// replacement for each of them
type GoalSystem struct {
	reg     *components.Registry
	spawner *spawners.EntitySpawner
}

// NewGoalSystem creates a new goal system
func NewGoalSystem(reg *components.Registry, spawner *spawners.EntitySpawner) *GoalSystem {
	return &GoalSystem{reg: reg, spawner: spawner}
}

// Run checks every ball against the boundary. A ball past the right edge
// counts for slot 0 and one past the left edge for slot 1.
func (s *GoalSystem) Run(w *ecs.World, cmds *ecs.Commands) {
	boundary := ecs.Resource[components.Boundary](w)
	scores := ecs.ResourceMut[components.Scores](w)

	for _, e := range w.Query(s.reg.Balls, s.reg.Positions).Entities() {
		pos := s.reg.Positions.Get(e)

		var side Side
		var slot int
		switch {
		case pos.X > boundary.Max.X:
			side, slot = SideRight, 0
		case pos.X < boundary.Min.X:
			side, slot = SideLeft, 1
		default:
			continue
		}

		scores[slot]++
		w.EmitEvent(GoalEvent{Ball: e, Side: side, Slot: slot, Scores: *scores})
		s.checkMatch(w, slot, *scores)

		cmds.Despawn(e)
		velocity := s.spawner.SpawnBall(cmds)
		w.EmitEvent(ServeEvent{Velocity: velocity})
	}
}

func (s *GoalSystem) checkMatch(w *ecs.World, slot int, scores components.Scores) {
	state, ok := ecs.LookupResource[components.MatchState](w)
	if !ok || state.Over || state.WinScore == 0 || scores[slot] < state.WinScore {
		return
	}
	state.Over = true
	state.Winner = slot
	w.EmitEvent(MatchOverEvent{Winner: slot, Scores: scores})
}
