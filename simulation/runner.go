package simulation

import (
	"ebiten-pong/components"
)

// Controller picks the input for the next tick
type Controller func(sim *Simulation) components.PlayerControl

// Idle leaves both paddles still
func Idle(*Simulation) components.PlayerControl {
	return components.PlayerControl{}
}

// Autopilot steers each paddle toward the ball heading its way, or back to
// the middle of the arena when none is, with a dead zone to avoid jitter
func Autopilot(sim *Simulation) components.PlayerControl {
	reg := sim.Registry()
	deadZone := sim.Config().Paddle.Height / 4
	middle := sim.Boundary().Center().Y

	var control components.PlayerControl
	for _, paddle := range sim.World().Query(reg.Players, reg.Positions).Entities() {
		player := reg.Players.Get(paddle)
		pos := reg.Positions.Get(paddle)

		target, ok := approachingBall(sim, pos.X)
		if !ok {
			target = middle
		}
		switch dy := target - pos.Y; {
		case dy > deadZone:
			control.Directions[player.ID] = 1
		case dy < -deadZone:
			control.Directions[player.ID] = -1
		}
	}
	return control
}

// approachingBall returns the height of the nearest ball moving toward x
func approachingBall(sim *Simulation, x float64) (float64, bool) {
	reg := sim.Registry()
	best, found := 0.0, false
	bestDist := 0.0
	for _, ball := range sim.Balls() {
		pos := reg.Positions.Get(ball)
		vel := reg.Velocities.Get(ball)
		dist := x - pos.X
		if dist*vel.X <= 0 {
			continue
		}
		if dist < 0 {
			dist = -dist
		}
		if !found || dist < bestDist {
			best, bestDist, found = pos.Y, dist, true
		}
	}
	return best, found
}

// Result summarizes a headless run
type Result struct {
	Ticks     uint64
	GameTime  float64
	Scores    components.Scores
	Goals     int
	MatchOver bool
	Winner    int
}

// RunHeadless steps the simulation with a fixed dt until maxTicks steps ran
// or the match ended
func RunHeadless(sim *Simulation, dt float64, maxTicks uint64, controller Controller) Result {
	if controller == nil {
		controller = Idle
	}
	start := sim.Scores()
	for sim.Ticks() < maxTicks && !sim.MatchOver() {
		sim.Step(dt, controller(sim))
	}

	scores := sim.Scores()
	winner, over := sim.Winner()
	return Result{
		Ticks:     sim.Ticks(),
		GameTime:  sim.Time().GameTime,
		Scores:    scores,
		Goals:     int(scores[0]-start[0]) + int(scores[1]-start[1]),
		MatchOver: over,
		Winner:    winner,
	}
}
