package simulation

import (
	"math"
	"testing"

	"ebiten-pong/config"
	"ebiten-pong/spawners"
)

func TestRunHeadlessStopsAtMaxTicks(t *testing.T) {
	sim := newTestSimulation(t, config.Default())

	res := RunHeadless(sim, dt, 120, nil)

	if res.Ticks != 120 || sim.Ticks() != 120 {
		t.Errorf("Ticks = %d, want 120", res.Ticks)
	}
	if math.Abs(res.GameTime-2) > 1e-9 {
		t.Errorf("Game time = %v, want 2", res.GameTime)
	}
	if res.MatchOver {
		t.Errorf("Endless match reported over")
	}
}

func TestRunHeadlessStopsAtMatchEnd(t *testing.T) {
	cfg := config.Default()
	cfg.Match.WinScore = 2
	sim, err := New(cfg, spawners.NewRand(11))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res := RunHeadless(sim, dt, 100000, Idle)

	if !res.MatchOver || res.Ticks >= 100000 {
		t.Fatalf("Expected the match to end early, got %+v", res)
	}
	if res.Scores[res.Winner] != 2 || res.Goals < 2 {
		t.Errorf("Unexpected result %+v", res)
	}
}

func TestAutopilotReturnsMoreBalls(t *testing.T) {
	cfg := config.Default()

	idle, err := New(cfg, spawners.NewRand(5))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	auto, err := New(cfg, spawners.NewRand(5))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	idleRes := RunHeadless(idle, dt, 3600, Idle)
	autoRes := RunHeadless(auto, dt, 3600, Autopilot)

	if autoRes.Goals >= idleRes.Goals {
		t.Errorf("Autopilot let in %d goals, idle paddles %d", autoRes.Goals, idleRes.Goals)
	}
}

func TestAutopilotTracksBall(t *testing.T) {
	sim := newTestSimulation(t, config.Default())
	reg := sim.Registry()
	ball := sim.Balls()[0]
	reg.Positions.Get(ball).Y = 100

	// The first serve from this sequence heads right, toward slot 1
	control := Autopilot(sim)
	if control.Directions[1] != 1 {
		t.Errorf("Right paddle direction = %v, want up", control.Directions[1])
	}
	if control.Directions[0] != 0 {
		t.Errorf("Left paddle direction = %v, want still", control.Directions[0])
	}
}

func TestAutopilotRecentersIdlePaddle(t *testing.T) {
	sim := newTestSimulation(t, config.Default())
	reg := sim.Registry()

	// The serve heads right, so the left paddle has nothing to chase
	reg.Positions.Get(paddle(sim, 0)).Y = 60
	if got := Autopilot(sim).Directions[0]; got != -1 {
		t.Errorf("Left paddle direction = %v, want down toward the middle", got)
	}

	reg.Positions.Get(paddle(sim, 0)).Y = 5
	if got := Autopilot(sim).Directions[0]; got != 0 {
		t.Errorf("Left paddle inside the dead zone moved: %v", got)
	}
}
