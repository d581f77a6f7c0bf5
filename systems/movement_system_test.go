package systems

import (
	"testing"

	"ebiten-pong/components"
	"ebiten-pong/ecs"
	"ebiten-pong/geom"
)

func TestControlSetsPaddleVelocity(t *testing.T) {
	f := newFixture()
	f.spawner.CreateArena(ecs.Resource[components.Boundary](f.world).Aabb)
	ecs.ResourceMut[components.PlayerControl](f.world).Directions = [components.PlayerCount]float64{1, -1}

	f.run(NewControlSystem(f.reg).Run)

	for _, e := range f.world.Query(f.reg.Players).Entities() {
		player := f.reg.Players.Get(e)
		want := geom.V(0, 100)
		if player.ID == 1 {
			want = geom.V(0, -100)
		}
		if got := f.reg.Velocities.Get(e).Vec2; got != want {
			t.Errorf("Player %d velocity = %v, want %v", player.ID, got, want)
		}
	}
}

func TestControlStopsIdlePaddles(t *testing.T) {
	f := newFixture()
	f.spawner.CreateArena(ecs.Resource[components.Boundary](f.world).Aabb)
	ctl := NewControlSystem(f.reg)

	ecs.ResourceMut[components.PlayerControl](f.world).Directions = [components.PlayerCount]float64{1, 1}
	f.run(ctl.Run)
	ecs.ResourceMut[components.PlayerControl](f.world).Directions = [components.PlayerCount]float64{}
	f.run(ctl.Run)

	for _, e := range f.world.Query(f.reg.Players).Entities() {
		if got := f.reg.Velocities.Get(e).Vec2; got != geom.Zero {
			t.Errorf("Idle paddle velocity = %v, want zero", got)
		}
	}
}

func TestMovementIntegratesVelocity(t *testing.T) {
	f := newFixture()
	ball := f.ball(geom.V(1, 2), geom.V(100, -50), 5)
	wall := f.box(geom.V(0, 155), geom.V(225, 2.5), nil)
	ecs.ResourceMut[components.TimeRes](f.world).DeltaTime = 0.5

	f.run(NewMovementSystem(f.reg).Run)

	if got := f.reg.Positions.Get(ball).Vec2; got != geom.V(51, -23) {
		t.Errorf("Ball position = %v, want (51, -23)", got)
	}
	if got := f.reg.Positions.Get(wall).Vec2; got != geom.V(0, 155) {
		t.Errorf("Wall without velocity moved to %v", got)
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		up, down bool
		want     float64
	}{
		{false, false, 0},
		{true, false, 1},
		{false, true, -1},
		{true, true, 0},
	}
	for _, tt := range tests {
		if got := Direction(tt.up, tt.down); got != tt.want {
			t.Errorf("Direction(%v, %v) = %v, want %v", tt.up, tt.down, got, tt.want)
		}
	}
}
