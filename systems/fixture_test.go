package systems

import (
	"ebiten-pong/collision"
	"ebiten-pong/components"
	"ebiten-pong/config"
	"ebiten-pong/ecs"
	"ebiten-pong/geom"
	"ebiten-pong/spawners"
)

// sequence replays fixed draws
type sequence struct {
	values []float64
	next   int
}

func (s *sequence) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

type fixture struct {
	world   *ecs.World
	reg     *components.Registry
	cfg     config.Config
	spawner *spawners.EntitySpawner
	cmds    *ecs.Commands
}

func newFixture(draws ...float64) *fixture {
	if len(draws) == 0 {
		draws = []float64{0.25}
	}
	cfg := config.Default()
	w := ecs.NewWorld()
	reg := components.NewRegistry(w)

	ecs.InsertResource(w, components.TimeRes{})
	ecs.InsertResource(w, components.PlayerControl{})
	ecs.InsertResource(w, components.Scores{})
	ecs.InsertResource(w, components.Boundary{Aabb: spawners.ArenaBoundary(cfg.Arena)})
	ecs.InsertResource(w, components.Camera{Fov: cfg.Camera.Fov})

	return &fixture{
		world:   w,
		reg:     reg,
		cfg:     cfg,
		spawner: spawners.NewEntitySpawner(w, reg, cfg, &sequence{values: draws}, nil),
		cmds:    &ecs.Commands{},
	}
}

func (f *fixture) box(pos geom.Vec2, half geom.Vec2, vel *geom.Vec2) ecs.EntityID {
	e := f.world.Spawn()
	ecs.With(e, f.reg.Positions, components.Position{Vec2: pos})
	ecs.With(e, f.reg.ColliderTypes, components.Block)
	ecs.With(e, f.reg.Colliders, collision.NewAabb(geom.PointAabb(geom.Zero).ExtendSymmetric(half)))
	if vel != nil {
		ecs.With(e, f.reg.Velocities, components.Velocity{Vec2: *vel})
	}
	return e.ID
}

func (f *fixture) ball(pos, vel geom.Vec2, radius float64) ecs.EntityID {
	e := f.world.Spawn()
	ecs.With(e, f.reg.Balls, components.Ball{})
	ecs.With(e, f.reg.Positions, components.Position{Vec2: pos})
	ecs.With(e, f.reg.Velocities, components.Velocity{Vec2: vel})
	ecs.With(e, f.reg.ColliderTypes, components.Actor)
	ecs.With(e, f.reg.Colliders, collision.NewCircle(geom.Zero, radius))
	return e.ID
}

func (f *fixture) run(run ecs.SystemFunc) {
	run(f.world, f.cmds)
	f.cmds.Apply(f.world)
}

func (f *fixture) record(eventType ecs.EventType) *[]ecs.Event {
	var got []ecs.Event
	f.world.GetEventManager().Subscribe(eventType, func(e ecs.Event) {
		got = append(got, e)
	})
	return &got
}

func vec(x, y float64) *geom.Vec2 {
	v := geom.V(x, y)
	return &v
}
