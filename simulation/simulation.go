// Package simulation assembles the Pong world and drives it one tick at a
// time. Frontends feed it input and read back the state to draw.
package simulation

import (
	"fmt"
	"strings"

	"ebiten-pong/components"
	"ebiten-pong/config"
	"ebiten-pong/ecs"
	"ebiten-pong/geom"
	"ebiten-pong/spawners"
	"ebiten-pong/systems"
)

// System names, in pipeline order
const (
	SystemControl     = "control_players"
	SystemMovement    = "movement"
	SystemCollisions  = "collisions"
	SystemCheckFinish = "check_finish"
)

// Simulation owns the world and the tick schedule
type Simulation struct {
	cfg      config.Config
	world    *ecs.World
	reg      *components.Registry
	spawner  *spawners.EntitySpawner
	schedule *ecs.Schedule
	ticks    uint64
	logFunc  func(string)
}

// Option customizes a simulation before the arena is built
type Option func(*Simulation)

// WithLogger routes setup messages to logFunc
func WithLogger(logFunc func(string)) Option {
	return func(s *Simulation) {
		s.logFunc = logFunc
	}
}

// WithSubscribers attaches event handlers before the first serve is
// announced
func WithSubscribers(subscribe ...func(em *ecs.EventManager)) Option {
	return func(s *Simulation) {
		for _, sub := range subscribe {
			sub(s.world.GetEventManager())
		}
	}
}

// New builds the arena, serves the first ball and prepares the schedule
func New(cfg config.Config, rng spawners.Rand, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	w := ecs.NewWorld()
	reg := components.NewRegistry(w)
	s := &Simulation{
		cfg:   cfg,
		world: w,
		reg:   reg,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.spawner = spawners.NewEntitySpawner(w, reg, cfg, rng, s.logFunc)

	boundary := spawners.ArenaBoundary(cfg.Arena)
	ecs.InsertResource(w, components.TimeRes{})
	ecs.InsertResource(w, components.PlayerControl{})
	ecs.InsertResource(w, components.Scores{})
	ecs.InsertResource(w, components.Boundary{Aabb: boundary})
	ecs.InsertResource(w, components.Camera{Fov: cfg.Camera.Fov})
	ecs.InsertResource(w, components.MatchState{WinScore: cfg.Match.WinScore})

	s.spawner.CreateArena(boundary)

	control := systems.NewControlSystem(reg)
	movement := systems.NewMovementSystem(reg)
	collisions := systems.NewCollisionSystem(reg)
	goals := systems.NewGoalSystem(reg, s.spawner)

	s.schedule = ecs.NewSchedule().
		Add(SystemControl, control.Run).
		Add(SystemMovement, movement.Run, SystemControl).
		Add(SystemCollisions, collisions.Run, SystemMovement).
		Add(SystemCheckFinish, goals.Run, SystemCollisions)
	if err := s.schedule.Build(); err != nil {
		return nil, fmt.Errorf("build schedule: %w", err)
	}
	if s.logFunc != nil {
		s.logFunc("Systems: " + strings.Join(s.Order(), " -> "))
	}

	var cmds ecs.Commands
	serve := s.spawner.SpawnBall(&cmds)
	cmds.Apply(w)
	w.EmitEvent(systems.ServeEvent{Velocity: serve})

	return s, nil
}

// Step advances the simulation by dt seconds with the given input. A
// finished match no longer moves.
func (s *Simulation) Step(dt float64, control components.PlayerControl) {
	if s.MatchOver() {
		return
	}

	t := ecs.ResourceMut[components.TimeRes](s.world)
	t.DeltaTime = dt
	t.GameTime += dt
	*ecs.ResourceMut[components.PlayerControl](s.world) = control

	s.schedule.Run(s.world)
	s.ticks++
}

// World exposes the underlying world for renderers
func (s *Simulation) World() *ecs.World {
	return s.world
}

// Registry exposes the component tables for renderers
func (s *Simulation) Registry() *components.Registry {
	return s.reg
}

// Config returns the configuration the simulation was built from
func (s *Simulation) Config() config.Config {
	return s.cfg
}

// Order returns the resolved system order
func (s *Simulation) Order() []string {
	return s.schedule.Order()
}

func (s *Simulation) Scores() components.Scores {
	return ecs.Resource[components.Scores](s.world)
}

func (s *Simulation) Boundary() components.Boundary {
	return ecs.Resource[components.Boundary](s.world)
}

func (s *Simulation) Camera() components.Camera {
	return ecs.Resource[components.Camera](s.world)
}

func (s *Simulation) Time() components.TimeRes {
	return ecs.Resource[components.TimeRes](s.world)
}

// Ticks returns the number of completed steps
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// Balls returns the ids of the balls in play
func (s *Simulation) Balls() []ecs.EntityID {
	return s.world.Query(s.reg.Balls, s.reg.Positions).Entities()
}

// BallSummaries describes each ball in play for the debug view
func (s *Simulation) BallSummaries() []string {
	var lines []string
	for _, e := range s.Balls() {
		pos := s.reg.Positions.Get(e).Vec2
		var vel geom.Vec2
		if v, ok := s.reg.Velocities.Lookup(e); ok {
			vel = v.Vec2
		}
		lines = append(lines, fmt.Sprintf("Ball #%d at (%.1f, %.1f) v=(%.1f, %.1f): %s",
			e, pos.X, pos.Y, vel.X, vel.Y, strings.Join(components.Describe(s.world, e), ", ")))
	}
	return lines
}

// MatchOver reports whether a score slot reached the win score
func (s *Simulation) MatchOver() bool {
	return ecs.Resource[components.MatchState](s.world).Over
}

// Winner returns the slot that won the match, if it is over
func (s *Simulation) Winner() (int, bool) {
	state := ecs.Resource[components.MatchState](s.world)
	return state.Winner, state.Over
}
