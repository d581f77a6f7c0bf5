package spawners

import (
	"fmt"
	"image/color"

	"ebiten-pong/collision"
	"ebiten-pong/components"
	"ebiten-pong/config"
	"ebiten-pong/ecs"
	"ebiten-pong/geom"
)

// Draw colors for debug shape rendering
var (
	BoundaryColor    = color.RGBA{128, 128, 128, 255}
	PlayerLeftColor  = color.RGBA{0, 255, 0, 255}
	PlayerRightColor = color.RGBA{0, 0, 255, 255}
	BallColor        = color.RGBA{255, 0, 0, 255}
)

// EntitySpawner manages the creation of game entities
type EntitySpawner struct {
	world      *ecs.World
	reg        *components.Registry
	cfg        config.Config
	rng        Rand
	logMessage func(string) // Function for logging messages
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, reg *components.Registry, cfg config.Config, rng Rand, logFunc func(string)) *EntitySpawner {
	return &EntitySpawner{
		world:      world,
		reg:        reg,
		cfg:        cfg,
		rng:        rng,
		logMessage: logFunc,
	}
}

// ArenaBoundary returns the arena rectangle centered on the origin
func ArenaBoundary(cfg config.ArenaConfig) geom.Aabb {
	return geom.PointAabb(geom.Zero).ExtendSymmetric(geom.V(cfg.Width/2, cfg.Height/2))
}

// CreateArena spawns the two border walls and both paddles
func (s *EntitySpawner) CreateArena(boundary geom.Aabb) {
	wallWidth := s.cfg.Arena.WallWidth
	borderOffset := boundary.Height()/2 + wallWidth/2
	border := geom.PointAabb(boundary.Center()).ExtendSymmetric(geom.V(boundary.Width(), wallWidth).Scale(0.5))

	s.CreateWall(geom.V(0, borderOffset), border)
	s.CreateWall(geom.V(0, -borderOffset), border)

	playerOffset := s.cfg.Paddle.Width/2 + s.cfg.Paddle.Inset
	s.CreatePlayer(0, geom.V(boundary.Min.X+playerOffset, 0), PlayerLeftColor)
	s.CreatePlayer(1, geom.V(boundary.Max.X-playerOffset, 0), PlayerRightColor)
}

// CreateWall spawns a static block
func (s *EntitySpawner) CreateWall(pos geom.Vec2, box geom.Aabb) ecs.EntityID {
	e := s.world.Spawn()
	ecs.With(e, s.reg.Positions, components.Position{Vec2: pos})
	ecs.With(e, s.reg.ColliderTypes, components.Block)
	ecs.With(e, s.reg.Colliders, collision.NewAabb(box))
	ecs.With(e, s.reg.Colors, components.Color{RGBA: BoundaryColor})
	return e.ID
}

// CreatePlayer spawns a movable paddle block for input slot id
func (s *EntitySpawner) CreatePlayer(id int, pos geom.Vec2, c color.RGBA) ecs.EntityID {
	size := geom.V(s.cfg.Paddle.Width, s.cfg.Paddle.Height)

	e := s.world.Spawn()
	ecs.With(e, s.reg.Players, components.NewPlayer(id, s.cfg.Paddle.Speed))
	ecs.With(e, s.reg.Positions, components.Position{Vec2: pos})
	ecs.With(e, s.reg.Velocities, components.Velocity{})
	ecs.With(e, s.reg.ColliderTypes, components.Block)
	ecs.With(e, s.reg.Colliders, collision.NewAabb(geom.PointAabb(geom.Zero).ExtendSymmetric(size.Scale(0.5))))
	ecs.With(e, s.reg.Colors, components.Color{RGBA: c})

	if s.logMessage != nil {
		s.logMessage(fmt.Sprintf("Player %d created at %.1f,%.1f", id, pos.X, pos.Y))
	}
	return e.ID
}

// SpawnBall queues a new ball at the center of the world with a random
// serve velocity. The velocity is drawn now, so serves follow the order of
// SpawnBall calls; it is returned for callers that announce the serve.
func (s *EntitySpawner) SpawnBall(cmds *ecs.Commands) geom.Vec2 {
	velocity := ServeVelocity(s.rng, s.cfg.Ball)
	radius := s.cfg.Ball.Radius
	reg := s.reg

	cmds.Spawn(func(e ecs.Entity) {
		ecs.With(e, reg.Balls, components.Ball{})
		ecs.With(e, reg.Positions, components.Position{Vec2: geom.Zero})
		ecs.With(e, reg.Velocities, components.Velocity{Vec2: velocity})
		ecs.With(e, reg.ColliderTypes, components.Actor)
		ecs.With(e, reg.Colliders, collision.NewCircle(geom.Zero, radius))
		ecs.With(e, reg.Colors, components.Color{RGBA: BallColor})
	})
	return velocity
}
