package systems

import (
	"ebiten-pong/collision"
	"ebiten-pong/components"
	"ebiten-pong/ecs"
	"ebiten-pong/geom"
)

// CollisionSystem detects and resolves overlaps between every pair of
// collidable entities. There is no broad phase: entity counts are tiny.
type CollisionSystem struct {
	reg *components.Registry
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(reg *components.Registry) *CollisionSystem {
	return &CollisionSystem{reg: reg}
}

// Body is one side of a collision pair. Velocity is nil for immobile bodies.
type Body struct {
	Type     components.ColliderType
	Position *geom.Vec2
	Velocity *geom.Vec2
}

// Run resolves each unordered pair once, in ascending entity order. Later
// pairs see positions already corrected by earlier ones.
func (s *CollisionSystem) Run(w *ecs.World, _ *ecs.Commands) {
	r := s.reg
	w.Query(r.Colliders, r.ColliderTypes, r.Positions).Pairs(func(a, b ecs.EntityID) {
		colA := r.Colliders.Get(a).At(r.Positions.Get(a).Vec2)
		colB := r.Colliders.Get(b).At(r.Positions.Get(b).Vec2)

		hit, ok := colA.Collide(colB)
		if !ok {
			return
		}

		bodyA, bodyB := s.body(a), s.body(b)
		if !Resolve(hit, bodyA, bodyB) {
			return
		}

		w.EmitEvent(CollisionEvent{
			EntityID1:   a,
			EntityID2:   b,
			Type1:       bodyA.Type,
			Type2:       bodyB.Type,
			Normal:      hit.Normal,
			Penetration: hit.Penetration,
		})
	})
}

func (s *CollisionSystem) body(e ecs.EntityID) Body {
	b := Body{
		Type:     *s.reg.ColliderTypes.Get(e),
		Position: &s.reg.Positions.Get(e).Vec2,
	}
	if v, ok := s.reg.Velocities.Lookup(e); ok {
		b.Velocity = &v.Vec2
	}
	return b
}

// Weights returns how much of the separation each side takes. ok is false
// when neither side may move.
func Weights(typeA, typeB components.ColliderType, mobileA, mobileB bool) (wa, wb float64, ok bool) {
	switch {
	case typeA == components.Block && typeB == components.Block:
		switch {
		case !mobileA && !mobileB:
			return 0, 0, false
		case !mobileA:
			return 0, 1, true
		case !mobileB:
			return 1, 0, true
		default:
			return 0.5, 0.5, true
		}
	case typeA == components.Block:
		return 0, 1, true
	case typeB == components.Block:
		return 1, 0, true
	default:
		return 0.5, 0.5, true
	}
}

// Reflect removes (bounciness 0) or mirrors (bounciness 1) the component of
// v along the unit normal n
func Reflect(v, n geom.Vec2, bounciness float64) geom.Vec2 {
	return v.Sub(n.Scale(v.Dot(n) * (bounciness + 1)))
}

// Resolve pushes the bodies apart along the collision normal and reflects
// the velocities of the mobile ones. It reports false, changing nothing,
// when neither body can be moved.
func Resolve(hit collision.Collision, a, b Body) bool {
	wa, wb, ok := Weights(a.Type, b.Type, a.Velocity != nil, b.Velocity != nil)
	if !ok {
		return false
	}

	offset := hit.Normal.Scale(hit.Penetration)
	*a.Position = a.Position.Sub(offset.Scale(wa))
	*b.Position = b.Position.Add(offset.Scale(wb))

	if a.Velocity != nil {
		*a.Velocity = Reflect(*a.Velocity, hit.Normal, a.Type.Bounciness())
	}
	if b.Velocity != nil {
		*b.Velocity = Reflect(*b.Velocity, hit.Normal, b.Type.Bounciness())
	}
	return true
}
