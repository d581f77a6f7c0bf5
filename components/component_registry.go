package components

import "ebiten-pong/ecs"

// Registry owns one table per component type and is shared by the systems
// that read and write them
type Registry struct {
	Positions     *ecs.Table[Position]
	Velocities    *ecs.Table[Velocity]
	Colliders     *ecs.Table[Collider]
	ColliderTypes *ecs.Table[ColliderType]
	Players       *ecs.Table[Player]
	Balls         *ecs.Table[Ball]
	Colors        *ecs.Table[Color]
}

// NewRegistry registers every component table with the world
func NewRegistry(w *ecs.World) *Registry {
	return &Registry{
		Positions:     ecs.NewTable[Position](w, "Position"),
		Velocities:    ecs.NewTable[Velocity](w, "Velocity"),
		Colliders:     ecs.NewTable[Collider](w, "Collider"),
		ColliderTypes: ecs.NewTable[ColliderType](w, "ColliderType"),
		Players:       ecs.NewTable[Player](w, "Player"),
		Balls:         ecs.NewTable[Ball](w, "Ball"),
		Colors:        ecs.NewTable[Color](w, "Color"),
	}
}

// Describe lists the names of the components attached to e
func Describe(w *ecs.World, e ecs.EntityID) []string {
	var names []string
	for _, c := range w.Columns() {
		if c.Has(e) {
			names = append(names, c.Name())
		}
	}
	return names
}
