package ecs

// EntityID indexes an entity in the world arena. IDs are handed out in
// increasing order and never reused, so a despawned ID stays dead.
type EntityID uint32

// Entity is a freshly spawned entity handle for builder-style setup
type Entity struct {
	ID EntityID
}

// With inserts a component value and returns the entity for chaining
func With[T any](e Entity, table *Table[T], value T) Entity {
	table.Insert(e.ID, value)
	return e
}
