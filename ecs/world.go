package ecs

import (
	"reflect"

	"github.com/bits-and-blooms/bitset"
)

// World owns the entity arena, the component tables and the resources
type World struct {
	next      EntityID
	alive     *bitset.BitSet
	columns   []Column
	resources map[reflect.Type]any

	// Event manager for system communication
	eventManager *EventManager
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		alive:        bitset.New(64),
		resources:    make(map[reflect.Type]any),
		eventManager: NewEventManager(),
	}
}

// Spawn allocates a new entity with no components
func (w *World) Spawn() Entity {
	id := w.next
	w.next++
	w.alive.Set(uint(id))
	return Entity{ID: id}
}

// Despawn removes an entity and all of its components. It reports whether
// the entity was alive.
func (w *World) Despawn(e EntityID) bool {
	if !w.Alive(e) {
		return false
	}
	for _, c := range w.columns {
		c.remove(e)
	}
	w.alive.Clear(uint(e))
	return true
}

// Alive reports whether e has been spawned and not despawned
func (w *World) Alive(e EntityID) bool {
	return w.alive.Test(uint(e))
}

// Entities returns all live entities in ascending ID order
func (w *World) Entities() []EntityID {
	return collect(w.alive)
}

// Columns returns the registered component tables in registration order
func (w *World) Columns() []Column {
	return w.columns
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}

func collect(set *bitset.BitSet) []EntityID {
	ids := make([]EntityID, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		ids = append(ids, EntityID(i))
	}
	return ids
}
