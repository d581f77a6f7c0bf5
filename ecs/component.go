package ecs

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// ComponentID identifies a registered component table
type ComponentID uint

// Column is the type-erased view of a Table used to build queries
type Column interface {
	ID() ComponentID
	Name() string
	Has(e EntityID) bool
	mask() *bitset.BitSet
	remove(e EntityID)
}

// Table stores one component type for every entity that has it. Values live
// in a slice indexed by EntityID; a bitset records which slots are present.
// Pointers returned by Get/Lookup stay valid until the next Insert.
type Table[T any] struct {
	id      ComponentID
	name    string
	world   *World
	present *bitset.BitSet
	data    []T
}

// NewTable registers a component table with the world
func NewTable[T any](w *World, name string) *Table[T] {
	t := &Table[T]{
		id:      ComponentID(len(w.columns)),
		name:    name,
		world:   w,
		present: bitset.New(64),
		data:    make([]T, 0, 64),
	}
	w.columns = append(w.columns, t)
	return t
}

func (t *Table[T]) ID() ComponentID { return t.id }

func (t *Table[T]) Name() string { return t.name }

func (t *Table[T]) mask() *bitset.BitSet { return t.present }

// Insert adds or replaces the component for e. The entity must be alive.
func (t *Table[T]) Insert(e EntityID, value T) {
	if !t.world.Alive(e) {
		panic(fmt.Sprintf("ecs: insert %s on dead entity %d", t.name, e))
	}
	if int(e) >= len(t.data) {
		grown := make([]T, int(e)+1, max(2*len(t.data), int(e)+1))
		copy(grown, t.data)
		t.data = grown
	}
	t.data[e] = value
	t.present.Set(uint(e))
}

// Has reports whether e carries this component
func (t *Table[T]) Has(e EntityID) bool {
	return t.present.Test(uint(e))
}

// Lookup returns the component for e when present
func (t *Table[T]) Lookup(e EntityID) (*T, bool) {
	if !t.Has(e) {
		return nil, false
	}
	return &t.data[e], true
}

// Get returns the component for e and panics when it is absent
func (t *Table[T]) Get(e EntityID) *T {
	v, ok := t.Lookup(e)
	if !ok {
		panic(fmt.Sprintf("ecs: entity %d has no %s component", e, t.name))
	}
	return v
}

func (t *Table[T]) remove(e EntityID) {
	if !t.Has(e) {
		return
	}
	var zero T
	t.data[e] = zero
	t.present.Clear(uint(e))
}
