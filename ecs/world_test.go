package ecs

import "testing"

type testPosition struct{ X, Y float64 }
type testVelocity struct{ X, Y float64 }
type testMarker struct{}

type testWorld struct {
	*World
	positions  *Table[testPosition]
	velocities *Table[testVelocity]
	markers    *Table[testMarker]
}

func newTestWorld() testWorld {
	w := NewWorld()
	return testWorld{
		World:      w,
		positions:  NewTable[testPosition](w, "Position"),
		velocities: NewTable[testVelocity](w, "Velocity"),
		markers:    NewTable[testMarker](w, "Marker"),
	}
}

func TestSpawnAssignsIncreasingIDs(t *testing.T) {
	w := newTestWorld()

	a := w.Spawn().ID
	b := w.Spawn().ID
	w.Despawn(a)
	c := w.Spawn().ID

	if !(a < b && b < c) {
		t.Errorf("Expected increasing IDs, got %d %d %d", a, b, c)
	}
	if w.Alive(a) {
		t.Errorf("Despawned entity %d still alive", a)
	}
	if n := len(w.Entities()); n != 2 {
		t.Errorf("Expected 2 live entities, got %d", n)
	}
}

func TestDespawnRemovesAllComponents(t *testing.T) {
	w := newTestWorld()

	e := With(With(w.Spawn(), w.positions, testPosition{1, 2}), w.velocities, testVelocity{3, 4})
	if !w.positions.Has(e.ID) || !w.velocities.Has(e.ID) {
		t.Fatal("Components not inserted")
	}

	if !w.Despawn(e.ID) {
		t.Fatal("Despawn reported entity as dead")
	}
	if w.positions.Has(e.ID) || w.velocities.Has(e.ID) {
		t.Error("Components survived despawn")
	}
	if w.Despawn(e.ID) {
		t.Error("Second despawn should report false")
	}
}

func TestTableGetPanicsWhenAbsent(t *testing.T) {
	w := newTestWorld()
	e := w.Spawn().ID

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for missing component")
		}
	}()
	w.positions.Get(e)
}

func TestTableInsertPanicsOnDeadEntity(t *testing.T) {
	w := newTestWorld()
	e := w.Spawn().ID
	w.Despawn(e)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for insert on dead entity")
		}
	}()
	w.positions.Insert(e, testPosition{})
}

func TestTableGetReturnsWritablePointer(t *testing.T) {
	w := newTestWorld()
	e := With(w.Spawn(), w.positions, testPosition{1, 1}).ID

	w.positions.Get(e).X = 10

	if got := w.positions.Get(e).X; got != 10 {
		t.Errorf("Expected X=10 after write, got %v", got)
	}
	if _, ok := w.velocities.Lookup(e); ok {
		t.Error("Lookup should report absent velocity")
	}
}

func TestTableGrowsPastInitialCapacity(t *testing.T) {
	w := newTestWorld()
	var last EntityID
	for i := 0; i < 200; i++ {
		last = With(w.Spawn(), w.positions, testPosition{X: float64(i)}).ID
	}
	if got := w.positions.Get(last).X; got != 199 {
		t.Errorf("Expected X=199, got %v", got)
	}
	if n := len(w.Query(w.positions).Entities()); n != 200 {
		t.Errorf("Expected 200 positions, got %d", n)
	}
}

func TestResources(t *testing.T) {
	type score struct{ Value int }
	w := NewWorld()

	InsertResource(w, score{Value: 1})
	ResourceMut[score](w).Value++

	if got := Resource[score](w).Value; got != 2 {
		t.Errorf("Expected 2, got %d", got)
	}

	copyOf := Resource[score](w)
	copyOf.Value = 100
	if got := Resource[score](w).Value; got != 2 {
		t.Errorf("Read-only copy leaked a write: %d", got)
	}

	InsertResource(w, score{Value: 7})
	if got, ok := LookupResource[score](w); !ok || got.Value != 7 {
		t.Errorf("Expected the replaced resource, got %v %v", got, ok)
	}
}

func TestMissingResourcePanics(t *testing.T) {
	type missing struct{}
	w := NewWorld()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for missing resource")
		}
	}()
	Resource[missing](w)
}
