package ecs

import "github.com/bits-and-blooms/bitset"

// Query selects live entities carrying every required column. Results are
// always in ascending ID order.
type Query struct {
	world    *World
	required []Column
}

// Query starts a query over the given required columns
func (w *World) Query(required ...Column) *Query {
	return &Query{world: w, required: required}
}

func (q *Query) match() *bitset.BitSet {
	set := q.world.alive.Clone()
	for _, c := range q.required {
		set.InPlaceIntersection(c.mask())
	}
	return set
}

// Entities returns the matching entities
func (q *Query) Entities() []EntityID {
	return collect(q.match())
}

// Pairs calls fn once for every unordered pair of matching entities, with
// a < b and no self pairs
func (q *Query) Pairs(fn func(a, b EntityID)) {
	ids := q.Entities()
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			fn(ids[i], ids[j])
		}
	}
}
