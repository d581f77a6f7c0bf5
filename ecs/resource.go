package ecs

import (
	"fmt"
	"reflect"
)

// InsertResource stores a singleton of type T, replacing any previous value
func InsertResource[T any](w *World, value T) {
	v := value
	w.resources[reflect.TypeFor[T]()] = &v
}

// Resource returns a copy of the singleton of type T for read-only use.
// A missing resource is a setup bug and panics.
func Resource[T any](w *World) T {
	return *ResourceMut[T](w)
}

// ResourceMut returns the singleton of type T for in-place mutation.
// A missing resource is a setup bug and panics.
func ResourceMut[T any](w *World) *T {
	v, ok := LookupResource[T](w)
	if !ok {
		panic(fmt.Sprintf("ecs: resource %s not found", reflect.TypeFor[T]()))
	}
	return v
}

// LookupResource returns the singleton of type T when present
func LookupResource[T any](w *World) (*T, bool) {
	v, ok := w.resources[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return v.(*T), true
}
