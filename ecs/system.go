package ecs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateSystem   = errors.New("duplicate system")
	ErrUnknownDependency = errors.New("unknown dependency")
	ErrDependencyCycle   = errors.New("dependency cycle")
	ErrEmptySchedule     = errors.New("schedule has no systems")
)

// SystemFunc is one step of the tick pipeline. Structural changes go through
// cmds and are applied after the system returns.
type SystemFunc func(w *World, cmds *Commands)

// System is a named pipeline step with its "runs after" dependencies
type System struct {
	Name  string
	Run   SystemFunc
	After []string
}

// Schedule runs a fixed set of systems in a dependency-consistent order.
// The order is resolved once by Build and reused every tick.
type Schedule struct {
	systems []System
	order   []int
	built   bool
	cmds    Commands
}

// NewSchedule creates an empty schedule
func NewSchedule() *Schedule {
	return &Schedule{}
}

// Add registers a system that runs after the named systems
func (s *Schedule) Add(name string, run SystemFunc, after ...string) *Schedule {
	s.systems = append(s.systems, System{Name: name, Run: run, After: after})
	s.built = false
	return s
}

// Build resolves the run order. Among systems whose dependencies are
// satisfied, the one registered first runs first.
func (s *Schedule) Build() error {
	if len(s.systems) == 0 {
		return ErrEmptySchedule
	}

	index := make(map[string]int, len(s.systems))
	for i, sys := range s.systems {
		if _, dup := index[sys.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateSystem, sys.Name)
		}
		index[sys.Name] = i
	}

	indegree := make([]int, len(s.systems))
	dependents := make([][]int, len(s.systems))
	for i, sys := range s.systems {
		for _, dep := range sys.After {
			j, ok := index[dep]
			if !ok {
				return fmt.Errorf("%w: %q runs after %q", ErrUnknownDependency, sys.Name, dep)
			}
			indegree[i]++
			dependents[j] = append(dependents[j], i)
		}
	}

	order := make([]int, 0, len(s.systems))
	done := make([]bool, len(s.systems))
	for len(order) < len(s.systems) {
		next := -1
		for i := range s.systems {
			if !done[i] && indegree[i] == 0 {
				next = i
				break
			}
		}
		if next < 0 {
			var stuck []string
			for i, sys := range s.systems {
				if !done[i] {
					stuck = append(stuck, sys.Name)
				}
			}
			return fmt.Errorf("%w: %s", ErrDependencyCycle, strings.Join(stuck, ", "))
		}
		done[next] = true
		order = append(order, next)
		for _, d := range dependents[next] {
			indegree[d]--
		}
	}

	s.order = order
	s.built = true
	return nil
}

// Order returns the resolved system names
func (s *Schedule) Order() []string {
	names := make([]string, 0, len(s.order))
	for _, i := range s.order {
		names = append(names, s.systems[i].Name)
	}
	return names
}

// Run executes every system once, in order, applying each system's
// commands before the next one starts. An unbuildable schedule panics.
func (s *Schedule) Run(w *World) {
	if !s.built {
		if err := s.Build(); err != nil {
			panic(fmt.Sprintf("ecs: %v", err))
		}
	}
	for _, i := range s.order {
		s.systems[i].Run(w, &s.cmds)
		s.cmds.Apply(w)
	}
}
