package components

import (
	"slices"
	"testing"

	"ebiten-pong/ecs"
	"ebiten-pong/geom"
)

func TestScoresString(t *testing.T) {
	if got := (Scores{3, 12}).String(); got != "03 - 12" {
		t.Errorf("Scores.String() = %q", got)
	}
}

func TestBounciness(t *testing.T) {
	if Block.Bounciness() != 0 || Actor.Bounciness() != 1 {
		t.Errorf("Unexpected bounciness: block=%v actor=%v", Block.Bounciness(), Actor.Bounciness())
	}
}

func TestDescribe(t *testing.T) {
	w := ecs.NewWorld()
	reg := NewRegistry(w)

	e := w.Spawn()
	ecs.With(e, reg.Positions, Position{geom.V(1, 2)})
	ecs.With(e, reg.Balls, Ball{})

	if got := Describe(w, e.ID); !slices.Equal(got, []string{"Position", "Ball"}) {
		t.Errorf("Describe = %v", got)
	}
}
