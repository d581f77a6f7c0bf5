package systems

import (
	"testing"

	"ebiten-pong/components"
	"ebiten-pong/geom"
)

func TestCameraProjection(t *testing.T) {
	s := NewCameraSystem(Viewport{Width: 800, Height: 600})
	cam := components.Camera{Fov: 400}

	tests := []struct {
		world  geom.Vec2
		sx, sy float64
	}{
		{geom.Zero, 400, 300},
		{geom.V(0, 200), 400, 0},
		{geom.V(-225, -150), 62.5, 525},
	}
	for _, tt := range tests {
		x, y := s.Project(cam, tt.world)
		if x != tt.sx || y != tt.sy {
			t.Errorf("Project(%v) = (%v, %v), want (%v, %v)", tt.world, x, y, tt.sx, tt.sy)
		}
		if back := s.Unproject(cam, x, y); !back.ApproxEqual(tt.world) {
			t.Errorf("Unproject(%v, %v) = %v, want %v", x, y, back, tt.world)
		}
	}
}

func TestCameraViewFollowsCenter(t *testing.T) {
	s := NewCameraSystem(Viewport{Width: 100, Height: 100})
	cam := components.Camera{Center: geom.V(10, 10), Fov: 100}

	if x, y := s.Project(cam, geom.V(10, 10)); x != 50 || y != 50 {
		t.Errorf("Camera center projects to (%v, %v), want (50, 50)", x, y)
	}
	if got := s.View(cam); got.Min != geom.V(-40, -40) || got.Max != geom.V(60, 60) {
		t.Errorf("View = %v, want (-40,-40)..(60,60)", got)
	}

	tests := []struct {
		name string
		box  geom.Aabb
		want bool
	}{
		{"inside", geom.PointAabb(geom.V(-39, 59)), true},
		{"straddling the right edge", geom.Aabb{Min: geom.V(55, 0), Max: geom.V(70, 5)}, true},
		{"right of the view", geom.PointAabb(geom.V(61, 10)), false},
		{"below the view", geom.Aabb{Min: geom.V(0, -60), Max: geom.V(5, -41)}, false},
	}
	for _, tt := range tests {
		if got := s.IsVisible(cam, tt.box); got != tt.want {
			t.Errorf("%s: IsVisible = %v, want %v", tt.name, got, tt.want)
		}
	}
}
