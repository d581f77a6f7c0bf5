package geom

import (
	"math"
	"testing"
)

func TestNormalizeZeroVector(t *testing.T) {
	n := Zero.Normalize()
	if n != Zero {
		t.Errorf("Expected zero vector, got %v", n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) {
		t.Errorf("Normalize produced NaN: %v", n)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	for _, v := range []Vec2{V(3, 4), V(-1, 0), V(0.001, -0.002), V(1e6, 1e6)} {
		n := v.Normalize()
		if math.Abs(n.Len()-1) > 1e-12 {
			t.Errorf("Normalize(%v) has length %f", v, n.Len())
		}
	}
}

func TestAabbExtendAndCorners(t *testing.T) {
	box := PointAabb(V(1, 2)).ExtendSymmetric(V(5, 25))

	if box.Min != V(-4, -23) || box.Max != V(6, 27) {
		t.Fatalf("Unexpected box %v", box)
	}
	if box.Width() != 10 || box.Height() != 50 {
		t.Errorf("Expected 10x50, got %vx%v", box.Width(), box.Height())
	}
	if box.Center() != V(1, 2) {
		t.Errorf("Expected center (1,2), got %v", box.Center())
	}
	if box.BottomRight() != V(6, -23) || box.TopLeft() != V(-4, 27) {
		t.Errorf("Wrong corners: %v %v", box.BottomRight(), box.TopLeft())
	}
}

func TestAabbIntersects(t *testing.T) {
	a := Aabb{Min: V(0, 0), Max: V(2, 2)}
	tests := []struct {
		name string
		b    Aabb
		want bool
	}{
		{"overlap", Aabb{Min: V(1, 1), Max: V(3, 3)}, true},
		{"touching edge", Aabb{Min: V(2, 0), Max: V(4, 2)}, true},
		{"apart on x", Aabb{Min: V(3, 0), Max: V(4, 2)}, false},
		{"apart on y", Aabb{Min: V(0, -3), Max: V(2, -1)}, false},
	}
	for _, tt := range tests {
		if got := a.Intersects(tt.b); got != tt.want {
			t.Errorf("%s: Intersects = %v, want %v", tt.name, got, tt.want)
		}
	}
}
