package geom

import "math"

// Epsilon is the tolerance used by ApproxZero and ApproxEqual
const Epsilon = 1e-9

// Vec2 is a 2D vector in world space (y points up)
type Vec2 struct {
	X, Y float64
}

// Zero vector and unit axes
var (
	Zero  = Vec2{}
	UnitX = Vec2{X: 1}
	UnitY = Vec2{Y: 1}
)

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both coordinates by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div divides both coordinates by s
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Dot returns the dot product of v and o
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the euclidean length
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector in the direction of v.
// The zero vector is returned unchanged instead of producing NaN.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if ApproxZero(l) {
		return Zero
	}
	return v.Div(l)
}

// ApproxEqual compares both coordinates within Epsilon
func (v Vec2) ApproxEqual(o Vec2) bool {
	return ApproxZero(v.X-o.X) && ApproxZero(v.Y-o.Y)
}

// ApproxZero reports whether |f| is within Epsilon of zero
func ApproxZero(f float64) bool {
	return math.Abs(f) <= Epsilon
}
