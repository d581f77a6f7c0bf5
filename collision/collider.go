// Package collision holds the collider shapes and the pairwise intersection
// tests used by the physics pass. Every function is pure.
package collision

import (
	"fmt"

	"ebiten-pong/geom"
)

// Shape tags the active variant of a Collider
type Shape uint8

const (
	ShapeCircle Shape = iota
	ShapeAabb
)

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeAabb:
		return "aabb"
	default:
		return fmt.Sprintf("shape(%d)", uint8(s))
	}
}

// Circle is a circle collider
type Circle struct {
	Center geom.Vec2
	Radius float64
}

// Collider is a closed variant over Circle and Aabb. Stored colliders are in
// local coordinates; At produces the world-space copy.
type Collider struct {
	Shape  Shape
	Circle Circle
	Aabb   geom.Aabb
}

// Collision describes an overlap. Normal points from the first shape toward
// the second; Penetration is the overlap depth along Normal.
type Collision struct {
	Normal      geom.Vec2
	Penetration float64
}

// NewCircle builds a circle collider
func NewCircle(center geom.Vec2, radius float64) Collider {
	return Collider{Shape: ShapeCircle, Circle: Circle{Center: center, Radius: radius}}
}

// NewAabb builds a box collider
func NewAabb(box geom.Aabb) Collider {
	return Collider{Shape: ShapeAabb, Aabb: box}
}

// At returns a copy of c translated by pos
func (c Collider) At(pos geom.Vec2) Collider {
	switch c.Shape {
	case ShapeCircle:
		c.Circle.Center = c.Circle.Center.Add(pos)
	case ShapeAabb:
		c.Aabb = c.Aabb.Translate(pos)
	}
	return c
}

// Bounds returns the smallest box enclosing the collider
func (c Collider) Bounds() geom.Aabb {
	if c.Shape == ShapeCircle {
		r := c.Circle.Radius
		return geom.PointAabb(c.Circle.Center).ExtendSymmetric(geom.V(r, r))
	}
	return c.Aabb
}

// Collide tests c against other. Both must already be in world space.
func (c Collider) Collide(other Collider) (Collision, bool) {
	switch {
	case c.Shape == ShapeCircle && other.Shape == ShapeCircle:
		return collideCircles(c.Circle, other.Circle)
	case c.Shape == ShapeCircle && other.Shape == ShapeAabb:
		col, ok := collideAabbCircle(other.Aabb, c.Circle)
		if !ok {
			return Collision{}, false
		}
		col.Normal = col.Normal.Neg()
		return col, true
	case c.Shape == ShapeAabb && other.Shape == ShapeCircle:
		return collideAabbCircle(c.Aabb, other.Circle)
	default:
		return collideAabbs(c.Aabb, other.Aabb)
	}
}
