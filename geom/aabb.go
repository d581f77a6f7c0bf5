package geom

// Aabb is an axis-aligned box given by its min (bottom-left) and max (top-right) corners
type Aabb struct {
	Min, Max Vec2
}

// PointAabb returns a zero-size box at p
func PointAabb(p Vec2) Aabb {
	return Aabb{Min: p, Max: p}
}

// ExtendSymmetric grows the box by half on every side
func (a Aabb) ExtendSymmetric(half Vec2) Aabb {
	return Aabb{Min: a.Min.Sub(half), Max: a.Max.Add(half)}
}

// Translate moves the box by offset
func (a Aabb) Translate(offset Vec2) Aabb {
	return Aabb{Min: a.Min.Add(offset), Max: a.Max.Add(offset)}
}

func (a Aabb) Size() Vec2 {
	return a.Max.Sub(a.Min)
}

func (a Aabb) Width() float64 {
	return a.Max.X - a.Min.X
}

func (a Aabb) Height() float64 {
	return a.Max.Y - a.Min.Y
}

func (a Aabb) Center() Vec2 {
	return a.Min.Add(a.Max).Scale(0.5)
}

func (a Aabb) BottomLeft() Vec2  { return a.Min }
func (a Aabb) BottomRight() Vec2 { return Vec2{a.Max.X, a.Min.Y} }
func (a Aabb) TopLeft() Vec2     { return Vec2{a.Min.X, a.Max.Y} }
func (a Aabb) TopRight() Vec2    { return a.Max }

// Intersects reports whether the closed boxes share at least one point
func (a Aabb) Intersects(b Aabb) bool {
	return a.Min.X <= b.Max.X && b.Min.X <= a.Max.X &&
		a.Min.Y <= b.Max.Y && b.Min.Y <= a.Max.Y
}
