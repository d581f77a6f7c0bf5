package collision

import "ebiten-pong/geom"

func collideCircles(a, b Circle) (Collision, bool) {
	delta := b.Center.Sub(a.Center)
	dist := delta.Len()

	// Coincident centers have no direction to push along
	normal := geom.Zero
	if !geom.ApproxZero(dist) {
		normal = delta.Div(dist)
	}

	penetration := a.Radius + b.Radius - dist
	if penetration <= 0 {
		return Collision{}, false
	}
	return Collision{Normal: normal, Penetration: penetration}, true
}

// collideAabbs separates along the single axis of least overlap, ties go to Y
func collideAabbs(a, b geom.Aabb) (Collision, bool) {
	dxRight := a.Max.X - b.Min.X
	dxLeft := b.Max.X - a.Min.X
	dyUp := a.Max.Y - b.Min.Y
	dyDown := b.Max.Y - a.Min.Y

	nx, px := -1.0, dxLeft
	if dxRight < dxLeft {
		nx, px = 1.0, dxRight
	}
	ny, py := -1.0, dyDown
	if dyUp < dyDown {
		ny, py = 1.0, dyUp
	}

	if px <= 0 || py <= 0 {
		return Collision{}, false
	}
	if px < py {
		return Collision{Normal: geom.UnitX.Scale(nx), Penetration: px}, true
	}
	return Collision{Normal: geom.UnitY.Scale(ny), Penetration: py}, true
}

// collideAabbCircle reports the normal pointing from the box toward the circle
func collideAabbCircle(box geom.Aabb, c Circle) (Collision, bool) {
	dx := c.Center.X - box.Min.X
	dy := c.Center.Y - box.Min.Y
	size := box.Size()

	switch {
	case dx >= 0 && dx <= size.X:
		switch {
		case dy <= 0 && dy >= -c.Radius:
			// bottom
			return Collision{Normal: geom.V(0, -1), Penetration: dy + c.Radius}, true
		case dy >= size.Y && dy <= size.Y+c.Radius:
			// top
			return Collision{Normal: geom.V(0, 1), Penetration: size.Y + c.Radius - dy}, true
		}
		return Collision{}, false

	case dy >= 0 && dy <= size.Y:
		switch {
		case dx <= 0 && dx >= -c.Radius:
			// left
			return Collision{Normal: geom.V(-1, 0), Penetration: dx + c.Radius}, true
		case dx >= size.X && dx <= size.X+c.Radius:
			// right
			return Collision{Normal: geom.V(1, 0), Penetration: size.X + c.Radius - dx}, true
		}
		return Collision{}, false
	}

	var corner geom.Vec2
	switch {
	case dx <= 0 && dy <= 0:
		corner = box.BottomLeft()
	case dx <= 0:
		corner = box.TopLeft()
	case dy <= 0:
		corner = box.BottomRight()
	default:
		corner = box.TopRight()
	}

	delta := c.Center.Sub(corner)
	penetration := c.Radius - delta.Len()
	if penetration < 0 {
		return Collision{}, false
	}
	return Collision{Normal: delta.Normalize(), Penetration: penetration}, true
}
