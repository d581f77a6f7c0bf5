// Package render turns world state into a flat list of shapes and text that
// any frontend can rasterize.
package render

import (
	"image/color"

	"ebiten-pong/collision"
	"ebiten-pong/components"
	"ebiten-pong/ecs"
	"ebiten-pong/geom"
)

// Kind tags the active variant of a Drawable
type Kind uint8

const (
	KindCircle Kind = iota
	KindQuad
	KindText
)

// Align is the horizontal anchoring of a text drawable
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Text is a label anchored at Pos in world coordinates. Size is the glyph
// height in world units.
type Text struct {
	Content string
	Pos     geom.Vec2
	Size    float64
	Align   Align
}

// Drawable is a closed variant over circles, quads and text, all in world
// coordinates
type Drawable struct {
	Kind   Kind
	Circle collision.Circle
	Quad   geom.Aabb
	Text   Text
	Color  color.RGBA
}

// Bounds returns the world box covered by a shape. Text has no extent and
// reports its anchor.
func (d Drawable) Bounds() geom.Aabb {
	switch d.Kind {
	case KindCircle:
		return collision.NewCircle(d.Circle.Center, d.Circle.Radius).Bounds()
	case KindQuad:
		return d.Quad
	default:
		return geom.PointAabb(d.Text.Pos)
	}
}

// Colors and sizes of the overlay
var (
	DefaultColliderColor = color.RGBA{255, 0, 0, 128}
	ScoreColor           = color.RGBA{255, 255, 255, 255}
)

const (
	ScoreOffset = 10
	ScoreSize   = 32
)

func NewCircle(c collision.Circle, col color.RGBA) Drawable {
	return Drawable{Kind: KindCircle, Circle: c, Color: col}
}

func NewQuad(box geom.Aabb, col color.RGBA) Drawable {
	return Drawable{Kind: KindQuad, Quad: box, Color: col}
}

func NewText(t Text, col color.RGBA) Drawable {
	return Drawable{Kind: KindText, Text: t, Color: col}
}

// Options selects what Collect emits
type Options struct {
	// Colliders draws every collider in world space
	Colliders bool
}

// Collect builds the frame: colliders first, in entity order, then the
// score line just above the top of the arena
func Collect(w *ecs.World, reg *components.Registry, opts Options) []Drawable {
	var out []Drawable

	if opts.Colliders {
		for _, e := range w.Query(reg.Positions, reg.Colliders).Entities() {
			col := DefaultColliderColor
			if c, ok := reg.Colors.Lookup(e); ok {
				col = c.RGBA
			}
			out = append(out, FromCollider(reg.Colliders.Get(e).At(reg.Positions.Get(e).Vec2), col))
		}
	}

	scores := ecs.Resource[components.Scores](w)
	boundary := ecs.Resource[components.Boundary](w)
	return append(out, ScoreText(scores, boundary.Aabb))
}

// FromCollider converts a world-space collider into its drawable shape
func FromCollider(c collision.Collider, col color.RGBA) Drawable {
	if c.Shape == collision.ShapeCircle {
		return NewCircle(c.Circle, col)
	}
	return NewQuad(c.Aabb, col)
}

// ScoreText renders the scores centered above the arena
func ScoreText(scores components.Scores, boundary geom.Aabb) Drawable {
	return NewText(Text{
		Content: scores.String(),
		Pos:     geom.V(0, boundary.Max.Y+ScoreOffset),
		Size:    ScoreSize,
		Align:   AlignCenter,
	}, ScoreColor)
}
