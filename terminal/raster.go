package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"ebiten-pong/components"
	"ebiten-pong/geom"
	"ebiten-pong/render"
	"ebiten-pong/systems"
)

// Cells are roughly twice as tall as they are wide, so the camera works in
// half-row units vertically
const cellAspect = 2

const blockRune = '█'

// Rasterizer draws drawables into a grid of terminal cells. A shape marks
// every cell it overlaps, so thin walls stay visible at any scale.
type Rasterizer struct {
	camera *systems.CameraSystem
	cols   int
	rows   int
}

// NewRasterizer creates a rasterizer for a cols x rows drawing area
func NewRasterizer(cols, rows int) *Rasterizer {
	r := &Rasterizer{camera: systems.NewCameraSystem(systems.Viewport{})}
	r.Resize(cols, rows)
	return r
}

// Resize updates the drawing area after a terminal resize
func (r *Rasterizer) Resize(cols, rows int) {
	r.cols, r.rows = cols, rows
	r.camera.SetViewport(systems.Viewport{Width: float64(cols), Height: float64(rows * cellAspect)})
}

// Style converts a drawable color into a cell style
func Style(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Draw rasterizes the frame; later drawables overwrite earlier ones
func (r *Rasterizer) Draw(screen tcell.Screen, cam components.Camera, frame []render.Drawable) {
	for _, d := range frame {
		// Labels are clamped onto the screen instead of culled
		if d.Kind != render.KindText && !r.camera.IsVisible(cam, d.Bounds()) {
			continue
		}
		style := Style(d.Color)
		switch d.Kind {
		case render.KindQuad:
			quad := d.Quad
			r.fill(screen, cam, quad, style, func(cell geom.Aabb) bool {
				return overlaps(cell, quad)
			})
		case render.KindCircle:
			c := d.Circle
			r.fill(screen, cam, d.Bounds(), style, func(cell geom.Aabb) bool {
				return closest(cell, c.Center).Sub(c.Center).Len() < c.Radius
			})
		case render.KindText:
			r.text(screen, cam, d.Text, style)
		}
	}
}

// Cell returns the cell containing a world position
func (r *Rasterizer) Cell(cam components.Camera, p geom.Vec2) (col, row int) {
	x, y := r.camera.Project(cam, p)
	return int(math.Floor(x)), int(math.Floor(y / cellAspect))
}

// cellBox returns the world rectangle covered by a cell
func (r *Rasterizer) cellBox(cam components.Camera, col, row int) geom.Aabb {
	topLeft := r.camera.Unproject(cam, float64(col), float64(row*cellAspect))
	bottomRight := r.camera.Unproject(cam, float64(col+1), float64((row+1)*cellAspect))
	return geom.Aabb{
		Min: geom.V(topLeft.X, bottomRight.Y),
		Max: geom.V(bottomRight.X, topLeft.Y),
	}
}

// fill marks the cells around bounds accepted by hits
func (r *Rasterizer) fill(screen tcell.Screen, cam components.Camera, bounds geom.Aabb, style tcell.Style, hits func(cell geom.Aabb) bool) {
	minCol, minRow := r.Cell(cam, bounds.TopLeft())
	maxCol, maxRow := r.Cell(cam, bounds.BottomRight())
	for row := max(minRow, 0); row <= min(maxRow, r.rows-1); row++ {
		for col := max(minCol, 0); col <= min(maxCol, r.cols-1); col++ {
			if hits(r.cellBox(cam, col, row)) {
				screen.SetContent(col, row, blockRune, nil, style)
			}
		}
	}
}

// text writes a label on the row containing its anchor
func (r *Rasterizer) text(screen tcell.Screen, cam components.Camera, t render.Text, style tcell.Style) {
	col, row := r.Cell(cam, t.Pos)
	runes := []rune(t.Content)
	switch t.Align {
	case render.AlignCenter:
		col -= len(runes) / 2
	case render.AlignRight:
		col -= len(runes)
	}
	// Keep the label on screen when the arena fills the terminal
	row = min(max(row, 0), r.rows-1)
	putString(screen, col, row, t.Content, style)
}

// putString writes s starting at (col, row), clipped to the screen width
func putString(screen tcell.Screen, col, row int, s string, style tcell.Style) {
	width, _ := screen.Size()
	for i, ch := range []rune(s) {
		x := col + i
		if x >= 0 && x < width {
			screen.SetContent(x, row, ch, nil, style)
		}
	}
}

// overlaps is a strict box overlap; touching edges do not count
func overlaps(a, b geom.Aabb) bool {
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X && a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}

// closest returns the point of box nearest to p
func closest(box geom.Aabb, p geom.Vec2) geom.Vec2 {
	return geom.V(
		math.Min(math.Max(p.X, box.Min.X), box.Max.X),
		math.Min(math.Max(p.Y, box.Min.Y), box.Max.Y),
	)
}
