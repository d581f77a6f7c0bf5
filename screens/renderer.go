package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-pong/components"
	"ebiten-pong/render"
	"ebiten-pong/systems"
)

var backgroundColor = color.RGBA{0, 0, 0, 255}

// Renderer rasterizes drawables onto an ebiten image through the camera
type Renderer struct {
	camera *systems.CameraSystem
}

// NewRenderer creates a renderer for a viewport of the given size
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		camera: systems.NewCameraSystem(systems.Viewport{Width: float64(width), Height: float64(height)}),
	}
}

// Draw clears the screen and draws the frame
func (r *Renderer) Draw(screen *ebiten.Image, cam components.Camera, frame []render.Drawable) {
	screen.Fill(backgroundColor)

	scale := r.camera.Scale(cam)
	for _, d := range frame {
		if d.Kind != render.KindText && !r.camera.IsVisible(cam, d.Bounds()) {
			continue
		}
		switch d.Kind {
		case render.KindCircle:
			x, y := r.camera.Project(cam, d.Circle.Center)
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(d.Circle.Radius*scale), d.Color, true)
		case render.KindQuad:
			// Top-left on screen is the world-space top-left corner
			x, y := r.camera.Project(cam, d.Quad.TopLeft())
			vector.DrawFilledRect(screen, float32(x), float32(y),
				float32(d.Quad.Width()*scale), float32(d.Quad.Height()*scale), d.Color, true)
		case render.KindText:
			r.drawText(screen, cam, d)
		}
	}
}

// drawText anchors the label's baseline at its world position
func (r *Renderer) drawText(screen *ebiten.Image, cam components.Camera, d render.Drawable) {
	x, y := r.camera.Project(cam, d.Text.Pos)
	scale := d.Text.Size * r.camera.Scale(cam) / glyphHeight
	width := float64(len(d.Text.Content)*glyphWidth) * scale

	switch d.Text.Align {
	case render.AlignCenter:
		x -= width / 2
	case render.AlignRight:
		x -= width
	}
	drawText(screen, d.Text.Content, x, y-glyphHeight*scale, scale, d.Color)
}
