package systems

import (
	"ebiten-pong/components"
	"ebiten-pong/geom"
)

// Viewport is the size of the drawing target in pixels (or terminal cells)
type Viewport struct {
	Width  float64
	Height float64
}

// CameraSystem maps between world coordinates (y up) and screen
// coordinates (y down) for a fixed viewport
type CameraSystem struct {
	viewport Viewport
}

// NewCameraSystem creates a new camera system
func NewCameraSystem(viewport Viewport) *CameraSystem {
	return &CameraSystem{viewport: viewport}
}

// SetViewport updates the target size, e.g. after a window resize
func (s *CameraSystem) SetViewport(viewport Viewport) {
	s.viewport = viewport
}

// Scale returns screen units per world unit. The camera fits Fov world
// units into the viewport height.
func (s *CameraSystem) Scale(cam components.Camera) float64 {
	if cam.Fov <= 0 {
		return 1
	}
	return s.viewport.Height / cam.Fov
}

// Project converts a world position to screen coordinates for cam
func (s *CameraSystem) Project(cam components.Camera, p geom.Vec2) (screenX, screenY float64) {
	scale := s.Scale(cam)
	screenX = s.viewport.Width/2 + (p.X-cam.Center.X)*scale
	screenY = s.viewport.Height/2 - (p.Y-cam.Center.Y)*scale
	return screenX, screenY
}

// Unproject converts screen coordinates back to a world position for cam
func (s *CameraSystem) Unproject(cam components.Camera, screenX, screenY float64) geom.Vec2 {
	scale := s.Scale(cam)
	return geom.V(
		cam.Center.X+(screenX-s.viewport.Width/2)/scale,
		cam.Center.Y-(screenY-s.viewport.Height/2)/scale,
	)
}

// View returns the world rectangle shown on screen for cam
func (s *CameraSystem) View(cam components.Camera) geom.Aabb {
	topLeft := s.Unproject(cam, 0, 0)
	bottomRight := s.Unproject(cam, s.viewport.Width, s.viewport.Height)
	return geom.Aabb{
		Min: geom.V(topLeft.X, bottomRight.Y),
		Max: geom.V(bottomRight.X, topLeft.Y),
	}
}

// IsVisible reports whether any part of box is on screen
func (s *CameraSystem) IsVisible(cam components.Camera, box geom.Aabb) bool {
	return s.View(cam).Intersects(box)
}
