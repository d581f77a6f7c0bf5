package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"ebiten-pong/config"
)

// Debug font glyph size in pixels
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// BaseScreen provides common functionality for all screens
type BaseScreen struct{}

// NewBaseScreen creates a new base screen
func NewBaseScreen() *BaseScreen {
	return &BaseScreen{}
}

// Update implements the Screen interface
func (s *BaseScreen) Update() error {
	return nil
}

// Draw implements the Screen interface
func (s *BaseScreen) Draw(screen *ebiten.Image) {}

// Layout uses a fixed logical resolution; ebiten scales it to the window
func (s *BaseScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}

// drawText prints a single line at (x, y) tinted with c and scaled by
// scale. The debug font is white, so tinting gives it any color.
func drawText(dst *ebiten.Image, text string, x, y, scale float64, c color.Color) {
	if text == "" {
		return
	}
	line := ebiten.NewImage(len(text)*glyphWidth, glyphHeight)
	ebitenutil.DebugPrint(line, text)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(line, op)
	line.Deallocate()
}

// drawCenteredText prints text horizontally centered on cx
func drawCenteredText(dst *ebiten.Image, text string, cx, y, scale float64, c color.Color) {
	width := float64(len(text)*glyphWidth) * scale
	drawText(dst, text, cx-width/2, y, scale, c)
}

// drawFrame draws a panel with a border of thickness px
func drawFrame(dst *ebiten.Image, x, y, w, h, px float64, bg, border color.Color) {
	ebitenutil.DrawRect(dst, x, y, w, h, bg)
	ebitenutil.DrawRect(dst, x, y, px, h, border)      // Left
	ebitenutil.DrawRect(dst, x+w-px, y, px, h, border) // Right
	ebitenutil.DrawRect(dst, x, y, w, px, border)      // Top
	ebitenutil.DrawRect(dst, x, y+h-px, w, px, border) // Bottom
}
