package screens

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ModalScreen represents a popup window that appears on top of other screens
type ModalScreen struct {
	*BaseScreen
	title      string
	content    string
	width      int
	height     int
	background color.Color
	textColor  color.Color
	closeKeys  []ebiten.Key
}

// NewModalScreen creates a new modal screen closed by any of closeKeys
func NewModalScreen(title, content string, width, height int, closeKeys ...ebiten.Key) *ModalScreen {
	return &ModalScreen{
		BaseScreen: NewBaseScreen(),
		title:      title,
		content:    content,
		width:      width,
		height:     height,
		background: color.RGBA{0, 0, 0, 200}, // Semi-transparent black
		textColor:  color.White,
		closeKeys:  closeKeys,
	}
}

// NewPauseScreen creates the modal shown while the match is paused
func NewPauseScreen() *ModalScreen {
	return NewModalScreen("PAUSED", "P / Space: Resume", 240, 70, ebiten.KeyP, ebiten.KeySpace, ebiten.KeyEscape)
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	// Calculate center position
	bounds := screen.Bounds()
	x := float64(bounds.Dx()-s.width) / 2
	y := float64(bounds.Dy()-s.height) / 2
	w, h := float64(s.width), float64(s.height)

	drawFrame(screen, x, y, w, h, 1, s.background, color.White)
	drawCenteredText(screen, s.title, x+w/2, y+10, 1, s.textColor)
	for i, line := range strings.Split(s.content, "\n") {
		drawCenteredText(screen, line, x+w/2, y+30+float64(i*glyphHeight), 1, s.textColor)
	}
}

// Update implements the Screen interface
func (s *ModalScreen) Update() error {
	for _, key := range s.closeKeys {
		if inpututil.IsKeyJustPressed(key) {
			return ErrCloseScreen
		}
	}
	return nil
}
