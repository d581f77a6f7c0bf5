package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// StartScreen handles the game's start menu
type StartScreen struct {
	*BaseScreen
	selectedOption int
	options        []string
	titleColor     color.Color
	optionColor    color.Color
	selectedColor  color.Color
}

// NewStartScreen creates a new start screen
func NewStartScreen() *StartScreen {
	return &StartScreen{
		BaseScreen:     NewBaseScreen(),
		selectedOption: 0,
		options: []string{
			"New Game",
			"Quit",
		},
		titleColor:    color.RGBA{255, 230, 150, 255}, // Gold
		optionColor:   color.RGBA{200, 200, 200, 255}, // Light Gray
		selectedColor: color.RGBA{255, 255, 255, 255}, // White
	}
}

// Update handles input for the start screen
func (s *StartScreen) Update() error {
	// Handle arrow key navigation
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		s.selectedOption = (s.selectedOption - 1 + len(s.options)) % len(s.options)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.selectedOption = (s.selectedOption + 1) % len(s.options)
	}

	// Handle selection
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		switch s.selectedOption {
		case 0: // New Game
			return ErrNewGame
		case 1: // Quit
			return ErrQuit
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}

	return nil
}

// Draw renders the start screen
func (s *StartScreen) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	bounds := screen.Bounds()
	centerX := float64(bounds.Dx()) / 2
	centerY := float64(bounds.Dy()) / 2

	drawCenteredText(screen, "PONG", centerX, centerY-140, 5, s.titleColor)

	optionSpacing := 30.0
	startY := centerY - float64(len(s.options))*optionSpacing/2
	for i, option := range s.options {
		// Choose color based on selection
		textColor := s.optionColor
		label := option
		if i == s.selectedOption {
			textColor = s.selectedColor
			label = "> " + option + " <"
		}
		drawCenteredText(screen, label, centerX, startY+float64(i)*optionSpacing, 2, textColor)
	}
}
