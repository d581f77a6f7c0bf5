package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-pong/components"
)

var gameOverColor = color.RGBA{255, 255, 0, 255}

// GameOverScreen announces the winner of a finished match
type GameOverScreen struct {
	*BaseScreen
	winner int
	scores components.Scores
}

// NewGameOverScreen creates a new game over screen
func NewGameOverScreen(winner int, scores components.Scores) *GameOverScreen {
	return &GameOverScreen{
		BaseScreen: NewBaseScreen(),
		winner:     winner,
		scores:     scores,
	}
}

// Update handles input for the game over screen
func (s *GameOverScreen) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return ErrNewGame
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ErrMainMenu
	}
	return nil
}

// Draw draws the game over screen
func (s *GameOverScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	cx, cy := float64(bounds.Dx())/2, float64(bounds.Dy())/2

	drawCenteredText(screen, "GAME OVER", cx, cy-80, 3, gameOverColor)
	drawCenteredText(screen, fmt.Sprintf("Player %d wins  %s", s.winner+1, s.scores), cx, cy-10, 2, color.White)
	drawCenteredText(screen, "Enter: Play again  Escape: Menu", cx, cy+40, 1, color.White)
}
