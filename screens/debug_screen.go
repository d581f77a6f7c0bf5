package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-pong/simulation"
	"ebiten-pong/systems"
)

// DebugScreen shows the balls in play and the message log in a modal window
type DebugScreen struct {
	*BaseScreen
	sim          *simulation.Simulation
	scrollOffset int
	width        int
	height       int
	background   color.Color
	textColor    color.Color
}

// NewDebugScreen creates a new debug screen
func NewDebugScreen(sim *simulation.Simulation) *DebugScreen {
	return &DebugScreen{
		BaseScreen:   NewBaseScreen(),
		sim:          sim,
		scrollOffset: 0,
		width:        600,
		height:       400,
		background:   color.RGBA{0, 0, 0, 255}, // Solid black
		textColor:    color.White,
	}
}

// Update handles input for the debug screen
func (s *DebugScreen) Update() error {
	// Handle scrolling through messages with arrow keys
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.scrollUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.scrollDown()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrCloseScreen
	}

	return nil
}

func (s *DebugScreen) scrollUp() {
	if s.scrollOffset > 0 {
		s.scrollOffset--
	}
}

func (s *DebugScreen) scrollDown() {
	if s.scrollOffset < len(systems.GetMessageLog().Messages)-1 {
		s.scrollOffset++
	}
}

// Draw renders the debug screen
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	// Calculate center position
	bounds := screen.Bounds()
	x := float64(bounds.Dx()-s.width) / 2
	y := float64(bounds.Dy()-s.height) / 2
	w, h := float64(s.width), float64(s.height)

	drawFrame(screen, x, y, w, h, 2, s.background, color.White)
	drawCenteredText(screen, "MESSAGE LOG", x+w/2, y+4, 1, s.textColor)

	lineHeight := 16
	startY := 30
	for _, line := range s.sim.BallSummaries() {
		drawText(screen, line, x+10, y+float64(startY), 1, s.textColor)
		startY += lineHeight
	}
	startY += lineHeight / 2

	messages := systems.GetMessageLog().Messages
	maxLines := (s.height - startY - 20) / lineHeight

	// Calculate visible range
	startIdx := s.scrollOffset
	if startIdx > len(messages)-maxLines {
		startIdx = len(messages) - maxLines
		if startIdx < 0 {
			startIdx = 0
		}
	}

	for i := 0; i < maxLines && startIdx+i < len(messages); i++ {
		msg := messages[startIdx+i]
		drawText(screen, msg.Text, x+10, y+float64(startY+i*lineHeight), 1, msg.GetColor())
	}

	// Draw scroll indicator if needed
	if len(messages) > maxLines {
		barHeight := float64(maxLines) / float64(len(messages)) * float64(s.height-startY)
		barY := y + float64(startY) + float64(s.scrollOffset)/float64(len(messages))*float64(s.height-startY)
		ebitenutil.DrawRect(screen, x+w-10, barY, 5, barHeight, color.White)
	}

	drawText(screen, "Up/Down: Scroll  ESC: Close", x+10, y+h-20, 1, s.textColor)
}
