package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-pong/components"
	"ebiten-pong/config"
	"ebiten-pong/render"
	"ebiten-pong/simulation"
	"ebiten-pong/systems"
)

// Fixed simulation step; ebiten calls Update at 60 TPS
const tickDelta = 1.0 / 60.0

// paddleKeys holds the up/down keys of each player slot
var paddleKeys = [components.PlayerCount][2]ebiten.Key{
	{ebiten.KeyW, ebiten.KeyS},
	{ebiten.KeyArrowUp, ebiten.KeyArrowDown},
}

var statusColor = color.RGBA{150, 150, 150, 255}

// GameScreen handles the main gameplay state
type GameScreen struct {
	*BaseScreen
	sim           *simulation.Simulation
	renderer      *Renderer
	audioSystem   *systems.AudioSystem
	screenStack   *ScreenStack
	showColliders bool
}

// NewGameScreen creates a new game screen around a fresh simulation
func NewGameScreen(sim *simulation.Simulation, audioSystem *systems.AudioSystem) *GameScreen {
	width, height := config.GetScreenDimensions()
	return &GameScreen{
		BaseScreen:    NewBaseScreen(),
		sim:           sim,
		renderer:      NewRenderer(width, height-config.StatusBarHeight),
		audioSystem:   audioSystem,
		screenStack:   NewScreenStack(),
		showColliders: true,
	}
}

// Update handles game updates
func (s *GameScreen) Update() error {
	// Toggle debug message window with F1 key
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		if _, open := s.screenStack.Peek().(*DebugScreen); open {
			s.screenStack.Pop()
		} else if s.screenStack.Peek() == nil {
			s.screenStack.Push(NewDebugScreen(s.sim))
		}
		return nil
	}

	// Update the screen stack first to handle modal input
	if s.screenStack.Peek() != nil {
		return s.screenStack.Update()
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ErrMainMenu
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.screenStack.Push(NewPauseScreen())
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		s.showColliders = !s.showColliders
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		s.toggleMute()
	}

	s.sim.Step(tickDelta, readControl())
	if s.sim.MatchOver() {
		return ErrMatchOver
	}
	return nil
}

// toggleMute silences the cues or restores the configured volume
func (s *GameScreen) toggleMute() {
	if s.audioSystem == nil {
		return
	}
	if s.audioSystem.GetVolume() > 0 {
		s.audioSystem.SetVolume(0)
		return
	}
	s.audioSystem.SetVolume(s.sim.Config().Audio.Volume)
}

// readControl samples the held paddle keys
func readControl() components.PlayerControl {
	var control components.PlayerControl
	for i, keys := range paddleKeys {
		control.Directions[i] = systems.Direction(ebiten.IsKeyPressed(keys[0]), ebiten.IsKeyPressed(keys[1]))
	}
	return control
}

// Draw draws the game screen
func (s *GameScreen) Draw(screen *ebiten.Image) {
	frame := render.Collect(s.sim.World(), s.sim.Registry(), render.Options{Colliders: s.showColliders})
	s.renderer.Draw(screen, s.sim.Camera(), frame)

	width, height := config.GetScreenDimensions()
	status := fmt.Sprintf("W/S  Up/Down  P: Pause  M: Mute  F1: Log  F2: Colliders  FPS: %.0f", ebiten.ActualFPS())
	drawText(screen, status, 4, float64(height-config.StatusBarHeight), 1, statusColor)
	if s.audioSystem != nil && s.audioSystem.GetVolume() > 0 {
		drawText(screen, "sound", float64(width-5*glyphWidth-4), float64(height-config.StatusBarHeight), 1, statusColor)
	}

	// If there's a screen on the stack, draw it
	s.screenStack.Draw(screen)
}

// Simulation returns the match being played
func (s *GameScreen) Simulation() *simulation.Simulation {
	return s.sim
}
