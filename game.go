package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-pong/config"
	"ebiten-pong/ecs"
	"ebiten-pong/screens"
	"ebiten-pong/simulation"
	"ebiten-pong/spawners"
	"ebiten-pong/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	cfg         config.Config
	rng         spawners.Rand
	audioSystem *systems.AudioSystem
	screenStack *screens.ScreenStack
	current     *screens.GameScreen
}

// NewGame creates a new game instance showing the start menu
func NewGame(cfg config.Config, rng spawners.Rand) *Game {
	var player systems.TonePlayer
	if cfg.Audio.Enabled {
		player = screens.NewAudioPlayer()
	}

	g := &Game{
		cfg:         cfg,
		rng:         rng,
		audioSystem: systems.NewAudioSystem(player, cfg.Audio.Volume, systems.GetMessageLog().Add),
		screenStack: screens.NewScreenStack(),
	}
	g.screenStack.Push(screens.NewStartScreen())
	return g
}

// newMatch replaces the current screens with a fresh match
func (g *Game) newMatch() error {
	messages := systems.GetMessageLog()
	messages.Clear()

	sim, err := simulation.New(g.cfg, g.rng,
		simulation.WithLogger(messages.Add),
		simulation.WithSubscribers(messages.Subscribe, g.audioSystem.Subscribe, logMatchResult))
	if err != nil {
		return fmt.Errorf("failed to start match: %w", err)
	}

	messages.AddColored("Left: W/S, right: Up/Down", systems.MessageTypeSystem)
	if g.cfg.Match.WinScore > 0 {
		messages.AddColored(fmt.Sprintf("First to %d wins", g.cfg.Match.WinScore), systems.MessageTypeSystem)
	}

	g.current = screens.NewGameScreen(sim, g.audioSystem)
	g.screenStack.Replace(g.current)
	return nil
}

func logMatchResult(em *ecs.EventManager) {
	em.Subscribe(systems.EventMatchOver, func(e ecs.Event) {
		over := e.(systems.MatchOverEvent)
		log.Printf("match over: player %d wins %s", over.Winner+1, over.Scores)
	})
}

// Update updates the game state and applies screen transitions.
func (g *Game) Update() error {
	err := g.screenStack.Update()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, screens.ErrNewGame):
		return g.newMatch()
	case errors.Is(err, screens.ErrMatchOver):
		sim := g.current.Simulation()
		winner, _ := sim.Winner()
		g.screenStack.Push(screens.NewGameOverScreen(winner, sim.Scores()))
		return nil
	case errors.Is(err, screens.ErrMainMenu):
		g.current = nil
		g.screenStack.Replace(screens.NewStartScreen())
		return nil
	case errors.Is(err, screens.ErrQuit):
		return ebiten.Termination
	default:
		return err
	}
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screenStack.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenStack.Layout(outsideWidth, outsideHeight)
}

// Close releases the audio device
func (g *Game) Close() error {
	return g.audioSystem.Close()
}

// runEbiten opens the window and blocks until the player quits
func runEbiten(cfg config.Config, rng spawners.Rand) error {
	game := NewGame(cfg, rng)
	defer game.Close()

	windowWidth, windowHeight := config.GetWindowSize(cfg)
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}
