package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"ebiten-pong/render"
	"ebiten-pong/simulation"
	"ebiten-pong/systems"
)

// TickInterval is the fixed simulation step of the terminal loop
const TickInterval = time.Second / 60

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)

// NewMatch builds a fresh simulation; the frontend calls it on start and
// for every rematch
type NewMatch func() (*simulation.Simulation, error)

// Frontend runs a match in a terminal
type Frontend struct {
	screen        tcell.Screen
	newMatch      NewMatch
	sim           *simulation.Simulation
	raster        *Rasterizer
	holds         *HoldTracker
	messages      *systems.MessageLog
	paused        bool
	showColliders bool
}

// New creates a frontend drawing on an initialized screen
func New(screen tcell.Screen, newMatch NewMatch) (*Frontend, error) {
	cols, rows := screen.Size()
	f := &Frontend{
		screen:        screen,
		newMatch:      newMatch,
		raster:        NewRasterizer(cols, max(rows-1, 1)),
		holds:         NewHoldTracker(DefaultHold),
		messages:      systems.GetMessageLog(),
		showColliders: true,
	}
	if err := f.restart(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Frontend) restart() error {
	sim, err := f.newMatch()
	if err != nil {
		return fmt.Errorf("failed to start match: %w", err)
	}
	f.sim = sim
	f.paused = false
	f.holds.Release()
	return nil
}

// Simulation returns the match being played
func (f *Frontend) Simulation() *simulation.Simulation {
	return f.sim
}

// Paused reports whether the match is paused
func (f *Frontend) Paused() bool {
	return f.paused
}

// HandleEvent applies a terminal event at now. It reports false once the
// player asked to quit.
func (f *Frontend) HandleEvent(ev tcell.Event, now time.Time) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.HandleKey(ev.Key(), ev.Rune(), now)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		f.Resize(cols, rows)
		f.screen.Sync()
	}
	return true, nil
}

// HandleKey applies a key press at now
func (f *Frontend) HandleKey(key tcell.Key, r rune, now time.Time) (bool, error) {
	if f.holds.Press(key, r, now) {
		return true, nil
	}
	switch ActionOf(key, r) {
	case ActionQuit:
		return false, nil
	case ActionPause:
		f.paused = !f.paused
		f.holds.Release()
	case ActionColliders:
		f.showColliders = !f.showColliders
	case ActionNewGame:
		if f.sim.MatchOver() {
			return true, f.restart()
		}
	}
	return true, nil
}

// Resize fits the arena to a cols x rows terminal, keeping the last row
// for the status line
func (f *Frontend) Resize(cols, rows int) {
	f.raster.Resize(cols, max(rows-1, 1))
}

// Tick advances the match by one step unless it is paused or over
func (f *Frontend) Tick(now time.Time) {
	if f.Paused() || f.sim.MatchOver() {
		return
	}
	f.sim.Step(TickInterval.Seconds(), f.holds.Control(now))
}

// Draw renders the arena and the status line
func (f *Frontend) Draw() {
	f.screen.Clear()

	frame := render.Collect(f.sim.World(), f.sim.Registry(), render.Options{Colliders: f.showColliders})
	f.raster.Draw(f.screen, f.sim.Camera(), frame)

	_, rows := f.screen.Size()
	putString(f.screen, 0, rows-1, f.status(), statusStyle)
	f.screen.Show()
}

// status keeps the quit hint first so narrow terminals still show it
func (f *Frontend) status() string {
	if winner, over := f.sim.Winner(); over {
		return fmt.Sprintf("q: quit  n: rematch  Player %d wins %s", winner+1, f.sim.Scores())
	}
	if f.paused {
		return "q: quit  p: resume  PAUSED"
	}
	const keys = "q: quit  p: pause  c: colliders  w/s up/down"
	if recent := f.messages.RecentMessages(1); len(recent) > 0 {
		return keys + "  | " + recent[0].Text
	}
	return keys
}

// Run polls input and ticks the match until the player quits
func (f *Frontend) Run() error {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(f.screen, eventChan, done)

	f.Draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			running, err := f.HandleEvent(ev, time.Now())
			if err != nil {
				return err
			}
			if !running {
				return nil
			}

		case now := <-ticker.C:
			f.Tick(now)
			f.Draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
