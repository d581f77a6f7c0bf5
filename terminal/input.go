// Package terminal is a text-mode frontend for the simulation built on
// tcell. Terminals report key presses but not releases, so held paddle
// keys are emulated from the terminal's key repeat.
package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"ebiten-pong/components"
	"ebiten-pong/systems"
)

// DefaultHold covers the gap before a terminal starts repeating a key
const DefaultHold = 150 * time.Millisecond

// Action is a non-paddle command bound to a key
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionColliders
	ActionNewGame
)

type paddleKey struct {
	slot int
	up   bool
}

// paddleKeyOf reports the slot and direction a key drives
func paddleKeyOf(key tcell.Key, r rune) (paddleKey, bool) {
	switch key {
	case tcell.KeyUp:
		return paddleKey{slot: 1, up: true}, true
	case tcell.KeyDown:
		return paddleKey{slot: 1, up: false}, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return paddleKey{slot: 0, up: true}, true
		case 's', 'S':
			return paddleKey{slot: 0, up: false}, true
		}
	}
	return paddleKey{}, false
}

// ActionOf maps a key to a frontend command
func ActionOf(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyF2:
		return ActionColliders
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return ActionQuit
		case 'p', 'P', ' ':
			return ActionPause
		case 'c', 'C':
			return ActionColliders
		case 'n', 'N':
			return ActionNewGame
		}
	}
	return ActionNone
}

// HoldTracker turns discrete key presses into held keys that expire unless
// refreshed
type HoldTracker struct {
	hold  time.Duration
	until [components.PlayerCount][2]time.Time
}

// NewHoldTracker creates a tracker keeping keys held for hold after each press
func NewHoldTracker(hold time.Duration) *HoldTracker {
	return &HoldTracker{hold: hold}
}

// Press records a key press at now. It reports false for keys that do not
// drive a paddle. Pressing one direction releases the opposite one.
func (h *HoldTracker) Press(key tcell.Key, r rune, now time.Time) bool {
	k, ok := paddleKeyOf(key, r)
	if !ok {
		return false
	}
	dir, opposite := 1, 0
	if k.up {
		dir, opposite = 0, 1
	}
	h.until[k.slot][dir] = now.Add(h.hold)
	h.until[k.slot][opposite] = time.Time{}
	return true
}

// Control returns the input directions of the keys still held at now
func (h *HoldTracker) Control(now time.Time) components.PlayerControl {
	var control components.PlayerControl
	for slot, until := range h.until {
		control.Directions[slot] = systems.Direction(now.Before(until[0]), now.Before(until[1]))
	}
	return control
}

// Release drops every held key
func (h *HoldTracker) Release() {
	h.until = [components.PlayerCount][2]time.Time{}
}
