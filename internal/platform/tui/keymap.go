package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pollo-run/internal/core"
)

// KeyMap holds the game bindings. It satisfies help.KeyMap for the footer.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Throw   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		Throw: key.NewBinding(
			key.WithKeys("f", "x"),
			key.WithHelp("f", "throw"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Throw, k.Pause, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Throw},
		{k.Pause, k.Restart, k.Quit},
	}
}

// MapKey translates a key message to a game action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Throw):
		return core.ActionThrow
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// Terminals deliver no key-release events, so a movement key stays held
// for a few ticks after each press. Auto-repeat refreshes the hold.
const holdTicks = 8

// Held tracks held movement keys across ticks and one-shot presses
// for the next tick.
type Held struct {
	hold    map[core.Action]int
	pending core.InputFrame
}

// NewHeld creates an empty tracker.
func NewHeld() *Held {
	return &Held{
		hold:    make(map[core.Action]int),
		pending: core.NewInputFrame(),
	}
}

// Press records a key press.
func (h *Held) Press(a core.Action) {
	switch a {
	case core.ActionNone, core.ActionQuit:
		return
	case core.ActionLeft, core.ActionRight:
		// Reversing direction releases the opposite key at once
		delete(h.hold, opposite(a))
		h.hold[a] = holdTicks
	default:
		h.pending.Set(a)
	}
}

// Frame returns the input for the next tick and ages the holds.
func (h *Held) Frame() core.InputFrame {
	frame := h.pending.Clone()
	for a, n := range h.hold {
		frame.Set(a)
		if n <= 1 {
			delete(h.hold, a)
		} else {
			h.hold[a] = n - 1
		}
	}
	h.pending.Clear()
	return frame
}

// Release drops every held key and pending press.
func (h *Held) Release() {
	clear(h.hold)
	h.pending.Clear()
}

func opposite(a core.Action) core.Action {
	if a == core.ActionLeft {
		return core.ActionRight
	}
	return core.ActionLeft
}
