package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap defines the key bindings for a game session.
type KeyMap struct {
	Flap    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Board   key.Binding
	Capture key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Pause, k.Restart, k.Board, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Pause, k.Restart},
		{k.Board, k.Capture, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "flap"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc", "p"),
			key.WithHelp("esc/p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Board: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "runs"),
		),
		Capture: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action for the given game state.
// Keys with no meaning in that state map to ActionNone.
// Returns the action and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, state core.GameState) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true

	case key.Matches(msg, km.keys.Board):
		return core.ActionBack, false

	case key.Matches(msg, km.keys.Flap):
		switch {
		case state.Idle:
			return core.ActionRestart, false
		case state.Running():
			return core.ActionJump, false
		}

	case key.Matches(msg, km.keys.Pause):
		// One key toggles
		switch {
		case state.Paused:
			return core.ActionResume, false
		case state.Running():
			return core.ActionPause, false
		}

	case key.Matches(msg, km.keys.Restart):
		if state.Idle || state.GameOver {
			return core.ActionRestart, false
		}
	}

	return core.ActionNone, false
}
