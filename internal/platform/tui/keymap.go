package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/balloon-shooter/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding
	Fire key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Fire, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Fire},
		{k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a Bubble Tea key message to a game key.
// Returns KeyNone for unbound keys and isQuit for quit requests.
func (k KeyMap) MapKey(msg tea.KeyMsg) (gameKey core.Key, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.KeyNone, true
	case key.Matches(msg, k.Up):
		return core.KeyUp, false
	case key.Matches(msg, k.Down):
		return core.KeyDown, false
	case key.Matches(msg, k.Fire):
		return core.KeyFire, false
	}
	return core.KeyNone, false
}
