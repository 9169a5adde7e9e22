package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/square-shooter/internal/core"
)

// KeyMap holds the terminal key bindings.
type KeyMap struct {
	Up          key.Binding
	Left        key.Binding
	Down        key.Binding
	Right       key.Binding
	RotateLeft  key.Binding
	RotateRight key.Binding
	Fire        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Down, k.Right, k.RotateLeft, k.RotateRight, k.Fire, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Left, k.Down, k.Right},
		{k.RotateLeft, k.RotateRight, k.Fire},
		{k.Quit, k.ForceQuit},
	}
}

// DefaultKeyMap returns the stock bindings: WASD to move, arrows to
// rotate, mouse or space to fire, Esc to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "up"),
		),
		Left: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "left"),
		),
		Down: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "down"),
		),
		Right: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "right"),
		),
		RotateLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "rotate left"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "rotate right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("click/space", "fire"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "force quit"),
		),
	}
}

// MapKey translates a key message to a shooter key.
// Returns KeyNone for keys the game does not use.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Up):
		return core.KeyW
	case key.Matches(msg, k.Left):
		return core.KeyA
	case key.Matches(msg, k.Down):
		return core.KeyS
	case key.Matches(msg, k.Right):
		return core.KeyD
	case key.Matches(msg, k.RotateLeft):
		return core.KeyLeft
	case key.Matches(msg, k.RotateRight):
		return core.KeyRight
	case key.Matches(msg, k.Quit):
		return core.KeyEscape
	}
	return core.KeyNone
}
