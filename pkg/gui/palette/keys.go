package palette

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the browser keybindings.
type KeyMap struct {
	Up         key.Binding // ↑, k - previous token
	Down       key.Binding // ↓, j - next token
	Appearance key.Binding // a - toggle light/dark
	Quit       key.Binding // q, Ctrl+C - quit
}

// NewKeyMap creates a KeyMap with default keybindings
func NewKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Appearance: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle appearance"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HelpEntries returns the footer help bindings in display order.
func (k KeyMap) HelpEntries() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Appearance, k.Quit}
}
