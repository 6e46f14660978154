package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines global key bindings used across the TUI.
type keyMap struct {
	Quit    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Compute key.Binding
	Clear   key.Binding
	Dismiss key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Compute: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "compute"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "dismiss warnings"),
		),
	}
}
