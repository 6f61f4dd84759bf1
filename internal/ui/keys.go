package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"typeahead/internal/ui/typeahead"
)

// KeyMap holds the host bindings plus the widget's own
type KeyMap struct {
	Help  key.Binding
	Focus key.Binding
	Save  key.Binding
	Quit  key.Binding
	Input typeahead.KeyMap
}

// DefaultKeyMap returns the default bindings around the widget bindings
func DefaultKeyMap(input typeahead.KeyMap) KeyMap {
	return KeyMap{
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "full help"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "toggle focus"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save settings"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Input: input,
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Input.Down, k.Input.Select, k.Input.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return append(k.Input.FullHelp(), []key.Binding{k.Focus, k.Save, k.Help, k.Quit})
}
