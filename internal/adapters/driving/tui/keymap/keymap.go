// Package keymap defines the key bindings of the results browser.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every binding.
type KeyMap struct {
	Quit     key.Binding
	Back     key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Filter   key.Binding
	Rejected key.Binding
	Refresh  key.Binding
	Handlers key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter by reference"),
		),
		Rejected: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rejected only"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
		Handlers: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "handler chain"),
		),
	}
}

// ListHelp returns the bindings shown under the result list.
func (k *KeyMap) ListHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Filter, k.Rejected, k.Handlers, k.Quit}
}

// DetailHelp returns the bindings shown on the detail and handler views.
func (k *KeyMap) DetailHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

// Matches reports whether keyStr triggers binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
