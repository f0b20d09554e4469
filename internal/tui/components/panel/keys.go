package panel

import (
	"slices"

	"github.com/charmbracelet/bubbles/v2/key"
)

// KeyMap defines key bindings for the multiplier panel
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Edit     key.Binding
	Cancel   key.Binding
	Increase key.Binding
	Decrease key.Binding
	Save     key.Binding
	Reset    key.Binding
}

// DefaultKeyMap returns the default key bindings for the panel
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j", "down"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "space", " "),
			key.WithHelp("enter", "edit/press"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Increase: key.NewBinding(
			key.WithKeys("+", "=", "right", "l"),
			key.WithHelp("+", "raise 0.05"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("-", "_", "left", "h"),
			key.WithHelp("-", "lower 0.05"),
		),
		Save: key.NewBinding(
			key.WithKeys("s", "ctrl+s"),
			key.WithHelp("s", "save"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
	}
}

// ShortHelp returns the bindings shown under the panel
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Edit, k.Increase, k.Decrease, k.Save, k.Reset}
}

// matches reports whether the named key press triggers b
func matches(pressed string, b key.Binding) bool {
	return b.Enabled() && slices.Contains(b.Keys(), pressed)
}
