package tui

import (
	"github.com/billie-coop/scaler/internal/tui/components/panel"
	"github.com/charmbracelet/bubbles/v2/key"
)

// KeyMap holds the bindings handled by the root model. Everything else
// goes to the panel while the overlay is visible.
type KeyMap struct {
	Toggle  key.Binding
	Hide    key.Binding
	Preview key.Binding
	Copy    key.Binding
	Reload  key.Binding
	Theme   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default root bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "show/hide overlay"),
		),
		Hide: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "hide overlay"),
		),
		Preview: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "preview file"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy file text"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload from disk"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Bindings lists the panel and root bindings for the help dialog
func (k KeyMap) Bindings(p panel.KeyMap) []key.Binding {
	return []key.Binding{
		p.Up, p.Down, p.Edit, p.Cancel, p.Increase, p.Decrease, p.Save, p.Reset,
		k.Toggle, k.Hide, k.Preview, k.Copy, k.Reload, k.Theme, k.Help, k.Quit,
	}
}
