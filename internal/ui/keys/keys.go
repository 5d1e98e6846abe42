// Package keys defines the key bindings shared by every screen.
package keys

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ifrshub/internal/ui/layout"
)

// Map is the full set of bindings.
type Map struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Tab      key.Binding
	Back     key.Binding
	Quit     key.Binding
	Home     key.Binding
	Standard key.Binding
	Examples key.Binding
	Tests    key.Binding
	Progress key.Binding
}

// Default is the binding set used by the application.
var Default = Map{
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
		key.WithHelp("Enter", "open"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "switch pane"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("Esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "quit"),
	),
	Home: key.NewBinding(
		key.WithKeys("0", "h"),
		key.WithHelp("0", "home"),
	),
	Standard: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "standards"),
	),
	Examples: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "examples"),
	),
	Tests: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "tests"),
	),
	Progress: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "progress"),
	),
}

// Matches reports whether msg is a key press for any of the bindings.
func Matches(msg tea.Msg, b ...key.Binding) bool {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return false
	}
	return key.Matches(k, b...)
}

// Hints converts bindings to footer hints.
func Hints(b ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(b))
	for _, binding := range b {
		h := binding.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return out
}
