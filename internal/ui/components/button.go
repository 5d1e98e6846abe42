package components

import (
	"github.com/abhisek/ifrshub/internal/render"
	"github.com/abhisek/ifrshub/internal/ui/theme"
)

// ActionButton renders a card's call to action. Only the focused card's
// button is highlighted; disabled actions are always dim.
func ActionButton(a render.Action, focused bool) string {
	switch {
	case a.Disabled:
		return theme.Disabled.Render("[" + a.Label + "]")
	case focused:
		return theme.ButtonActive.Render("▸ " + a.Label)
	default:
		return theme.ButtonInactive.Render(a.Label)
	}
}
