// Package home is the dashboard: headline numbers, standards in progress,
// upcoming tests and quick links to the other views.
package home

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ifrshub/internal/render"
	"github.com/abhisek/ifrshub/internal/router"
	"github.com/abhisek/ifrshub/internal/screen"
	"github.com/abhisek/ifrshub/internal/ui/components"
	"github.com/abhisek/ifrshub/internal/ui/keys"
	"github.com/abhisek/ifrshub/internal/ui/layout"
)

// HomeScreen is the main dashboard of the application.
type HomeScreen struct {
	dash render.Dashboard
	menu components.Menu

	// menu index where each section starts
	upcomingAt, quickAt int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps screen.Deps) *HomeScreen {
	d := deps.Renderer.Dashboard(deps.Library)

	var items []components.MenuItem
	for _, c := range d.Continue {
		hint := c.Action.Label
		if len(c.Badges) > 0 {
			hint = c.Badges[0].Label + " · " + hint
		}
		if c.Progress != nil {
			hint = c.Progress.Text + " · " + hint
		}
		items = append(items, link(c.Title, hint, c.Action.Href))
	}
	upcomingAt := len(items)
	for _, c := range d.Upcoming {
		items = append(items, link(c.Title, c.Subtitle, c.Action.Href))
	}
	quickAt := len(items)
	for _, a := range d.QuickActions {
		items = append(items, link(a.Label, "", a.Href))
	}

	return &HomeScreen{
		dash:       d,
		menu:       components.NewMenu(items),
		upcomingAt: upcomingAt,
		quickAt:    quickAt,
	}
}

func link(label, hint, href string) components.MenuItem {
	return components.MenuItem{
		Label:  label,
		Hint:   hint,
		Action: func() tea.Cmd { return router.Navigate(href) },
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	return renderDashboard(h, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// KeyHints returns the key binding hints for the footer.
func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Default.Up, keys.Default.Down, keys.Default.Select,
		keys.Default.Standard, keys.Default.Examples, keys.Default.Tests, keys.Default.Quit)
}
