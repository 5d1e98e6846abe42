// Package placeholder is the "Coming Soon" view for links whose target has
// not been built.
package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ifrshub/internal/screen"
	"github.com/abhisek/ifrshub/internal/ui/theme"
)

// PlaceholderScreen stands in for an unbuilt view.
type PlaceholderScreen struct {
	title string
	href  string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a PlaceholderScreen for href.
func New(title, href string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title, href: href}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	body := theme.Title.Render("╌╌ Coming Soon ╌╌") + "\n\n" +
		theme.Body.Render(p.title+" is being built.") + "\n" +
		theme.Hint.Render(p.href)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}

// Href returns the link this placeholder stands in for.
func (p *PlaceholderScreen) Href() string {
	return p.href
}
