// Package tests is the knowledge tests view: available tests on the left,
// statistics, recent results and recommended study on the right.
package tests

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ifrshub/internal/render"
	"github.com/abhisek/ifrshub/internal/router"
	"github.com/abhisek/ifrshub/internal/screen"
	"github.com/abhisek/ifrshub/internal/ui/components"
	"github.com/abhisek/ifrshub/internal/ui/keys"
	"github.com/abhisek/ifrshub/internal/ui/layout"
	"github.com/abhisek/ifrshub/internal/ui/theme"
)

const sidebarWidth = 38

type focus int

const (
	focusTests focus = iota
	focusRecommended
)

// TestsScreen shows the tests page.
type TestsScreen struct {
	page        render.TestsPage
	list        components.CardList
	recommended components.Menu
	focus       focus
}

var _ screen.Screen = (*TestsScreen)(nil)

// New creates a TestsScreen.
func New(deps screen.Deps) *TestsScreen {
	page := deps.Renderer.Tests(deps.Library)

	items := make([]components.MenuItem, 0, len(page.Recommended))
	for _, a := range page.Recommended {
		href := a.Href
		items = append(items, components.MenuItem{
			Label:  a.Label,
			Action: func() tea.Cmd { return router.Navigate(href) },
		})
	}

	return &TestsScreen{
		page:        page,
		list:        components.NewCardList(page.Cards),
		recommended: components.NewMenu(items),
	}
}

func (s *TestsScreen) Init() tea.Cmd {
	return nil
}

func (s *TestsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if keys.Matches(msg, keys.Default.Tab) {
		if s.focus == focusTests && len(s.recommended.Items) > 0 {
			s.focus = focusRecommended
		} else {
			s.focus = focusTests
		}
		return s, nil
	}

	if s.focus == focusRecommended {
		var cmd tea.Cmd
		s.recommended, cmd = s.recommended.Update(msg)
		return s, cmd
	}

	if keys.Matches(msg, keys.Default.Select) {
		if c, ok := s.list.Selected(); ok && c.Action.Href != "" {
			return s, router.Navigate(c.Action.Href)
		}
		return s, nil
	}
	s.list = s.list.Update(msg)
	return s, nil
}

func (s *TestsScreen) View(width, height int) string {
	head := theme.Title.Render(s.page.Title) + "\n" +
		theme.Subtitle.Width(width).Render(s.page.Subtitle)
	bodyHeight := height - lipgloss.Height(head) - 1

	if layout.IsCompactWidth(width) {
		return head + "\n" + s.list.View(width, bodyHeight, true)
	}

	listWidth := width - sidebarWidth - 1
	left := s.list.View(listWidth, bodyHeight, false)
	right := s.renderSidebar()
	return head + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (s *TestsScreen) renderSidebar() string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Your Statistics") + "\n")
	for _, w := range s.page.Statistics {
		value := lipgloss.NewStyle().Foreground(theme.TokenColor(w.Token)).Bold(true).Render(w.Value)
		b.WriteString(theme.Subtitle.Render(w.Label+": ") + value + "\n")
	}

	b.WriteString("\n" + theme.Title.Render("Recent Results") + "\n")
	for _, r := range s.page.Results {
		mark := "✓"
		if !r.Passed {
			mark = "!"
		}
		score := lipgloss.NewStyle().Foreground(theme.TokenColor(r.ScoreToken)).Bold(true).Render(r.ScoreText)
		outcome := lipgloss.NewStyle().Foreground(theme.TokenColor(r.OutcomeToken)).Render(mark)
		b.WriteString(outcome + " " + theme.Body.Render(r.Title) + "\n")
		b.WriteString("  " + score + theme.Subtitle.Render(" · "+r.Recency) + "\n")
	}

	if len(s.recommended.Items) > 0 {
		heading := "Recommended Study"
		if s.focus == focusRecommended {
			heading = "▸ " + heading
		}
		b.WriteString("\n" + theme.Title.Render(heading) + "\n")
		menu := s.recommended
		if s.focus != focusRecommended {
			menu.Selected = -1
		}
		b.WriteString(menu.View())
	}

	return theme.Card.Width(sidebarWidth).Render(strings.TrimRight(b.String(), "\n"))
}

func (s *TestsScreen) Title() string {
	return "Tests"
}

// KeyHints returns the key binding hints for the footer.
func (s *TestsScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Default.Up, keys.Default.Down, keys.Default.Tab, keys.Default.Select, keys.Default.Back)
}
