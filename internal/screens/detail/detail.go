// Package detail is the standard detail view: course modules, practice
// examples and resources for one standard.
package detail

import (
	"fmt"
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

// DetailScreen shows one standard.
type DetailScreen struct {
	detail render.Detail
	menu   components.Menu

	// menu index ranges per section
	practiceAt, resourcesAt int
	scrollOffset            int
}

var _ screen.Screen = (*DetailScreen)(nil)

// New creates a DetailScreen for the standard id. It reports false when
// the standard does not exist.
func New(deps screen.Deps, id string) (*DetailScreen, bool) {
	d, ok := deps.Renderer.StandardDetail(deps.Library, id)
	if !ok {
		return nil, false
	}

	var items []components.MenuItem
	for _, m := range d.Modules {
		items = append(items, components.MenuItem{
			Label:    fmt.Sprintf("%s %d. %s", m.Icon, m.Seq, m.Title),
			Hint:     m.Duration + " · " + m.Action.Label,
			Disabled: m.Action.Disabled,
			Action:   navigate(m.Action.Href),
		})
	}
	practiceAt := len(items)
	for _, p := range d.Practice {
		items = append(items, components.MenuItem{
			Label:  p.Title,
			Hint:   statsHint(p),
			Action: navigate(p.Action.Href),
		})
	}
	resourcesAt := len(items)
	for _, r := range d.Resources {
		items = append(items, components.MenuItem{
			Label:  r.Title,
			Hint:   r.Action.Label,
			Action: navigate(r.Action.Href),
		})
	}

	return &DetailScreen{
		detail:      d,
		menu:        components.NewMenu(items),
		practiceAt:  practiceAt,
		resourcesAt: resourcesAt,
	}, true
}

// navigate opens href. Entries without a destination do nothing.
func navigate(href string) func() tea.Cmd {
	if href == "" {
		return nil
	}
	return func() tea.Cmd { return router.Navigate(href) }
}

func statsHint(c render.Card) string {
	parts := make([]string, 0, len(c.Badges)+len(c.Stats))
	for _, b := range c.Badges {
		parts = append(parts, b.Label)
	}
	for _, s := range c.Stats {
		parts = append(parts, s.Value)
	}
	return strings.Join(parts, " · ")
}

func (s *DetailScreen) Init() tea.Cmd {
	return nil
}

func (s *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *DetailScreen) View(width, height int) string {
	h := s.detail.Header
	var lines []string

	top := components.Badges(h.Badges)
	if s.detail.LastUpdated != "" {
		top += "  " + theme.Subtitle.Render("Last updated: "+s.detail.LastUpdated)
	}
	lines = append(lines, top, theme.Title.Render(h.Title))
	lines = append(lines, strings.Split(theme.Body.Width(width).Render(h.Description), "\n")...)
	if h.Progress != nil {
		lines = append(lines, "", theme.Subtitle.Render("Your Progress"))
		lines = append(lines, components.NewProgressBar("", h.Progress.Percent, true, min(width, 60)).View())
	}
	lines = append(lines, components.Stats(h.Stats))

	if len(s.menu.Items) == 0 {
		lines = append(lines, "", theme.Hint.Render("Course content for this standard is coming soon."))
		return strings.Join(lines, "\n")
	}

	menuLines := strings.Split(strings.TrimRight(s.menu.View(), "\n"), "\n")
	section := func(title string, from, to int) {
		if from >= to {
			return
		}
		lines = append(lines, "", theme.Title.Render(title))
		lines = append(lines, menuLines[from:to]...)
	}
	section("Course Modules", 0, s.practiceAt)
	section("Practice Examples", s.practiceAt, s.resourcesAt)
	section("Resources", s.resourcesAt, len(menuLines))

	return s.window(lines, height)
}

// window keeps the selected menu row on screen when the page is taller
// than height.
func (s *DetailScreen) window(lines []string, height int) string {
	if len(lines) <= height {
		return strings.Join(lines, "\n")
	}

	selectedLine := 0
	for i, l := range lines {
		if strings.Contains(l, "▸") {
			selectedLine = i
			break
		}
	}
	if selectedLine < s.scrollOffset {
		s.scrollOffset = selectedLine
	}
	if selectedLine >= s.scrollOffset+height {
		s.scrollOffset = selectedLine - height + 1
	}
	end := min(s.scrollOffset+height, len(lines))
	return lipgloss.NewStyle().MaxHeight(height).Render(strings.Join(lines[s.scrollOffset:end], "\n"))
}

func (s *DetailScreen) Title() string {
	return s.detail.Header.Title
}

// KeyHints returns the key binding hints for the footer.
func (s *DetailScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Default.Up, keys.Default.Down, keys.Default.Select, keys.Default.Back)
}
