package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ifrshub/internal/render"
	"github.com/abhisek/ifrshub/internal/ui/layout"
	"github.com/abhisek/ifrshub/internal/ui/theme"
)

// renderDashboard lays out greeting, widgets and the three menu sections.
func renderDashboard(h *HomeScreen, width, height int) string {
	compact := layout.IsCompactWidth(width) || layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight)

	var sections []string
	sections = append(sections, theme.Title.Render(h.dash.Greeting))
	if !compact {
		sections = append(sections, theme.Subtitle.Width(width).Render(h.dash.Intro))
	}
	sections = append(sections, renderWidgets(h.dash.Widgets, width, compact))

	menuLines := strings.Split(strings.TrimRight(h.menu.View(), "\n"), "\n")
	continueBlock := section("Continue Learning", "Pick up where you left off", menuLines[:h.upcomingAt], compact)
	upcomingLines := menuLines[h.upcomingAt:h.quickAt]
	if len(upcomingLines) == 0 {
		upcomingLines = []string{theme.Hint.Render("  " + h.dash.UpcomingNote)}
	}
	upcomingBlock := section("Upcoming Tests", "Stay on track with your assessments", upcomingLines, compact)

	if compact {
		sections = append(sections, continueBlock, upcomingBlock)
	} else {
		half := (width - 2) / 2
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
			theme.Card.Width(half).Render(continueBlock),
			"  ",
			theme.Card.Width(half).Render(upcomingBlock),
		))
	}

	sections = append(sections, section("Quick Actions", "", menuLines[h.quickAt:], true))

	return lipgloss.NewStyle().MaxHeight(height).Render(strings.Join(sections, "\n\n"))
}

func section(title, subtitle string, lines []string, compact bool) string {
	head := theme.Title.Render(title)
	if subtitle != "" && !compact {
		head += "\n" + theme.Subtitle.Render(subtitle)
	}
	return head + "\n" + strings.Join(lines, "\n")
}

// renderWidgets draws the headline numbers side by side, or on one line
// in compact mode.
func renderWidgets(ws []render.Widget, width int, compact bool) string {
	if compact {
		parts := make([]string, 0, len(ws))
		for _, w := range ws {
			parts = append(parts, theme.Subtitle.Render(w.Label+" ")+widgetValue(w))
		}
		return strings.Join(parts, theme.Subtitle.Render("  ·  "))
	}

	boxWidth := max((width-len(ws)+1)/max(len(ws), 1), 16)
	boxes := make([]string, 0, len(ws))
	for i, w := range ws {
		box := theme.Card.Width(boxWidth).Render(theme.Subtitle.Render(w.Label) + "\n" + widgetValue(w))
		if i > 0 {
			boxes = append(boxes, " ")
		}
		boxes = append(boxes, box)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func widgetValue(w render.Widget) string {
	return lipgloss.NewStyle().Foreground(theme.TokenColor(w.Token)).Bold(true).Render(w.Value)
}
