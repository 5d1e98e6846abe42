package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ifrshub/internal/render"
	"github.com/abhisek/ifrshub/internal/ui/theme"
)

// Badges renders badges side by side.
func Badges(bs []render.Badge) string {
	parts := make([]string, 0, len(bs))
	for _, b := range bs {
		parts = append(parts, theme.Badge(b.Label, b.Token))
	}
	return strings.Join(parts, " ")
}

// Stats renders a stat row, e.g. "Duration 4 hours · Students 1,250".
func Stats(stats []render.Stat) string {
	parts := make([]string, 0, len(stats))
	for _, s := range stats {
		parts = append(parts, theme.Subtitle.Render(s.Label+" ")+theme.Body.Render(s.Value))
	}
	return strings.Join(parts, theme.Subtitle.Render(" · "))
}

// Card renders one display card. Compact cards drop the description and tags.
func Card(c render.Card, width int, focused, compact bool) string {
	inner := max(width-4, 10) // border + padding

	var lines []string
	title := theme.Title.Render(c.Title)
	if len(c.Badges) > 0 {
		title += "  " + Badges(c.Badges)
	}
	lines = append(lines, title)

	if c.Subtitle != "" {
		lines = append(lines, theme.Subtitle.Render(c.Subtitle))
	}
	if !compact && c.Description != "" {
		lines = append(lines, theme.Body.Width(inner).Render(c.Description))
	}
	if !compact && len(c.Tags) > 0 {
		tags := theme.Subtitle.Render(c.TagsHeading+": ") + theme.Body.Render(strings.Join(c.Tags, ", "))
		lines = append(lines, lipgloss.NewStyle().Width(inner).Render(tags))
	}
	if len(c.Stats) > 0 {
		lines = append(lines, Stats(c.Stats))
	}
	if c.Progress != nil {
		lines = append(lines, NewProgressBar("Progress", c.Progress.Percent, true, inner).View())
	}
	if c.BestScore != nil {
		score := lipgloss.NewStyle().Foreground(theme.TokenColor(c.BestScore.Token)).Bold(true).Render(c.BestScore.Text)
		lines = append(lines, theme.Subtitle.Render("Best Score ")+score+
			theme.Subtitle.Render(fmt.Sprintf(" · %d attempts", c.BestScore.Attempts)))
	}
	if c.Action.Label != "" {
		lines = append(lines, ActionButton(c.Action, focused))
	}

	box := theme.Card
	if focused {
		box = theme.SelectedCard
	}
	return box.Width(width).Render(strings.Join(lines, "\n"))
}
