// Package layout draws the chrome around every screen: a title bar with the
// current href and a key hint bar.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ifrshub/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3 // bordered title bar
	FooterHeight = 2 // rule + hints

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

const appName = "IFRS Learning Hub"

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight returns true if the terminal height is in compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// Frame is one full-screen render: title bar, body and hint bar. Body is
// called with the space left between the bars.
type Frame struct {
	Title string
	Href  string
	Hints []KeyHint
	Body  func(width, height int) string
}

// Render draws the frame at exactly width x height. Terminals below the
// minimum size get a resize notice instead.
func (f Frame) Render(width, height int) string {
	if IsTooSmall(width, height) {
		return renderMinSize(width, height)
	}

	header := RenderHeader(f.Title, f.Href, width)
	footer := RenderFooter(f.Hints, width)
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	body := ""
	if f.Body != nil {
		body = f.Body(width, bodyHeight)
	}
	body = lipgloss.NewStyle().Width(width).Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func renderMinSize(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"%s needs at least %d x %d.\n\nThis terminal is %d x %d.",
			appName, MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the title bar: "IFRS Learning Hub › title" on the
// left and the active href on the right.
func RenderHeader(title, href string, width int) string {
	crumb := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("◆ " + appName)
	if title != "" {
		crumb += lipgloss.NewStyle().Foreground(theme.TextDim).Render(" › ") +
			lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	}
	path := lipgloss.NewStyle().Foreground(theme.TextDim).Render(href)

	inner := max(width-4, 0) // border + padding
	gap := max(inner-lipgloss.Width(crumb)-lipgloss.Width(path), 1)

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(crumb + strings.Repeat(" ", gap) + path)
}

// RenderFooter renders a rule followed by the key hints. A "quit" hint is
// pinned to the right edge.
func RenderFooter(hints []KeyHint, width int) string {
	var left, right []string
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(h.Key) +
			" " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		if h.Description == "quit" {
			right = append(right, part)
			continue
		}
		left = append(left, part)
	}

	sep := lipgloss.NewStyle().Foreground(theme.Border).Render(" • ")
	l := " " + strings.Join(left, sep)
	r := strings.Join(right, sep) + " "
	gap := max(width-lipgloss.Width(l)-lipgloss.Width(r), 1)

	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width, 0)))
	return rule + "\n" + lipgloss.NewStyle().MaxWidth(width).Render(l+strings.Repeat(" ", gap)+r)
}
