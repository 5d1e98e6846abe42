package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ifrshub/internal/style"
)

// Color palette, calm blues on a dark slate background
var (
	Primary   = lipgloss.Color("#3B82F6") // Blue
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Purple    = lipgloss.Color("#A855F7") // Purple
	Indigo    = lipgloss.Color("#6366F1") // Indigo
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	SelectedCard = Card.
			BorderForeground(Primary)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(Border)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 1)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Padding(0, 1)
)

var tokenColors = map[style.Token]color.Color{
	style.Positive: Success,
	style.Caution:  Accent,
	style.Severe:   Error,
	style.Info:     Primary,
	style.Featured: Purple,
	style.Deep:     Indigo,
}

// TokenColor maps a presentation token to a terminal color. Neutral and
// unknown tokens get the dim text color.
func TokenColor(t style.Token) color.Color {
	if c, ok := tokenColors[t]; ok {
		return c
	}
	return TextDim
}

// Badge renders a label in its token's color.
func Badge(label string, t style.Token) string {
	return lipgloss.NewStyle().
		Foreground(BgDark).
		Background(TokenColor(t)).
		Padding(0, 1).
		Render(label)
}
