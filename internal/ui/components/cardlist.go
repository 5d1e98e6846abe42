package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ifrshub/internal/render"
	"github.com/abhisek/ifrshub/internal/ui/keys"
)

// CardList is a vertically scrolling list of cards with one focused card.
type CardList struct {
	Cards  []render.Card
	Cursor int
	offset int
}

// NewCardList creates a list focused on the first card.
func NewCardList(cards []render.Card) CardList {
	return CardList{Cards: cards}
}

// Update moves the focus.
func (l CardList) Update(msg tea.Msg) CardList {
	switch {
	case keys.Matches(msg, keys.Default.Up):
		if l.Cursor > 0 {
			l.Cursor--
		}
	case keys.Matches(msg, keys.Default.Down):
		if l.Cursor < len(l.Cards)-1 {
			l.Cursor++
		}
	}
	return l
}

// Selected returns the focused card.
func (l CardList) Selected() (render.Card, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Cards) {
		return render.Card{}, false
	}
	return l.Cards[l.Cursor], true
}

// View renders as many cards as fit in height, scrolled so the focused
// card is visible.
func (l *CardList) View(width, height int, compact bool) string {
	if len(l.Cards) == 0 {
		return ""
	}

	rendered := make([]string, len(l.Cards))
	heights := make([]int, len(l.Cards))
	for i, c := range l.Cards {
		rendered[i] = Card(c, width, i == l.Cursor, compact)
		heights[i] = lipgloss.Height(rendered[i])
	}

	l.offset = min(l.offset, l.Cursor)
	for l.offset < l.Cursor && span(heights, l.offset, l.Cursor) > height {
		l.offset++
	}

	var out []string
	used := 0
	for i := l.offset; i < len(rendered); i++ {
		if used+heights[i] > height && len(out) > 0 {
			break
		}
		out = append(out, rendered[i])
		used += heights[i]
	}
	return strings.Join(out, "\n")
}

// span is the total height of cards from..to inclusive.
func span(heights []int, from, to int) int {
	total := 0
	for i := from; i <= to; i++ {
		total += heights[i]
	}
	return total
}
