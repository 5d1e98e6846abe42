// Package listing is the card list view shared by the standards and
// examples pages.
package listing

import (
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

// ListingScreen shows one rendered page as a scrolling list of cards.
type ListingScreen struct {
	title string
	page  render.Page
	list  components.CardList
}

var _ screen.Screen = (*ListingScreen)(nil)

// New creates a ListingScreen for page. Title is the short header name.
func New(title string, page render.Page) *ListingScreen {
	return &ListingScreen{
		title: title,
		page:  page,
		list:  components.NewCardList(page.Cards),
	}
}

// Standards builds the standards library view.
func Standards(deps screen.Deps) *ListingScreen {
	return New("Standards", deps.Renderer.Standards(deps.Library.Standards().List()))
}

// Examples builds the practice examples view.
func Examples(deps screen.Deps) *ListingScreen {
	return New("Examples", deps.Renderer.Examples(deps.Library.Examples().List()))
}

func (s *ListingScreen) Init() tea.Cmd {
	return nil
}

func (s *ListingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if keys.Matches(msg, keys.Default.Select) {
		if c, ok := s.list.Selected(); ok && c.Action.Href != "" && !c.Action.Disabled {
			return s, router.Navigate(c.Action.Href)
		}
		return s, nil
	}
	s.list = s.list.Update(msg)
	return s, nil
}

func (s *ListingScreen) View(width, height int) string {
	head := theme.Title.Render(s.page.Title) + "\n" +
		theme.Subtitle.Width(width).Render(s.page.Subtitle)
	if len(s.page.Cards) == 0 {
		return head + "\n\n" + theme.Hint.Render("Nothing here yet.")
	}
	body := s.list.View(width, height-lipgloss.Height(head)-1, layout.IsCompactWidth(width))
	return head + "\n" + body
}

func (s *ListingScreen) Title() string {
	return s.title
}

// Selected returns the focused card.
func (s *ListingScreen) Selected() (render.Card, bool) {
	return s.list.Selected()
}

// KeyHints returns the key binding hints for the footer.
func (s *ListingScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Default.Up, keys.Default.Down, keys.Default.Select, keys.Default.Back)
}
