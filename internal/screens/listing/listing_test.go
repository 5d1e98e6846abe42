package listing

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ifrshub/internal/catalog"
	"github.com/abhisek/ifrshub/internal/render"
	"github.com/abhisek/ifrshub/internal/router"
	"github.com/abhisek/ifrshub/internal/screen"
)

func testDeps() screen.Deps {
	return screen.Deps{Library: catalog.Default(), Renderer: render.New(nil)}
}

func TestStandards_EnterNavigatesToFocusedCard(t *testing.T) {
	s := Standards(testDeps())
	assert.Equal(t, "Standards", s.Title())

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, router.NavigateMsg{Href: "/standards/ifrs-16"}, cmd())
}

func TestExamples_View(t *testing.T) {
	s := Examples(testDeps())
	out := s.View(120, 40)
	assert.Contains(t, out, "Practice Examples")
	assert.Contains(t, out, "Software License Revenue Recognition")

	c, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "software-revenue", c.ID)
}

func TestListing_EmptyPage(t *testing.T) {
	s := New("Empty", render.Page{Title: "Nothing"})
	assert.Contains(t, s.View(80, 20), "Nothing here yet.")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestListing_NoHrefIsInert(t *testing.T) {
	s := New("X", render.Page{Cards: []render.Card{{ID: "x", Title: "X", Action: render.Action{Label: "Soon"}}}})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
}
