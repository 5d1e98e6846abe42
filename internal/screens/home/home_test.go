package home

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

func newHome() *HomeScreen {
	return New(screen.Deps{Library: catalog.Default(), Renderer: render.New(nil)})
}

func TestView_Full(t *testing.T) {
	out := newHome().View(140, 50)
	for _, want := range []string{
		"Welcome back, Student!",
		"Standards Studied",
		"Continue Learning",
		"IFRS 15: Revenue from Contracts with Customers",
		"Upcoming Tests",
		"Lease Accounting Assessment",
		"Quick Actions",
		"Browse Standards",
	} {
		assert.Contains(t, out, want)
	}
}

func TestView_CompactDropsIntro(t *testing.T) {
	out := newHome().View(85, 30)
	assert.NotContains(t, out, "Continue your IFRS learning journey")
	assert.Contains(t, out, "Continue Learning")
}

func TestMenu_Sections(t *testing.T) {
	h := newHome()
	assert.Equal(t, 3, h.upcomingAt)
	assert.Equal(t, 5, h.quickAt)
	assert.Len(t, h.menu.Items, 8)
}

func TestEnter_ContinueFirstStandard(t *testing.T) {
	h := newHome()
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, router.NavigateMsg{Href: "/standards/ifrs-15"}, cmd())
}

func TestEnter_QuickAction(t *testing.T) {
	h := newHome()
	h.menu.Selected = h.quickAt + 2
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, router.NavigateMsg{Href: "/tests"}, cmd())
}
