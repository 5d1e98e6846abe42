package detail

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

func TestNew_Unknown(t *testing.T) {
	_, ok := New(testDeps(), "ifrs-99")
	assert.False(t, ok)
}

func TestView_Sections(t *testing.T) {
	s, ok := New(testDeps(), "ifrs-15")
	require.True(t, ok)

	out := s.View(120, 80)
	for _, want := range []string{
		"Last updated: December 2024",
		"Course Modules",
		"Transaction Price Determination",
		"Locked",
		"Practice Examples",
		"Construction Contract Accounting",
		"Resources",
		"Practice Quiz",
	} {
		assert.Contains(t, out, want)
	}
}

func TestMenu_SkipsLockedModules(t *testing.T) {
	s, ok := New(testDeps(), "ifrs-15")
	require.True(t, ok)

	// Modules 1-4 are reachable, 5-8 are locked, so four downs land on
	// the first practice example.
	for i := 0; i < 4; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, s.practiceAt, s.menu.Selected)
}

func TestEnter_ResourceWithLink(t *testing.T) {
	s, ok := New(testDeps(), "ifrs-15")
	require.True(t, ok)

	s.menu.Selected = len(s.menu.Items) - 1
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, router.NavigateMsg{Href: "/tests/ifrs-15-basic"}, cmd())
}

func TestEnter_ModuleWithoutLinkIsInert(t *testing.T) {
	s, ok := New(testDeps(), "ifrs-15")
	require.True(t, ok)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestView_NoCourse(t *testing.T) {
	s, ok := New(testDeps(), "ifrs-3")
	require.True(t, ok)
	assert.Contains(t, s.View(100, 40), "coming soon")
}

func TestView_ScrollsToSelection(t *testing.T) {
	s, ok := New(testDeps(), "ifrs-15")
	require.True(t, ok)

	s.menu.Selected = len(s.menu.Items) - 1
	out := s.View(100, 12)
	assert.Contains(t, out, "Practice Quiz")
	assert.NotContains(t, out, "Course Modules")
}
