package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ifrshub/internal/catalog"
	"github.com/abhisek/ifrshub/internal/render"
	"github.com/abhisek/ifrshub/internal/router"
	"github.com/abhisek/ifrshub/internal/screen"
	"github.com/abhisek/ifrshub/internal/screens/detail"
	"github.com/abhisek/ifrshub/internal/screens/home"
	"github.com/abhisek/ifrshub/internal/screens/listing"
	"github.com/abhisek/ifrshub/internal/screens/placeholder"
	"github.com/abhisek/ifrshub/internal/screens/tests"
)

func testDeps() screen.Deps {
	return screen.Deps{Library: catalog.Default(), Renderer: render.New(nil)}
}

func TestResolve(t *testing.T) {
	resolve := Resolve(testDeps())

	assert.IsType(t, &home.HomeScreen{}, resolve("/"))
	assert.IsType(t, &listing.ListingScreen{}, resolve("/standards"))
	assert.IsType(t, &listing.ListingScreen{}, resolve("/examples"))
	assert.IsType(t, &tests.TestsScreen{}, resolve("/tests"))
	assert.IsType(t, &detail.DetailScreen{}, resolve("/standards/ifrs-15"))
	assert.IsType(t, &detail.DetailScreen{}, resolve("/standards/ias-1"))
}

func TestResolve_Placeholders(t *testing.T) {
	resolve := Resolve(testDeps())

	hrefs := []string{
		"/progress",
		"/tests/ifrs-15-basic",
		"/examples/lease-accounting",
		"/standards/ifrs-17",
		"/examples/unknown",
		"/nowhere",
	}
	for _, href := range hrefs {
		t.Run(href, func(t *testing.T) {
			s := resolve(href)
			p, ok := s.(*placeholder.PlaceholderScreen)
			require.True(t, ok, "expected placeholder, got %T", s)
			assert.Equal(t, href, p.Href())
		})
	}
}

func TestResolve_PlaceholderUsesItemTitle(t *testing.T) {
	s := Resolve(testDeps())("/tests/ifrs-15-basic")
	it, ok := catalog.Default().Tests().Get("ifrs-15-basic")
	require.True(t, ok)
	assert.Equal(t, it.Title, s.Title())
}

func TestAppModel_NavigateAndBack(t *testing.T) {
	m := newAppModel(Options{})
	assert.Equal(t, "/", m.router.Href())

	updated, _ := m.Update(router.NavigateMsg{Href: "/standards/ifrs-16"})
	m = updated.(AppModel)
	assert.Equal(t, 2, m.router.Depth())
	assert.Equal(t, "/standards/ifrs-16", m.router.Href())

	updated, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = updated.(AppModel)
	require.NotNil(t, cmd)
	updated, _ = m.Update(cmd())
	m = updated.(AppModel)
	assert.Equal(t, 1, m.router.Depth())
}

func TestAppModel_EscAtRootIsNoop(t *testing.T) {
	m := newAppModel(Options{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
}

func TestAppModel_HomeKeyPopsToRoot(t *testing.T) {
	m := newAppModel(Options{})
	updated, _ := m.Update(router.NavigateMsg{Href: "/examples"})
	m = updated.(AppModel)
	require.Equal(t, 2, m.router.Depth())

	_, cmd := m.Update(tea.KeyPressMsg{Code: '0', Text: "0"})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopToRootMsg{}, cmd())
}

func TestAppModel_QuitKey(t *testing.T) {
	m := newAppModel(Options{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestAppModel_View(t *testing.T) {
	m := newAppModel(Options{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(AppModel)

	assert.True(t, m.View().AltScreen)
	out := m.render()
	assert.Contains(t, out, "IFRS Learning Hub")
	assert.Contains(t, out, "Welcome back, Student!")
}
