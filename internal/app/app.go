package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/ifrshub/internal/catalog"
	"github.com/abhisek/ifrshub/internal/render"
	"github.com/abhisek/ifrshub/internal/router"
	"github.com/abhisek/ifrshub/internal/screen"
	"github.com/abhisek/ifrshub/internal/screens/home"
	"github.com/abhisek/ifrshub/internal/ui/keys"
	"github.com/abhisek/ifrshub/internal/ui/layout"
)

// Options holds what the terminal UI renders from.
type Options struct {
	Library  *catalog.Library
	Renderer *render.Renderer
	Logger   *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	logger *zap.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel with the dashboard as root screen.
func newAppModel(opts Options) AppModel {
	if opts.Library == nil {
		opts.Library = catalog.Default()
	}
	if opts.Renderer == nil {
		opts.Renderer = render.New(nil)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	deps := screen.Deps{Library: opts.Library, Renderer: opts.Renderer}
	return AppModel{
		router: router.New(home.New(deps), Resolve(deps)),
		logger: opts.Logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.NavigateMsg:
		m.logger.Debug("navigate", zap.String("from", m.router.Href()), zap.String("to", msg.Href))
	}

	switch {
	case keys.Matches(msg, keys.Default.Quit):
		return m, tea.Quit
	case keys.Matches(msg, keys.Default.Back):
		if m.router.Depth() > 1 {
			return m, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return m, nil
	case keys.Matches(msg, keys.Default.Home):
		return m, popToRoot
	case keys.Matches(msg, keys.Default.Standard):
		return m, tea.Sequence(popToRoot, router.Navigate(render.PathStandards))
	case keys.Matches(msg, keys.Default.Examples):
		return m, tea.Sequence(popToRoot, router.Navigate(render.PathExamples))
	case keys.Matches(msg, keys.Default.Tests):
		return m, tea.Sequence(popToRoot, router.Navigate(render.PathTests))
	case keys.Matches(msg, keys.Default.Progress):
		return m, tea.Sequence(popToRoot, router.Navigate(render.PathProgress))
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func popToRoot() tea.Msg { return router.PopToRootMsg{} }

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame: header, active screen and key hints.
func (m AppModel) render() string {
	active := m.router.Active()
	f := layout.Frame{Href: m.router.Href(), Body: m.router.View}
	if active != nil {
		f.Title = active.Title()
	}

	switch p, ok := active.(screen.KeyHintProvider); {
	case ok:
		f.Hints = p.KeyHints()
	case m.router.Depth() > 1:
		f.Hints = keys.Hints(keys.Default.Back, keys.Default.Quit)
	default:
		f.Hints = keys.Hints(keys.Default.Up, keys.Default.Down, keys.Default.Select, keys.Default.Quit)
	}

	return f.Render(m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal UI: %w", err)
	}
	return nil
}
