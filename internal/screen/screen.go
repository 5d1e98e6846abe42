// Package screen defines the contract between the router and the views.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ifrshub/internal/catalog"
	"github.com/abhisek/ifrshub/internal/render"
	"github.com/abhisek/ifrshub/internal/ui/layout"
)

// Screen is one view on the router stack.
type Screen interface {
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Deps is what every content screen renders from.
type Deps struct {
	Library  *catalog.Library
	Renderer *render.Renderer
}
