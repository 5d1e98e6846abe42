package placeholder

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestPlaceholder(t *testing.T) {
	p := New("Progress", "/progress")
	assert.Equal(t, "Progress", p.Title())
	assert.Equal(t, "/progress", p.Href())

	out := p.View(80, 20)
	assert.Contains(t, out, "Coming Soon")
	assert.Contains(t, out, "/progress")

	s, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Same(t, p, s)
	assert.Nil(t, cmd)
}
