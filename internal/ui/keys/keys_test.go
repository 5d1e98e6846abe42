package keys

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	assert.True(t, Matches(tea.KeyPressMsg{Code: tea.KeyEnter}, Default.Select))
	assert.True(t, Matches(tea.KeyPressMsg{Code: tea.KeyUp}, Default.Up))
	assert.True(t, Matches(tea.KeyPressMsg{Code: 'j', Text: "j"}, Default.Down))
	assert.True(t, Matches(tea.KeyPressMsg{Code: '3', Text: "3"}, Default.Tests))
	assert.False(t, Matches(tea.KeyPressMsg{Code: tea.KeyEnter}, Default.Back))
	assert.False(t, Matches(tea.WindowSizeMsg{}, Default.Select))
}

func TestHints(t *testing.T) {
	hints := Hints(Default.Select, Default.Back)
	assert.Len(t, hints, 2)
	assert.Equal(t, "Enter", hints[0].Key)
	assert.Equal(t, "back", hints[1].Description)
}
