package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/ifrshub/internal/style"
)

func TestTokenColor_Total(t *testing.T) {
	for _, tok := range style.AllTokens() {
		assert.NotNil(t, TokenColor(tok), "token %s", tok)
	}
	assert.Equal(t, TextDim, TokenColor(style.Neutral))
	assert.Equal(t, TextDim, TokenColor(style.Token("glitter")))
}

func TestTokenColor_Distinct(t *testing.T) {
	assert.NotEqual(t, TokenColor(style.Positive), TokenColor(style.Severe))
	assert.NotEqual(t, TokenColor(style.Info), TokenColor(style.Caution))
}

func TestBadge_ContainsLabel(t *testing.T) {
	assert.Contains(t, Badge("Advanced", style.Severe), "Advanced")
}
