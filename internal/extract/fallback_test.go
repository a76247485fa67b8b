package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateaulabs/menuscan/internal/menu"
)

func TestExtractFallback(t *testing.T) {
	items := ExtractFallback("Fresh Lime Soda 60", "$")
	require.Len(t, items, 1)
	assert.Equal(t, "Fresh Lime Soda", items[0].Name)
	assert.InDelta(t, 60.0, items[0].Price, 0.001)
	assert.Equal(t, ConfidenceFallback, items[0].Confidence)
	assert.Equal(t, menu.SourceFallback, items[0].Source)
}

func TestExtractFallbackCapsWindowWords(t *testing.T) {
	items := ExtractFallback("one two three very long preamble before Fresh Lime Soda 60", "$")
	require.NotEmpty(t, items)
	// At most five trailing words survive the window.
	assert.LessOrEqual(t, len([]rune(items[0].Name)), 60)
}

func TestExtractFallbackNoPrice(t *testing.T) {
	assert.Empty(t, ExtractFallback("a menu with no numbers anywhere", "$"))
}
