package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateaulabs/menuscan/internal/menu"
)

func TestExtractMultiLine(t *testing.T) {
	text := "Paneer Butter Masala\n₹ 180\n"
	items := ExtractMultiLine(text, "$")
	require.Len(t, items, 1)
	assert.Equal(t, "Paneer Butter Masala", items[0].Name)
	assert.InDelta(t, 180.0, items[0].Price, 0.001)
	assert.Equal(t, "₹", items[0].Currency)
	assert.Equal(t, ConfidenceMultiLine, items[0].Confidence)
	assert.Equal(t, menu.SourceMultiLine, items[0].Source)
}

func TestExtractMultiLineConsumesPriceLine(t *testing.T) {
	text := "Samosa Chat\n30\nMasala Chai\n15\n"
	items := ExtractMultiLine(text, "$")
	require.Len(t, items, 2)
	assert.Equal(t, "Samosa Chat", items[0].Name)
	assert.Equal(t, "Masala Chai", items[1].Name)

	// A consumed price line never doubles as a name line.
	for _, it := range items {
		assert.NotEqual(t, "30", it.Name)
	}
}

func TestExtractMultiLineSkipsPricedNameLines(t *testing.T) {
	// First line already carries a digit; the inline strategy owns it.
	text := "Naan 2\n45\n"
	assert.Empty(t, ExtractMultiLine(text, "$"))
}

func TestExtractMultiLineRequiresPlausibleName(t *testing.T) {
	text := "!!!\n30\n"
	assert.Empty(t, ExtractMultiLine(text, "$"))
}
