package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateaulabs/menuscan/internal/menu"
)

func TestExtractInlineRenderings(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		item  string
		price float64
	}{
		{"name then price", "Chicken Biryani 250", "Chicken Biryani", 250},
		{"price then name", "250 Chicken Biryani", "Chicken Biryani", 250},
		{"colon separator", "Chicken Biryani: 250", "Chicken Biryani", 250},
		{"pipe separator", "Chicken Biryani | 250", "Chicken Biryani", 250},
		{"dash separator", "Samosa - 30", "Samosa", 30},
		{"dot leaders", "Chicken Biryani .......... 250", "Chicken Biryani", 250},
		{"wide columns", "Chicken Biryani      250", "Chicken Biryani", 250},
		{"decimal price", "Margherita Pizza $12.50", "Margherita Pizza", 12.50},
		{"comma decimal", "Espresso 2,50", "Espresso", 2.50},
		{"trailing name digit kept", "Naan 2 45", "Naan 2", 45},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			items := ExtractInline(c.line, "$")
			require.NotEmpty(t, items, "line %q", c.line)
			assert.Equal(t, c.item, items[0].Name)
			assert.InDelta(t, c.price, items[0].Price, 0.001)
			assert.Equal(t, ConfidenceInline, items[0].Confidence)
			assert.Equal(t, menu.SourceInline, items[0].Source)
		})
	}
}

func TestExtractInlineCurrency(t *testing.T) {
	items := ExtractInline("Biryani ₹250", "$")
	require.Len(t, items, 1)
	assert.Equal(t, "₹", items[0].Currency)

	items = ExtractInline("Biryani Rs. 250", "$")
	require.NotEmpty(t, items)
	assert.Equal(t, "Rs", items[0].Currency)

	// No marker on the line; the document default applies.
	items = ExtractInline("Biryani 250", "₹")
	require.NotEmpty(t, items)
	assert.Equal(t, "₹", items[0].Currency)
}

func TestExtractInlineRejectsNonNames(t *testing.T) {
	assert.Empty(t, ExtractInline("12345 678", "$"))
	assert.Empty(t, ExtractInline("--- 250", "$"))
	assert.Empty(t, ExtractInline("no price here at all", "$"))
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		tok  string
		want float64
		ok   bool
	}{
		{"250", 250, true},
		{"12.50", 12.50, true},
		{"2,50", 2.50, true},
		{"1,250.75", 1250.75, true},
		{"", 0, false},
		{"abc", 0, false},
	}
	for _, c := range cases {
		got, ok := ParsePrice(c.tok)
		assert.Equal(t, c.ok, ok, "token %q", c.tok)
		if c.ok {
			assert.InDelta(t, c.want, got, 0.001, "token %q", c.tok)
		}
	}
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("a\r\n\n  b  \nc\n")
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}
