package pipeline

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateaulabs/menuscan/internal/decode"
	"github.com/plateaulabs/menuscan/internal/menu"
)

func sampleResult() *Result {
	return &Result{
		ID:   uuid.New(),
		Kind: decode.KindPDF,
		Items: []menu.Item{
			{ID: 1, Name: "Chicken Biryani", Price: 250, Currency: "₹", Category: "Rice", Confidence: 85, Source: menu.SourceInline, RegionIndex: -1},
			{ID: 2, Name: "Butter Naan", Price: 45, Currency: "₹", Category: "Breads", Confidence: 85, Source: menu.SourceInline, NeedsReview: true, RegionIndex: -1},
		},
		Currency:          "₹",
		OverallConfidence: 85,
	}
}

func TestToJSON(t *testing.T) {
	out, err := ToJSON(sampleResult())
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "pdf", doc["kind"])
	assert.Len(t, doc["items"], 2)
	// Pixel data never leaks into the export.
	assert.NotContains(t, out, "\"Image\"")
}

func TestToCSV(t *testing.T) {
	out, err := ToCSV(sampleResult())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,name,price,currency,category,confidence,source,needs_review", lines[0])
	assert.Equal(t, "1,Chicken Biryani,250.00,₹,Rice,85,inline,false", lines[1])
	assert.Equal(t, "2,Butter Naan,45.00,₹,Breads,85,inline,true", lines[2])
}

func TestToText(t *testing.T) {
	out, err := ToText(sampleResult())
	require.NoError(t, err)
	assert.Contains(t, out, "Chicken Biryani")
	assert.Contains(t, out, "(review)")
	assert.Contains(t, out, "2 item(s), overall confidence 85")

	empty, err := ToText(&Result{})
	require.NoError(t, err)
	assert.Equal(t, "no items found", empty)
}

func TestToYAML(t *testing.T) {
	out, err := ToYAML(sampleResult())
	require.NoError(t, err)
	assert.Contains(t, out, "kind: pdf")
	assert.Contains(t, out, "name: Chicken Biryani")
}

func TestExportersRejectNil(t *testing.T) {
	for _, f := range []func(*Result) (string, error){ToJSON, ToCSV, ToText, ToYAML} {
		_, err := f(nil)
		assert.Error(t, err)
	}
}
