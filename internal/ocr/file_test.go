package ocr

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateaulabs/menuscan/internal/utils"
)

func TestFileEngineRoundTrip(t *testing.T) {
	res := Result{
		Text:       "Chicken Biryani 250",
		Confidence: 0.95,
		Words: []Word{
			{Text: "Chicken", Box: utils.NewBox(40, 100, 130, 120), Confidence: 0.96},
		},
	}
	data, err := json.Marshal(res)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "menu.ocr.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	got, err := NewFileEngine(path).Recognize(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, res.Text, got.Text)
	require.Len(t, got.Words, 1)
	assert.Equal(t, "Chicken", got.Words[0].Text)
}

func TestFileEngineMissingFile(t *testing.T) {
	_, err := NewFileEngine("/nonexistent/ocr.json").Recognize(context.Background(), nil)
	assert.Error(t, err)
}

func TestStaticEngine(t *testing.T) {
	want := &Result{Text: "Chai 15"}
	got, err := (&StaticEngine{Result: want}).Recognize(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStaticEngineHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := (&StaticEngine{Result: &Result{}}).Recognize(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
