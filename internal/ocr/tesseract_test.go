package ocr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tsvHeader = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext"

func tsvRow(level int, page, block, par, line, word, left, top, width, height, conf, text string) string {
	return strings.Join([]string{
		map[int]string{1: "1", 2: "2", 3: "3", 4: "4", 5: "5"}[level],
		page, block, par, line, word, left, top, width, height, conf, text,
	}, "\t")
}

func TestParseTSVWordsAndLines(t *testing.T) {
	tsv := strings.Join([]string{
		tsvHeader,
		tsvRow(1, "1", "0", "0", "0", "0", "0", "0", "600", "800", "-1", ""),
		tsvRow(5, "1", "1", "1", "1", "1", "40", "100", "90", "20", "96", "Chicken"),
		tsvRow(5, "1", "1", "1", "1", "2", "140", "100", "80", "20", "94", "Biryani"),
		tsvRow(5, "1", "1", "1", "1", "3", "240", "100", "40", "20", "92", "250"),
		tsvRow(5, "1", "1", "1", "2", "1", "40", "140", "50", "20", "90", "Naan"),
		tsvRow(5, "1", "1", "1", "2", "2", "110", "140", "30", "20", "88", "45"),
	}, "\n")

	res, err := parseTSV(tsv)
	require.NoError(t, err)

	assert.Equal(t, "Chicken Biryani 250\nNaan 45", res.Text)
	require.Len(t, res.Words, 5)

	w := res.Words[0]
	assert.Equal(t, "Chicken", w.Text)
	assert.InDelta(t, 40.0, w.Box.MinX, 0.001)
	assert.InDelta(t, 130.0, w.Box.MaxX, 0.001)
	assert.InDelta(t, 0.96, w.Confidence, 0.001)

	assert.InDelta(t, 0.92, res.Confidence, 0.001)
}

func TestParseTSVLineNumResetsAcrossBlocks(t *testing.T) {
	// line_num restarts at 1 in every block; the block column must
	// keep the lines apart.
	tsv := strings.Join([]string{
		tsvHeader,
		tsvRow(5, "1", "1", "1", "1", "1", "0", "0", "10", "10", "90", "Samosa"),
		tsvRow(5, "1", "2", "1", "1", "1", "0", "50", "10", "10", "90", "Chai"),
	}, "\n")

	res, err := parseTSV(tsv)
	require.NoError(t, err)
	assert.Equal(t, "Samosa\nChai", res.Text)
}

func TestParseTSVSkipsMalformedRows(t *testing.T) {
	tsv := strings.Join([]string{
		tsvHeader,
		"short\trow",
		tsvRow(5, "1", "1", "1", "1", "1", "0", "0", "10", "10", "90", "Chai"),
		tsvRow(5, "1", "1", "1", "1", "2", "0", "0", "10", "10", "-1", ""),
	}, "\n")

	res, err := parseTSV(tsv)
	require.NoError(t, err)
	assert.Equal(t, "Chai", res.Text)
	assert.Len(t, res.Words, 1)
}

func TestNewTesseractEngineDefaults(t *testing.T) {
	e := NewTesseractEngine("", "")
	assert.Equal(t, "tesseract", e.Binary)
	assert.Equal(t, "eng", e.Language)
}
