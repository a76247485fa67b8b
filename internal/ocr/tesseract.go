package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os/exec"
	"strconv"
	"strings"

	"github.com/plateaulabs/menuscan/internal/utils"
)

// TesseractEngine shells out to the tesseract binary and parses its
// TSV output into words with bounding boxes. The binary is an
// external dependency of the deployment, not of this module.
type TesseractEngine struct {
	Binary   string // defaults to "tesseract"
	Language string // defaults to "eng"
}

// NewTesseractEngine creates an engine with defaults filled in.
func NewTesseractEngine(binary, language string) *TesseractEngine {
	if binary == "" {
		binary = "tesseract"
	}
	if language == "" {
		language = "eng"
	}
	return &TesseractEngine{Binary: binary, Language: language}
}

// Recognize runs tesseract over stdin/stdout in TSV mode.
func (e *TesseractEngine) Recognize(ctx context.Context, img image.Image) (*Result, error) {
	var in bytes.Buffer
	if err := png.Encode(&in, img); err != nil {
		return nil, fmt.Errorf("encode image for ocr: %w", err)
	}

	cmd := exec.CommandContext(ctx, e.Binary, "stdin", "stdout", "-l", e.Language, "--psm", "6", "tsv")
	cmd.Stdin = &in
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("tesseract: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return parseTSV(out.String())
}

// TSV column layout produced by tesseract 4/5.
const (
	tsvColLevel = 0
	tsvColLine  = 4
	tsvColLeft  = 6
	tsvColTop   = 7
	tsvColWidth = 8
	tsvColHght  = 9
	tsvColConf  = 10
	tsvColText  = 11
	tsvNumCols  = 12

	tsvLevelWord = 5
)

// parseTSV converts tesseract TSV output into a Result. Word rows
// (level 5) carry text and geometry; lines are reassembled from the
// line-number column so the downstream strategies see one menu entry
// per text line.
func parseTSV(tsv string) (*Result, error) {
	res := &Result{}
	var (
		textLines []string
		current   strings.Builder
		lastLine  string
		confSum   float64
		confN     int
	)
	flush := func() {
		if current.Len() > 0 {
			textLines = append(textLines, current.String())
			current.Reset()
		}
	}

	for i, row := range strings.Split(tsv, "\n") {
		if i == 0 || strings.TrimSpace(row) == "" {
			continue // header or trailing blank
		}
		cols := strings.Split(row, "\t")
		if len(cols) < tsvNumCols {
			continue
		}
		level, err := strconv.Atoi(cols[tsvColLevel])
		if err != nil || level != tsvLevelWord {
			continue
		}
		text := strings.TrimSpace(cols[tsvColText])
		if text == "" {
			continue
		}
		left, _ := strconv.ParseFloat(cols[tsvColLeft], 64)
		top, _ := strconv.ParseFloat(cols[tsvColTop], 64)
		width, _ := strconv.ParseFloat(cols[tsvColWidth], 64)
		height, _ := strconv.ParseFloat(cols[tsvColHght], 64)
		conf, _ := strconv.ParseFloat(cols[tsvColConf], 64)

		res.Words = append(res.Words, Word{
			Text:       text,
			Box:        utils.NewBox(left, top, left+width, top+height),
			Confidence: conf / 100.0,
		})
		if conf >= 0 {
			confSum += conf
			confN++
		}

		// page/block/paragraph/line columns together identify a line
		lineKey := strings.Join(cols[1:tsvColLine+1], "/")
		if lineKey != lastLine {
			flush()
			lastLine = lineKey
		} else if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(text)
	}
	flush()

	res.Text = strings.Join(textLines, "\n")
	if confN > 0 {
		res.Confidence = confSum / float64(confN) / 100.0
	}
	return res, nil
}
