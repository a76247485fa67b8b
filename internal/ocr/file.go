package ocr

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"os"
)

// FileEngine serves a pre-computed recognition result from a JSON
// sidecar file. Used when OCR ran elsewhere (a hosted engine, a batch
// job) and for deterministic tests.
type FileEngine struct {
	Path string
}

// NewFileEngine creates an engine reading the given JSON result file.
func NewFileEngine(path string) *FileEngine {
	return &FileEngine{Path: path}
}

// Recognize ignores the image and returns the stored result.
func (e *FileEngine) Recognize(ctx context.Context, _ image.Image) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(e.Path)
	if err != nil {
		return nil, fmt.Errorf("read ocr result: %w", err)
	}
	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("parse ocr result %s: %w", e.Path, err)
	}
	return &res, nil
}

// StaticEngine returns a fixed in-memory result; test helper for
// packages that need an Engine without fixtures.
type StaticEngine struct {
	Result *Result
	Err    error
}

// Recognize returns the stored result or error.
func (e *StaticEngine) Recognize(ctx context.Context, _ image.Image) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return e.Result, e.Err
}
