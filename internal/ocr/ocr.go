// Package ocr defines the contract with the external OCR engine. The
// extraction core consumes recognized text plus word bounding boxes
// and never performs character recognition itself.
package ocr

import (
	"context"
	"image"

	"github.com/plateaulabs/menuscan/internal/utils"
)

// Word is a single recognized token with its page position.
type Word struct {
	Text       string    `json:"text"`
	Box        utils.Box `json:"box"`
	Confidence float64   `json:"confidence"`
}

// Result is the full output of one recognition pass.
type Result struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Words      []Word  `json:"words"`
}

// Engine recognizes text in a raster image. Implementations wrap
// external recognizers; Recognize must honor context cancellation.
type Engine interface {
	Recognize(ctx context.Context, img image.Image) (*Result, error)
}
