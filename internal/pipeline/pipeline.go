// Package pipeline wires decoding, text extraction, region detection
// and spatial matching into one synchronous extraction run per input.
package pipeline

import (
	"errors"
	"time"

	"github.com/plateaulabs/menuscan/internal/match"
	"github.com/plateaulabs/menuscan/internal/ocr"
	"github.com/plateaulabs/menuscan/internal/regions"
)

// Taxonomy of expected failures. Heuristic misses inside strategies
// never produce errors; these mark decoder faults and empty outcomes.
var (
	// ErrDecodeFailed marks malformed or unsupported input bytes;
	// fatal for the upload, no retry.
	ErrDecodeFailed = errors.New("decode failed")

	// ErrDecodeTimeout marks a decode step exceeding the wall-clock
	// budget; surfaced distinctly from a zero-result failure.
	ErrDecodeTimeout = errors.New("decode timed out")

	// ErrNoItems marks a successful decode that recovered nothing,
	// even after fallback. A normal outcome, surfaced to the user as
	// "no items found" with the raw text attached for inspection.
	ErrNoItems = errors.New("no items found")
)

// Config holds configuration for one extraction pipeline.
type Config struct {
	OCR             ocr.Engine
	Regions         regions.Config
	MatchDistance   float64
	DecodeTimeout   time.Duration
	ConfidenceFloor int // items below it are flagged NeedsReview
}

// DefaultConfig returns pipeline defaults with component defaults.
func DefaultConfig() Config {
	return Config{
		Regions:         regions.DefaultConfig(),
		MatchDistance:   match.DefaultMaxDistance,
		DecodeTimeout:   30 * time.Second,
		ConfidenceFloor: 0,
	}
}

// Builder constructs a Pipeline with fluent configuration.
type Builder struct {
	cfg Config
}

// NewBuilder creates a new pipeline builder with defaults.
func NewBuilder() *Builder { return &Builder{cfg: DefaultConfig()} }

// WithOCREngine sets the external OCR engine used for image input.
func (b *Builder) WithOCREngine(e ocr.Engine) *Builder {
	b.cfg.OCR = e
	return b
}

// WithRegionConfig overrides the region detector configuration.
func (b *Builder) WithRegionConfig(cfg regions.Config) *Builder {
	b.cfg.Regions = cfg
	return b
}

// WithGridCellSize sets the region detector grid cell side (if >0).
func (b *Builder) WithGridCellSize(px int) *Builder {
	if px > 0 {
		b.cfg.Regions.CellSize = px
	}
	return b
}

// WithMatchDistance sets the spatial matching proximity threshold.
func (b *Builder) WithMatchDistance(px float64) *Builder {
	if px > 0 {
		b.cfg.MatchDistance = px
	}
	return b
}

// WithDecodeTimeout sets the wall-clock budget for the decode step.
func (b *Builder) WithDecodeTimeout(d time.Duration) *Builder {
	if d > 0 {
		b.cfg.DecodeTimeout = d
	}
	return b
}

// WithConfidenceFloor sets the review floor: extracted items whose
// confidence falls below it are annotated NeedsReview.
func (b *Builder) WithConfidenceFloor(floor int) *Builder {
	if floor >= 0 && floor <= 100 {
		b.cfg.ConfidenceFloor = floor
	}
	return b
}

// Config returns a copy of the current config.
func (b *Builder) Config() Config { return b.cfg }

// Validate checks the configuration looks sane.
func (b *Builder) Validate() error {
	if b.cfg.DecodeTimeout <= 0 {
		return errors.New("decode timeout must be positive")
	}
	if b.cfg.ConfidenceFloor < 0 || b.cfg.ConfidenceFloor > 100 {
		return errors.New("confidence floor must be within [0, 100]")
	}
	return nil
}

// Build initializes the pipeline components.
func (b *Builder) Build() (*Pipeline, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:      b.cfg,
		detector: regions.NewDetector(b.cfg.Regions),
		matcher:  match.NewMatcher(b.cfg.MatchDistance),
	}, nil
}

// Pipeline runs extraction for one input at a time. It holds no
// mutable state between runs, so a single instance is safe for
// concurrent use across independent uploads.
type Pipeline struct {
	cfg      Config
	detector *regions.Detector
	matcher  *match.Matcher
}

// Config returns the pipeline configuration.
func (p *Pipeline) Config() Config { return p.cfg }
