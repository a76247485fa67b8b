package pipeline

import (
	"github.com/google/uuid"

	"github.com/plateaulabs/menuscan/internal/decode"
	"github.com/plateaulabs/menuscan/internal/menu"
	"github.com/plateaulabs/menuscan/internal/regions"
)

// Input is one upload to extract from. Kind may be left empty to let
// the pipeline detect it from the filename and leading bytes.
type Input struct {
	Kind     decode.Kind
	Filename string
	Data     []byte
}

// Result is the aggregated output of one extraction run. Everything
// here lives only for the duration of one invocation; persistence of
// accepted items is the caller's concern after human review.
type Result struct {
	ID                uuid.UUID        `json:"id"`
	Kind              decode.Kind      `json:"kind"`
	Items             []menu.Item      `json:"items"`
	RawText           string           `json:"raw_text,omitempty"`
	Regions           []regions.Region `json:"regions,omitempty"`
	Currency          string           `json:"currency"`
	OverallConfidence int              `json:"overall_confidence"`
	Processing        struct {
		DecodeNs  int64 `json:"decode_ns"`
		ExtractNs int64 `json:"extract_ns"`
		RegionsNs int64 `json:"regions_ns"`
		MatchNs   int64 `json:"match_ns"`
		TotalNs   int64 `json:"total_ns"`
	} `json:"processing"`
}
