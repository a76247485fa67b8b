package server

import (
	"context"
	"fmt"

	"github.com/plateaulabs/menuscan/internal/pipeline"
)

// extractor defines what the server needs from a pipeline.
type extractor interface {
	ExtractWithProgress(ctx context.Context, in pipeline.Input, progress pipeline.ProgressFunc) (*pipeline.Result, error)
}

// Server holds the HTTP server state and dependencies.
type Server struct {
	pipeline    extractor
	corsOrigin  string
	maxUploadMB int64
	timeoutSec  int
	slots       *slotRegistry
	hub         *progressHub
}

// Config holds server configuration.
type Config struct {
	Host           string
	Port           int
	CORSOrigin     string
	MaxUploadMB    int64
	TimeoutSec     int
	PipelineConfig pipeline.Config
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Time    string `json:"time"`
}

// ExtractResponse is the POST /extract body. A zero-item extraction
// is reported with Success=false and the raw text retained inside
// Result so clients can offer manual correction.
type ExtractResponse struct {
	Success bool             `json:"success"`
	Result  *pipeline.Result `json:"result,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// NewServer creates a new extraction server instance.
func NewServer(config Config) (*Server, error) {
	pl, err := pipeline.NewBuilder().
		WithOCREngine(config.PipelineConfig.OCR).
		WithRegionConfig(config.PipelineConfig.Regions).
		WithMatchDistance(config.PipelineConfig.MatchDistance).
		WithDecodeTimeout(config.PipelineConfig.DecodeTimeout).
		WithConfidenceFloor(config.PipelineConfig.ConfidenceFloor).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build pipeline: %w", err)
	}

	return &Server{
		pipeline:    pl,
		corsOrigin:  config.CORSOrigin,
		maxUploadMB: config.MaxUploadMB,
		timeoutSec:  config.TimeoutSec,
		slots:       newSlotRegistry(),
		hub:         newProgressHub(config.CORSOrigin),
	}, nil
}
