package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/plateaulabs/menuscan/internal/decode"
	"github.com/plateaulabs/menuscan/internal/pipeline"
	"github.com/plateaulabs/menuscan/internal/version"
)

// SetupRoutes registers all HTTP routes on the given mux.
func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", s.corsMiddleware(s.observeMiddleware("/health", s.healthHandler)))
	mux.HandleFunc("/extract", s.corsMiddleware(s.observeMiddleware("/extract", s.extractHandler)))
	mux.HandleFunc("/ws/progress", s.hub.serve)
	mux.Handle("/metrics", promhttp.Handler())
}

// Close releases server resources. Active websocket clients are
// disconnected.
func (s *Server) Close() {
	s.hub.closeAll()
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: version.Version,
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}

// extractHandler accepts a multipart upload and runs the extraction
// pipeline on it. Form fields:
//
//	file - the document to extract from (required)
//	kind - input kind override; sniffed from content when absent
//	slot - upload slot ID for last-request-wins semantics (optional)
func (s *Server) extractHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadMB<<20)
	if err := r.ParseMultipartForm(s.maxUploadMB << 20); err != nil {
		writeExtractError(w, http.StatusBadRequest, fmt.Sprintf("parse upload: %v", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeExtractError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeExtractError(w, http.StatusBadRequest, fmt.Sprintf("read upload: %v", err))
		return
	}

	in := pipeline.Input{
		Kind:     decode.Kind(r.FormValue("kind")),
		Filename: header.Filename,
		Data:     data,
	}

	ctx := r.Context()
	if s.timeoutSec > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.timeoutSec)*time.Second)
		defer cancel()
	}

	slot := r.FormValue("slot")
	var progress pipeline.ProgressFunc
	var gen uint64
	if slot != "" {
		ctx, gen = s.slots.begin(ctx, slot)
		defer s.slots.end(slot, gen)
		progress = func(stage pipeline.Stage) {
			s.hub.broadcast(slot, stage)
		}
	}

	start := time.Now()
	result, err := s.pipeline.ExtractWithProgress(ctx, in, progress)

	// A newer upload to the same slot supersedes this one; its
	// result must not reach the client as current.
	if slot != "" && !s.slots.isCurrent(slot, gen) {
		writeExtractError(w, http.StatusConflict, "superseded by a newer upload")
		return
	}

	kindLabel := "unknown"
	if result != nil {
		kindLabel = string(result.Kind)
	}
	extractDuration.WithLabelValues(kindLabel).Observe(time.Since(start).Seconds())

	if err != nil {
		s.writeExtractFailure(w, kindLabel, result, err)
		return
	}

	extractRequestsTotal.WithLabelValues(kindLabel, "ok").Inc()
	extractItems.WithLabelValues(kindLabel).Observe(float64(len(result.Items)))
	extractRegions.WithLabelValues(kindLabel).Observe(float64(len(result.Regions)))
	slog.Info("extraction complete",
		"filename", header.Filename,
		"kind", kindLabel,
		"items", len(result.Items),
		"confidence", result.OverallConfidence,
	)
	writeJSON(w, http.StatusOK, ExtractResponse{Success: true, Result: result})
}

// writeExtractFailure maps pipeline errors to HTTP semantics. A run
// that decoded fine but recovered nothing is not a transport error;
// the raw text is returned so the client can offer manual entry.
func (s *Server) writeExtractFailure(w http.ResponseWriter, kind string, result *pipeline.Result, err error) {
	switch {
	case errors.Is(err, pipeline.ErrNoItems):
		extractRequestsTotal.WithLabelValues(kind, "empty").Inc()
		writeJSON(w, http.StatusOK, ExtractResponse{
			Success: false,
			Result:  result,
			Error:   "no items recovered",
		})
	case errors.Is(err, pipeline.ErrDecodeTimeout), errors.Is(err, context.DeadlineExceeded):
		extractRequestsTotal.WithLabelValues(kind, "timeout").Inc()
		writeExtractError(w, http.StatusGatewayTimeout, "extraction timed out")
	case errors.Is(err, pipeline.ErrDecodeFailed), errors.Is(err, decode.ErrUnsupported):
		extractRequestsTotal.WithLabelValues(kind, "decode_error").Inc()
		writeExtractError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		extractRequestsTotal.WithLabelValues(kind, "error").Inc()
		slog.Error("extraction failed", "error", err)
		writeExtractError(w, http.StatusInternalServerError, "extraction failed")
	}
}

func writeExtractError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ExtractResponse{Success: false, Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("write response", "error", err, "status", strconv.Itoa(status))
	}
}
