package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateaulabs/menuscan/internal/decode"
	"github.com/plateaulabs/menuscan/internal/menu"
	"github.com/plateaulabs/menuscan/internal/pipeline"
)

// stubExtractor returns canned results. With blockFirst set, the
// first call parks until its context is cancelled; later calls return
// normally.
type stubExtractor struct {
	result     *pipeline.Result
	err        error
	blockFirst bool
	calls      atomic.Int32
}

func (s *stubExtractor) ExtractWithProgress(ctx context.Context, in pipeline.Input, progress pipeline.ProgressFunc) (*pipeline.Result, error) {
	if s.calls.Add(1) == 1 && s.blockFirst {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if progress != nil {
		progress(pipeline.StageDecoding)
		progress(pipeline.StageDone)
	}
	return s.result, s.err
}

func newTestServer(stub *stubExtractor) *Server {
	return &Server{
		pipeline:    stub,
		corsOrigin:  "*",
		maxUploadMB: 5,
		timeoutSec:  2,
		slots:       newSlotRegistry(),
		hub:         newProgressHub("*"),
	}
}

func multipartUpload(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("file", "menu.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("name,price\nChai,15\n"))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func okResult() *pipeline.Result {
	return &pipeline.Result{
		ID:   uuid.New(),
		Kind: decode.KindCSV,
		Items: []menu.Item{
			{ID: 1, Name: "Chai", Price: 15, Currency: "$", Category: "Beverages", Confidence: 100, Source: menu.SourceImport, RegionIndex: -1},
		},
		OverallConfidence: 100,
	}
}

func TestHealthHandler(t *testing.T) {
	s := newTestServer(&stubExtractor{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.healthHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.NotEmpty(t, resp.Time)
}

func TestHealthHandlerRejectsPost(t *testing.T) {
	s := newTestServer(&stubExtractor{})
	rec := httptest.NewRecorder()
	s.healthHandler(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestExtractHandlerSuccess(t *testing.T) {
	s := newTestServer(&stubExtractor{result: okResult()})
	body, ctype := multipartUpload(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/extract", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	s.extractHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ExtractResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Result)
	assert.Len(t, resp.Result.Items, 1)
}

func TestExtractHandlerNoItems(t *testing.T) {
	partial := &pipeline.Result{ID: uuid.New(), Kind: decode.KindPDF, RawText: "illegible scan"}
	s := newTestServer(&stubExtractor{result: partial, err: pipeline.ErrNoItems})
	body, ctype := multipartUpload(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/extract", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	s.extractHandler(rec, req)

	// Empty recovery is a domain outcome, not a transport failure.
	require.Equal(t, http.StatusOK, rec.Code)
	var resp ExtractResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Result)
	assert.Equal(t, "illegible scan", resp.Result.RawText)
}

func TestExtractHandlerDecodeFailure(t *testing.T) {
	s := newTestServer(&stubExtractor{err: pipeline.ErrDecodeFailed})
	body, ctype := multipartUpload(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/extract", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	s.extractHandler(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestExtractHandlerTimeout(t *testing.T) {
	s := newTestServer(&stubExtractor{err: pipeline.ErrDecodeTimeout})
	body, ctype := multipartUpload(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/extract", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	s.extractHandler(rec, req)
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestExtractHandlerMissingFile(t *testing.T) {
	s := newTestServer(&stubExtractor{result: okResult()})
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("kind", "csv"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/extract", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	s.extractHandler(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractHandlerRejectsGet(t *testing.T) {
	s := newTestServer(&stubExtractor{})
	rec := httptest.NewRecorder()
	s.extractHandler(rec, httptest.NewRequest(http.MethodGet, "/extract", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestExtractHandlerSlotSupersession(t *testing.T) {
	s := newTestServer(&stubExtractor{result: okResult(), blockFirst: true})

	firstDone := make(chan int, 1)
	go func() {
		body, ctype := multipartUpload(t, map[string]string{"slot": "table-4"})
		req := httptest.NewRequest(http.MethodPost, "/extract", body)
		req.Header.Set("Content-Type", ctype)
		rec := httptest.NewRecorder()
		s.extractHandler(rec, req)
		firstDone <- rec.Code
	}()

	// Wait for the first request to register its slot.
	require.Eventually(t, func() bool {
		s.slots.mu.Lock()
		defer s.slots.mu.Unlock()
		return len(s.slots.slots) == 1
	}, time.Second, 5*time.Millisecond)

	// The second upload to the same slot cancels the first.
	body, ctype := multipartUpload(t, map[string]string{"slot": "table-4"})
	req := httptest.NewRequest(http.MethodPost, "/extract", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	s.extractHandler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	select {
	case code := <-firstDone:
		// The superseded request must not report success.
		assert.Equal(t, http.StatusConflict, code)
	case <-time.After(2 * time.Second):
		t.Fatal("superseded request never returned")
	}
}

func TestSetupRoutes(t *testing.T) {
	s := newTestServer(&stubExtractor{result: okResult()})
	mux := http.NewServeMux()
	s.SetupRoutes(mux)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	metrics, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer metrics.Body.Close()
	assert.Equal(t, http.StatusOK, metrics.StatusCode)
}
