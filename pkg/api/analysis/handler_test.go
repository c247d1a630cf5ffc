package analysis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"finsight/pkg/core/benchmark"
	"finsight/pkg/core/narrative"
	"finsight/pkg/core/pipeline"
	"finsight/pkg/core/store"
	"finsight/pkg/models"
)

func newTestRouter(t *testing.T) (*chi.Mux, *pipeline.Orchestrator, store.RunStore) {
	t.Helper()
	runs := store.NewMemoryRunStore()
	synth := narrative.NewSynthesizer(nil, zerolog.Nop())
	orchestrator := pipeline.NewOrchestrator(runs, benchmark.NewStatic(), synth, nil, zerolog.Nop())
	handler := NewHandler(orchestrator, runs)

	router := chi.NewRouter()
	router.Post("/api/analysis", handler.Submit)
	router.Get("/api/analysis/{id}", handler.Get)
	return router, orchestrator, runs
}

func TestSubmitReturnsAccepted(t *testing.T) {
	router, orchestrator, runs := newTestRouter(t)

	body := `{
		"company": {"name": "شركة", "sector": "retail"},
		"records": [{"year": 2023, "fields": {"Revenue": 1000, "Cost of Goods Sold": 600}}]
	}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/analysis", strings.NewReader(body)))

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202 (body %s)", rec.Code, rec.Body.String())
	}
	var resp struct {
		ID     string           `json:"id"`
		Status models.RunStatus `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" || resp.Status != models.RunStatusPending {
		t.Errorf("response = %+v", resp)
	}

	orchestrator.Wait()
	run, err := runs.GetRun(context.Background(), resp.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if run.Status != models.RunStatusCompleted {
		t.Errorf("status = %s (error %q), want completed", run.Status, run.Error)
	}
}

func TestSubmitRejectsEmptyRecords(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/analysis", strings.NewReader(`{"records": []}`)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSubmitRejectsMalformedBody(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/analysis", strings.NewReader("{")))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetUnknownRunReturns404(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analysis/does-not-exist", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
