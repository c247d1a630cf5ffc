// Package analysis exposes the HTTP surface for submitting financial
// statements and polling run progress.
package analysis

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"finsight/pkg/core/pipeline"
	"finsight/pkg/core/store"
	"finsight/pkg/models"
)

// Handler serves the analysis endpoints.
type Handler struct {
	orchestrator *pipeline.Orchestrator
	runs         store.RunStore
}

func NewHandler(orchestrator *pipeline.Orchestrator, runs store.RunStore) *Handler {
	return &Handler{orchestrator: orchestrator, runs: runs}
}

type submitRequest struct {
	UserID  string               `json:"userId,omitempty"`
	Company models.Company       `json:"company"`
	Depth   models.AnalysisDepth `json:"depth,omitempty"`
	Records []models.RawRecord   `json:"records"`
}

type submitResponse struct {
	ID     string           `json:"id"`
	Status models.RunStatus `json:"status"`
}

// Submit accepts statement records, registers a run, and returns its
// id immediately. Processing continues in the background.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Records) == 0 {
		writeError(w, http.StatusBadRequest, "records are required")
		return
	}

	run, err := h.orchestrator.Submit(r.Context(), pipeline.Request{
		UserID:  req.UserID,
		Company: req.Company,
		Depth:   req.Depth,
		Records: req.Records,
	})
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("submit analysis failed")
		writeError(w, http.StatusInternalServerError, "could not start analysis")
		return
	}

	writeJSON(w, http.StatusAccepted, submitResponse{ID: run.ID, Status: run.Status})
}

// Get returns the current state of a run, including results once the
// run completes.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	run, err := h.runs.GetRun(r.Context(), id)
	if errors.Is(err, store.ErrRunNotFound) {
		writeError(w, http.StatusNotFound, "analysis run not found")
		return
	}
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("run_id", id).Msg("load analysis run failed")
		writeError(w, http.StatusInternalServerError, "could not load analysis run")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
