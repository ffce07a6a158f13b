// Package handlers provides HTTP handlers for scenario management.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/aristath/pharmacast/internal/modules/projection"
	"github.com/aristath/pharmacast/internal/modules/scenarios"
)

// Handler handles scenario HTTP requests
type Handler struct {
	repo *scenarios.Repository
	log  zerolog.Logger
}

// NewHandler creates a new scenarios handler
func NewHandler(repo *scenarios.Repository, log zerolog.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log.With().Str("handler", "scenarios").Logger(),
	}
}

// CreateScenarioRequest is the body of POST /api/scenarios.
type CreateScenarioRequest struct {
	Name        string                 `json:"name"`
	Assumptions projection.Assumptions `json:"assumptions"`
}

// HandleCreate handles POST /api/scenarios
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateScenarioRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), "")
		return
	}

	scenario, err := h.repo.Create(req.Name, req.Assumptions)
	if err != nil {
		var invalid *projection.InvalidAssumptionError
		if errors.As(err, &invalid) {
			h.writeError(w, http.StatusBadRequest, invalid.Error(), invalid.Field)
			return
		}
		h.writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	h.writeJSON(w, http.StatusCreated, scenario)
}

// HandleList handles GET /api/scenarios
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"scenarios": h.repo.List(),
	})
}

// HandleGet handles GET /api/scenarios/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	scenario, err := h.repo.Get(id)
	if err != nil {
		h.writeError(w, http.StatusNotFound, "Scenario not found: "+id, "")
		return
	}

	h.writeJSON(w, http.StatusOK, scenario)
}

// HandleDelete handles DELETE /api/scenarios/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.repo.Delete(id); err != nil {
		h.writeError(w, http.StatusNotFound, "Scenario not found: "+id, "")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})
}

// HandleCompare handles GET /api/scenarios/compare
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"comparison": h.repo.Compare(),
	})
}

// errorResponse is the JSON error envelope shared with the projection API.
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes a JSON error response
func (h *Handler) writeError(w http.ResponseWriter, status int, message, field string) {
	h.writeJSON(w, status, errorResponse{Error: message, Field: field})
}
