// Package handlers provides HTTP handlers for the projection API.
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/aristath/pharmacast/internal/modules/projection"
)

// Handler handles projection HTTP requests
type Handler struct {
	service *projection.Service
	log     zerolog.Logger
}

// NewHandler creates a new projection handler
func NewHandler(service *projection.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "projection").Logger(),
	}
}

// HandleCompute handles POST /api/projection
func (h *Handler) HandleCompute(w http.ResponseWriter, r *http.Request) {
	var assumptions projection.Assumptions

	if err := json.NewDecoder(r.Body).Decode(&assumptions); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), "")
		return
	}

	result, err := h.service.Compute(assumptions)
	if err != nil {
		h.writeComputeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// DefaultsResponse carries the baseline scenario plus the documented control
// ranges so the frontend can build its sliders without hardcoding bounds.
type DefaultsResponse struct {
	Assumptions projection.Assumptions             `json:"assumptions"`
	Ranges      map[string]projection.ControlRange `json:"ranges"`
}

// HandleDefaults handles GET /api/projection/defaults
func (h *Handler) HandleDefaults(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, DefaultsResponse{
		Assumptions: projection.DefaultAssumptions(),
		Ranges:      projection.ControlRanges(),
	})
}

// HandleExportCSV handles POST /api/projection/csv
func (h *Handler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	var assumptions projection.Assumptions

	if err := json.NewDecoder(r.Body).Decode(&assumptions); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), "")
		return
	}

	// Buffer the CSV so a validation failure can still produce a clean
	// JSON error instead of a half-written attachment.
	var buf bytes.Buffer
	if err := h.service.ExportCSV(&buf, assumptions); err != nil {
		h.writeComputeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="ianalumab_model.csv"`)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.log.Error().Err(err).Msg("Failed to write CSV response")
	}
}

// writeComputeError translates an engine error into an HTTP error response.
// Validation failures become 400s carrying the offending field name.
func (h *Handler) writeComputeError(w http.ResponseWriter, err error) {
	var invalid *projection.InvalidAssumptionError
	if errors.As(err, &invalid) {
		h.writeError(w, http.StatusBadRequest, invalid.Error(), invalid.Field)
		return
	}
	h.writeError(w, http.StatusInternalServerError, "Projection failed: "+err.Error(), "")
}

// errorResponse is the JSON error envelope. Field is set for validation
// errors so the UI can attach the message to the matching control.
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
