package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all projection routes under the passed router
// (mounted at /api by the server).
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/projection", func(r chi.Router) {
		r.Post("/", h.HandleCompute)
		r.Get("/defaults", h.HandleDefaults)
		r.Post("/csv", h.HandleExportCSV)
		r.Get("/stream", h.HandleStream)
	})
}
