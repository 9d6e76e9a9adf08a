package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all varga routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/varga", func(r chi.Router) {
		r.Get("/divisions", h.HandleGetDivisions)
		r.Get("/{longitude}", h.HandleMapLongitude)
	})
}
