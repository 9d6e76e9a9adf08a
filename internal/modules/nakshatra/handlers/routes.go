package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all nakshatra routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/nakshatra", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Get("/{longitude}", h.HandleLocate)
	})
}
