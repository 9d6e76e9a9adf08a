package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all dasha routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/dasha", func(r chi.Router) {
		r.Post("/mahadashas", h.HandleMahadashas)
		r.Post("/antardashas", h.HandleAntardashas)
		r.Post("/pratyantardashas", h.HandlePratyantardashas)
		r.Get("/current", h.HandleGetCurrent)
	})
}
