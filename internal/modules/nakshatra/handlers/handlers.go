// Package handlers provides HTTP handlers for nakshatra lookups.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/aristath/jyotish/internal/modules/nakshatra"
	"github.com/aristath/jyotish/internal/utils"
)

// Handler handles nakshatra HTTP requests
type Handler struct {
	log zerolog.Logger
}

// NewHandler creates a new nakshatra handler
func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{
		log: log.With().Str("handler", "nakshatra").Logger(),
	}
}

// HandleLocate handles GET /api/nakshatra/{longitude}
func (h *Handler) HandleLocate(w http.ResponseWriter, r *http.Request) {
	lon, ok := utils.ParseLongitude(w, chi.URLParam(r, "longitude"))
	if !ok {
		return
	}

	utils.WriteResponse(w, r, http.StatusOK, utils.Envelope(map[string]interface{}{
		"longitude": lon,
		"nakshatra": nakshatra.Locate(lon),
	}), h.log)
}

// HandleList handles GET /api/nakshatra
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		Index int     `json:"index"`
		Name  string  `json:"name"`
		Lord  string  `json:"lord"`
		Start float64 `json:"start"`
	}

	entries := make([]entry, 0, nakshatra.Count)
	for i, name := range nakshatra.Names {
		entries = append(entries, entry{
			Index: i,
			Name:  name,
			Lord:  nakshatra.Lords[i%len(nakshatra.Lords)].String(),
			Start: float64(i) * nakshatra.Width,
		})
	}

	utils.WriteResponse(w, r, http.StatusOK, utils.Envelope(map[string]interface{}{
		"nakshatras": entries,
		"width":      nakshatra.Width,
	}), h.log)
}
