// Package handlers provides HTTP handlers for divisional chart lookups.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/aristath/jyotish/internal/domain"
	"github.com/aristath/jyotish/internal/modules/varga"
	"github.com/aristath/jyotish/internal/utils"
)

// Handler handles varga HTTP requests
type Handler struct {
	log zerolog.Logger
}

// NewHandler creates a new varga handler
func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{
		log: log.With().Str("handler", "varga").Logger(),
	}
}

// Mapping is the sign a longitude falls in for one division
type Mapping struct {
	Factor    int         `json:"factor"`
	Name      string      `json:"name"`
	Sign      domain.Sign `json:"sign"`
	SignName  string      `json:"sign_name"`
	Supported bool        `json:"supported"`
}

// HandleGetDivisions handles GET /api/varga/divisions
func (h *Handler) HandleGetDivisions(w http.ResponseWriter, r *http.Request) {
	divisions := varga.Supported()
	utils.WriteResponse(w, r, http.StatusOK, utils.Envelope(map[string]interface{}{
		"divisions": divisions,
		"count":     len(divisions),
	}), h.log)
}

// HandleMapLongitude handles GET /api/varga/{longitude}?divisions=2,9,60
// Without a divisions query every supported division is returned.
func (h *Handler) HandleMapLongitude(w http.ResponseWriter, r *http.Request) {
	lon, ok := utils.ParseLongitude(w, chi.URLParam(r, "longitude"))
	if !ok {
		return
	}

	factors, err := utils.ParseIntCSV(r.URL.Query().Get("divisions"))
	if err != nil {
		http.Error(w, "divisions must be a comma-separated list of integers", http.StatusBadRequest)
		return
	}
	if len(factors) == 0 {
		for _, d := range varga.Supported() {
			factors = append(factors, d.Factor)
		}
	}

	mappings := make([]Mapping, 0, len(factors))
	for _, f := range factors {
		sign := varga.Map(lon, f)
		mappings = append(mappings, Mapping{
			Factor:    f,
			Name:      varga.Name(f),
			Sign:      sign,
			SignName:  sign.String(),
			Supported: varga.IsSupported(f),
		})
	}

	utils.WriteResponse(w, r, http.StatusOK, utils.Envelope(map[string]interface{}{
		"longitude": lon,
		"rashi":     domain.SignOf(lon).String(),
		"mappings":  mappings,
	}), h.log)
}
