// Package handlers provides HTTP handlers for chart assembly.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/jyotish/internal/domain"
	"github.com/aristath/jyotish/internal/ephemeris"
	"github.com/aristath/jyotish/internal/modules/chart"
	"github.com/aristath/jyotish/internal/modules/varga"
	"github.com/aristath/jyotish/internal/utils"
)

// Handler handles chart HTTP requests
type Handler struct {
	service *chart.Service
	log     zerolog.Logger
}

// NewHandler creates a new chart handler
func NewHandler(service *chart.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "chart").Logger(),
	}
}

// ChartRequest carries precomputed sidereal positions for one moment
type ChartRequest struct {
	Birth     time.Time         `json:"birth"`
	Ascendant float64           `json:"ascendant"`
	Division  int               `json:"division,omitempty"`
	Latitude  float64           `json:"latitude,omitempty"`
	Longitude float64           `json:"longitude,omitempty"`
	Positions []domain.Position `json:"positions"`
}

func (req ChartRequest) validate() error {
	if req.Birth.IsZero() {
		return errors.New("birth is required")
	}
	if req.Ascendant < 0 || req.Ascendant >= 360 {
		return errors.New("ascendant must be in [0, 360)")
	}
	if req.Division < 0 {
		return errors.New("division must be positive")
	}
	for _, p := range req.Positions {
		if p.Longitude < 0 || p.Longitude >= 360 {
			return errors.New(p.Body.String() + " longitude must be in [0, 360)")
		}
	}
	return nil
}

// HandleCreateChart handles POST /api/charts
func (h *Handler) HandleCreateChart(w http.ResponseWriter, r *http.Request) {
	var req ChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	provider := ephemeris.NewStatic(req.Ascendant, req.Positions)
	c, err := h.service.ComputeFromEphemeris(r.Context(), provider, req.Birth, req.Latitude, req.Longitude, req.Division)
	if err != nil {
		if errors.Is(err, ephemeris.ErrUnknownBody) || errors.Is(err, chart.ErrMissingBody) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.log.Error().Err(err).Msg("Failed to assemble chart")
		http.Error(w, "Failed to assemble chart", http.StatusInternalServerError)
		return
	}

	utils.WriteResponse(w, r, http.StatusCreated, utils.Envelope(c), h.log)
}

// HandleGetDefaults handles GET /api/charts/defaults
func (h *Handler) HandleGetDefaults(w http.ResponseWriter, r *http.Request) {
	division := h.service.DefaultDivision()
	utils.WriteResponse(w, r, http.StatusOK, utils.Envelope(map[string]interface{}{
		"division":      division,
		"division_name": varga.Name(division),
		"bodies":        domain.Planets,
	}), h.log)
}
