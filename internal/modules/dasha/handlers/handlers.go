// Package handlers provides HTTP handlers for dasha schedules.
package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/jyotish/internal/domain"
	"github.com/aristath/jyotish/internal/modules/chart"
	"github.com/aristath/jyotish/internal/modules/dasha"
	"github.com/aristath/jyotish/internal/utils"
)

// CurrentProvider exposes the latest running-dasha snapshot
type CurrentProvider interface {
	Current() (dasha.Snapshot, bool)
}

// Handler handles dasha HTTP requests
type Handler struct {
	current CurrentProvider
	log     zerolog.Logger
}

// NewHandler creates a new dasha handler. current may be nil when no natal
// profile is configured.
func NewHandler(current CurrentProvider, log zerolog.Logger) *Handler {
	return &Handler{
		current: current,
		log:     log.With().Str("handler", "dasha").Logger(),
	}
}

// MahadashaRequest represents a request for the top-level schedule
type MahadashaRequest struct {
	MoonLongitude float64   `json:"moon_longitude"`
	Birth         time.Time `json:"birth"`
}

// AntardashaRequest selects one Mahadasha to expand
type AntardashaRequest struct {
	MahaLord domain.Body `json:"maha_lord"`
	Start    time.Time   `json:"start"`
	Birth    time.Time   `json:"birth"`
}

// PratyantardashaRequest selects one Antardasha to expand
type PratyantardashaRequest struct {
	MahaLord  domain.Body `json:"maha_lord"`
	AntarLord domain.Body `json:"antar_lord"`
	Start     time.Time   `json:"start"`
	Birth     time.Time   `json:"birth"`
}

// HandleMahadashas handles POST /api/dasha/mahadashas
func (h *Handler) HandleMahadashas(w http.ResponseWriter, r *http.Request) {
	var req MahadashaRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Birth.IsZero() {
		http.Error(w, "birth is required", http.StatusBadRequest)
		return
	}
	if req.MoonLongitude < 0 || req.MoonLongitude >= 360 {
		http.Error(w, "moon_longitude must be in [0, 360)", http.StatusBadRequest)
		return
	}

	periods := dasha.Mahadashas(req.MoonLongitude, req.Birth)
	h.writePeriods(w, r, periods, req.Birth, map[string]interface{}{
		"balance": dasha.BirthBalance(req.MoonLongitude),
	})
}

// HandleAntardashas handles POST /api/dasha/antardashas
func (h *Handler) HandleAntardashas(w http.ResponseWriter, r *http.Request) {
	var req AntardashaRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Start.IsZero() {
		http.Error(w, "start is required", http.StatusBadRequest)
		return
	}

	periods, err := dasha.Antardashas(req.MahaLord, req.Start)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writePeriods(w, r, periods, req.Birth, nil)
}

// HandlePratyantardashas handles POST /api/dasha/pratyantardashas
func (h *Handler) HandlePratyantardashas(w http.ResponseWriter, r *http.Request) {
	var req PratyantardashaRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Start.IsZero() {
		http.Error(w, "start is required", http.StatusBadRequest)
		return
	}

	periods, err := dasha.Pratyantardashas(req.MahaLord, req.AntarLord, req.Start)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writePeriods(w, r, periods, req.Birth, nil)
}

// HandleGetCurrent handles GET /api/dasha/current
func (h *Handler) HandleGetCurrent(w http.ResponseWriter, r *http.Request) {
	if h.current == nil {
		http.Error(w, "No natal profile configured", http.StatusNotFound)
		return
	}
	snap, ok := h.current.Current()
	if !ok {
		http.Error(w, "Running dasha not computed yet", http.StatusServiceUnavailable)
		return
	}

	utils.WriteResponse(w, r, http.StatusOK, utils.Envelope(map[string]interface{}{
		"at":      snap.At,
		"key":     snap.Key(),
		"lineage": snap.Lineage,
	}), h.log)
}

func (h *Handler) writePeriods(w http.ResponseWriter, r *http.Request, periods []dasha.Period, birth time.Time, extra map[string]interface{}) {
	data := map[string]interface{}{
		"periods":    periods,
		"rows":       chart.PeriodTable(periods, birth),
		"span_years": dasha.SpanYears(periods),
	}
	for k, v := range extra {
		data[k] = v
	}
	utils.WriteResponse(w, r, http.StatusOK, utils.Envelope(data), h.log)
}
