package server

import (
	"net/http"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	dashahandlers "github.com/aristath/jyotish/internal/modules/dasha/handlers"
	"github.com/aristath/jyotish/internal/utils"
)

// SystemHandlers serves process and host status
type SystemHandlers struct {
	log         zerolog.Logger
	startupTime time.Time
	dashaWatch  dashahandlers.CurrentProvider
	stats       func() (float64, float64)
}

// SystemStatusResponse is the payload of GET /api/system/status
type SystemStatusResponse struct {
	Status       string   `json:"status"`
	UptimeHours  float64  `json:"uptime_hours"`
	CPUPercent   float64  `json:"cpu_percent"`
	RAMPercent   float64  `json:"ram_percent"`
	Goroutines   int      `json:"goroutines"`
	GoVersion    string   `json:"go_version"`
	DashaWatch   bool     `json:"dasha_watch"`
	RunningDasha []string `json:"running_dasha,omitempty"`
}

// NewSystemHandlers creates system handlers. dashaWatch may be nil.
func NewSystemHandlers(log zerolog.Logger, dashaWatch dashahandlers.CurrentProvider) *SystemHandlers {
	h := &SystemHandlers{
		log:         log.With().Str("handler", "system").Logger(),
		startupTime: time.Now(),
		dashaWatch:  dashaWatch,
	}
	h.stats = h.getSystemStats
	return h
}

// HandleSystemStatus handles GET /api/system/status
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	h.log.Debug().Msg("Getting system status")

	cpuPercent, ramPercent := h.stats()
	response := SystemStatusResponse{
		Status:      "healthy",
		UptimeHours: time.Since(h.startupTime).Hours(),
		CPUPercent:  cpuPercent,
		RAMPercent:  ramPercent,
		Goroutines:  runtime.NumGoroutine(),
		GoVersion:   runtime.Version(),
		DashaWatch:  h.dashaWatch != nil,
	}

	if h.dashaWatch != nil {
		if snap, ok := h.dashaWatch.Current(); ok {
			for _, p := range snap.Lineage {
				response.RunningDasha = append(response.RunningDasha, p.Lord.String())
			}
		}
	}

	utils.WriteResponse(w, r, http.StatusOK, utils.Envelope(response), h.log)
}

// getSystemStats samples CPU over 100ms so the endpoint stays responsive
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil || len(cpuPercent) == 0 {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return cpuPercent[0], 0
	}

	return cpuPercent[0], memStat.UsedPercent
}
