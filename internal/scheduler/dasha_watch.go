package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/jyotish/internal/modules/dasha"
)

// DashaWatchJob tracks the running Mahadasha/Antardasha/Pratyantardasha of a
// natal profile and logs each transition.
type DashaWatchJob struct {
	moonLongitude float64
	birth         time.Time
	now           func() time.Time
	log           zerolog.Logger

	mu      sync.RWMutex
	current dasha.Snapshot
	ready   bool
}

// NewDashaWatchJob creates a watch job for the given natal Moon and birth instant
func NewDashaWatchJob(moonLongitude float64, birth time.Time, log zerolog.Logger) *DashaWatchJob {
	return &DashaWatchJob{
		moonLongitude: moonLongitude,
		birth:         birth,
		now:           time.Now,
		log:           log.With().Str("job", "dasha_watch").Logger(),
	}
}

// Name returns the job name
func (j *DashaWatchJob) Name() string {
	return "dasha_watch"
}

// Run recomputes the running lineage
func (j *DashaWatchJob) Run() error {
	at := j.now()
	snap := dasha.Snapshot{
		At:      at,
		Lineage: dasha.Lineage(j.moonLongitude, j.birth, at),
	}
	if len(snap.Lineage) == 0 {
		return fmt.Errorf("no running dasha at %s", at.Format(time.RFC3339))
	}

	j.mu.Lock()
	previous := j.current.Key()
	hadPrevious := j.ready
	j.current = snap
	j.ready = true
	j.mu.Unlock()

	if !hadPrevious || previous != snap.Key() {
		event := j.log.Info().
			Str("lineage", snap.Key()).
			Time("until", snap.Lineage[len(snap.Lineage)-1].End)
		if hadPrevious {
			event = event.Str("previous", previous)
		}
		event.Msg("Running dasha changed")
	}

	return nil
}

// Current returns the last computed snapshot
func (j *DashaWatchJob) Current() (dasha.Snapshot, bool) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.current, j.ready
}
