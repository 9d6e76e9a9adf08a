// Package ephemeris defines the contract of the astronomical collaborator that
// supplies sidereal positions, plus a static provider for precomputed values.
package ephemeris

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aristath/jyotish/internal/domain"
	"github.com/aristath/jyotish/pkg/formulas"
)

// ErrUnknownBody is returned when a provider has no data for a body.
var ErrUnknownBody = errors.New("body not available from ephemeris")

// unixEpochJD is the Julian day number of 1970-01-01T00:00:00Z.
const unixEpochJD = 2440587.5

// Provider supplies already-corrected sidereal positions.
type Provider interface {
	// Name returns the provider name for display/logging.
	Name() string

	// Position returns the sidereal longitude in [0, 360) and the speed in
	// degrees per day of body at the given Julian day (UT).
	Position(ctx context.Context, body domain.Body, jd float64) (domain.Position, error)

	// Ascendant returns the sidereal ascendant longitude for an observer.
	Ascendant(ctx context.Context, jd, latitude, longitude float64) (float64, error)
}

// JulianDay converts an instant to a Julian day number in UT.
func JulianDay(t time.Time) float64 {
	return unixEpochJD + float64(t.UTC().UnixNano())/float64(24*time.Hour)
}

// Static serves a fixed set of positions regardless of the requested moment.
// It backs requests where the caller already ran the ephemeris.
type Static struct {
	positions map[domain.Body]domain.Position
	ascendant float64
}

// NewStatic builds a provider from precomputed readings. Ketu entries are
// ignored; Ketu is always derived from Rahu.
func NewStatic(ascendant float64, positions []domain.Position) *Static {
	s := &Static{
		positions: make(map[domain.Body]domain.Position, len(positions)),
		ascendant: formulas.Normalize(ascendant),
	}
	for _, p := range positions {
		if p.Body == domain.Ketu || p.Body == domain.Ascendant {
			continue
		}
		p.Longitude = formulas.Normalize(p.Longitude)
		s.positions[p.Body] = p
	}
	return s
}

// Name returns the provider name
func (s *Static) Name() string {
	return "static"
}

// Position returns the stored reading for body
func (s *Static) Position(_ context.Context, body domain.Body, _ float64) (domain.Position, error) {
	p, ok := s.positions[body]
	if !ok {
		return domain.Position{}, fmt.Errorf("%s: %w", body, ErrUnknownBody)
	}
	return p, nil
}

// Ascendant returns the stored ascendant
func (s *Static) Ascendant(_ context.Context, _, _, _ float64) (float64, error) {
	return s.ascendant, nil
}
