package ephemeris

import (
	"context"
	"testing"
	"time"

	"github.com/aristath/jyotish/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJulianDay(t *testing.T) {
	assert.InDelta(t, 2451545.0, JulianDay(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)), 1e-9)
	assert.InDelta(t, 2440587.5, JulianDay(time.Unix(0, 0)), 1e-9)

	// Offsets are removed before conversion
	local := time.Date(2000, 1, 1, 17, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))
	assert.InDelta(t, 2451545.0, JulianDay(local), 1e-9)
}

func TestStatic(t *testing.T) {
	s := NewStatic(-10, []domain.Position{
		{Body: domain.Sun, Longitude: 30.5, Speed: 0.98},
		{Body: domain.Rahu, Longitude: 370, Speed: -0.05},
		{Body: domain.Ketu, Longitude: 1},
	})
	ctx := context.Background()

	assert.Equal(t, "static", s.Name())

	asc, err := s.Ascendant(ctx, 0, 28.6, 77.2)
	require.NoError(t, err)
	assert.Equal(t, 350.0, asc)

	sun, err := s.Position(ctx, domain.Sun, 0)
	require.NoError(t, err)
	assert.Equal(t, 30.5, sun.Longitude)
	assert.Equal(t, 0.98, sun.Speed)

	rahu, err := s.Position(ctx, domain.Rahu, 0)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, rahu.Longitude, 1e-12)

	_, err = s.Position(ctx, domain.Ketu, 0)
	assert.ErrorIs(t, err, ErrUnknownBody)

	_, err = s.Position(ctx, domain.Mars, 0)
	assert.ErrorIs(t, err, ErrUnknownBody)
}
