// Package chart assembles rashi and divisional charts from raw positions.
package chart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aristath/jyotish/internal/domain"
	"github.com/aristath/jyotish/internal/ephemeris"
	"github.com/aristath/jyotish/internal/modules/dasha"
	"github.com/aristath/jyotish/internal/modules/nakshatra"
	"github.com/aristath/jyotish/internal/modules/status"
	"github.com/aristath/jyotish/internal/modules/varga"
	"github.com/aristath/jyotish/pkg/formulas"
)

// ErrMissingBody is returned when an input lacks one of the ephemeris bodies.
var ErrMissingBody = errors.New("missing body position")

// AscendantColor is the display colour of the Ascendant marker
const AscendantColor = "blue"

// Input is everything needed to assemble one chart
type Input struct {
	Birth     time.Time         // Birth or transit instant
	Ascendant float64           // Sidereal ascendant longitude
	Positions []domain.Position // Sun through Rahu; Ketu is derived
	Division  int               // Divisional factor, 0 for the service default
}

// Placement is one body drawn inside a sign box
type Placement struct {
	Body   domain.Body `json:"body"`
	Label  string      `json:"label"`  // Abbreviation plus status suffix
	Degree string      `json:"degree"` // DD°MM'SS" within the D1 sign
	Color  string      `json:"color"`
}

// House groups the placements falling in one sign
type House struct {
	Sign        domain.Sign `json:"sign"`
	Name        string      `json:"name"`
	Abbrev      string      `json:"abbrev"`
	IsAscendant bool        `json:"is_ascendant"`
	Placements  []Placement `json:"placements"`
}

// BodyRow is the flat table entry of a body
type BodyRow struct {
	Body         domain.Body         `json:"body"`
	Label        string              `json:"label"`
	Longitude    float64             `json:"longitude"`
	Degree       string              `json:"degree"`
	Sign         domain.Sign         `json:"sign"`
	SignName     string              `json:"sign_name"`
	DivisionSign domain.Sign         `json:"division_sign"`
	Nakshatra    nakshatra.Placement `json:"nakshatra"`
	Status       status.Status       `json:"status"`
	StatusText   string              `json:"status_text"`
	Color        string              `json:"color"`
}

// Chart is a fully assembled chart ready for a presentation layer
type Chart struct {
	ID            string      `json:"id"`
	Birth         time.Time   `json:"birth"`
	Division      int         `json:"division"`
	DivisionName  string      `json:"division_name"`
	AscendantSign domain.Sign `json:"ascendant_sign"`
	Rashi         []House     `json:"rashi"`
	Varga         []House     `json:"varga"`
	Bodies        []BodyRow   `json:"bodies"`
	Mahadashas    []PeriodRow `json:"mahadashas"`
}

// Service assembles charts
type Service struct {
	defaultDivision int
	log             zerolog.Logger
}

// NewService creates a new chart service
func NewService(defaultDivision int, log zerolog.Logger) *Service {
	return &Service{
		defaultDivision: defaultDivision,
		log:             log.With().Str("service", "chart").Logger(),
	}
}

// DefaultDivision returns the factor used when an input names none
func (s *Service) DefaultDivision() int {
	return s.defaultDivision
}

// Assemble builds the D1 chart, the selected divisional chart, the body table
// and the Mahadasha schedule for in.
func (s *Service) Assemble(in Input) (*Chart, error) {
	bodies, err := completePositions(in)
	if err != nil {
		return nil, err
	}

	division := in.Division
	if division == 0 {
		division = s.defaultDivision
	}
	if division != 1 && !varga.IsSupported(division) {
		s.log.Warn().Int("division", division).Msg("Unsupported division, falling back to rashi")
	}

	sunLon := bodies[domain.Sun].Longitude
	ascSign := domain.SignOf(in.Ascendant)

	c := &Chart{
		ID:            uuid.New().String(),
		Birth:         in.Birth,
		Division:      division,
		DivisionName:  varga.Name(division),
		AscendantSign: ascSign,
		Rashi:         emptyHouses(ascSign),
		Varga:         emptyHouses(varga.Map(in.Ascendant, division)),
		Bodies:        make([]BodyRow, 0, len(domain.Bodies)),
	}

	for _, body := range domain.Bodies {
		pos := bodies[body]
		row := s.row(pos, sunLon, division)
		c.Bodies = append(c.Bodies, row)

		placement := Placement{
			Body:   body,
			Label:  row.Label,
			Degree: row.Degree,
			Color:  row.Color,
		}
		c.Rashi[row.Sign].Placements = append(c.Rashi[row.Sign].Placements, placement)
		c.Varga[row.DivisionSign].Placements = append(c.Varga[row.DivisionSign].Placements, placement)
	}

	c.Mahadashas = PeriodTable(dasha.Mahadashas(bodies[domain.Moon].Longitude, in.Birth), in.Birth)

	s.log.Debug().
		Str("chart_id", c.ID).
		Int("division", division).
		Str("ascendant", ascSign.String()).
		Msg("Chart assembled")

	return c, nil
}

// ComputeFromEphemeris queries provider for every body at moment and
// assembles the chart for an observer at latitude/longitude.
func (s *Service) ComputeFromEphemeris(ctx context.Context, provider ephemeris.Provider, moment time.Time, latitude, longitude float64, division int) (*Chart, error) {
	jd := ephemeris.JulianDay(moment)

	positions := make([]domain.Position, 0, len(domain.Planets))
	for _, body := range domain.Planets {
		p, err := provider.Position(ctx, body, jd)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s position from %s: %w", body, provider.Name(), err)
		}
		p.Body = body
		positions = append(positions, p)
	}

	asc, err := provider.Ascendant(ctx, jd, latitude, longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to get ascendant from %s: %w", provider.Name(), err)
	}

	return s.Assemble(Input{
		Birth:     moment,
		Ascendant: asc,
		Positions: positions,
		Division:  division,
	})
}

func (s *Service) row(pos domain.Position, sunLon float64, division int) BodyRow {
	st := status.Classify(pos.Body, pos.Longitude, pos.Speed, sunLon)
	sign := domain.SignOf(pos.Longitude)

	color := st.Dignity.Color()
	if pos.Body == domain.Ascendant {
		color = AscendantColor
	}

	return BodyRow{
		Body:         pos.Body,
		Label:        pos.Body.Abbrev() + st.Suffix(),
		Longitude:    pos.Longitude,
		Degree:       formulas.FormatDMS(pos.Longitude),
		Sign:         sign,
		SignName:     sign.String(),
		DivisionSign: varga.Map(pos.Longitude, division),
		Nakshatra:    nakshatra.Locate(pos.Longitude),
		Status:       st,
		StatusText:   statusText(st),
		Color:        color,
	}
}

// completePositions indexes the input by body, adds the Ascendant and derives Ketu.
func completePositions(in Input) (map[domain.Body]domain.Position, error) {
	out := make(map[domain.Body]domain.Position, len(domain.Bodies))
	for _, p := range in.Positions {
		if p.Body == domain.Ketu || p.Body == domain.Ascendant {
			continue
		}
		p.Longitude = formulas.Normalize(p.Longitude)
		out[p.Body] = p
	}

	for _, body := range domain.Planets {
		if _, ok := out[body]; !ok {
			return nil, fmt.Errorf("%s: %w", body, ErrMissingBody)
		}
	}

	out[domain.Ascendant] = domain.Position{
		Body:      domain.Ascendant,
		Longitude: formulas.Normalize(in.Ascendant),
	}
	rahu := out[domain.Rahu]
	out[domain.Ketu] = domain.Position{
		Body:      domain.Ketu,
		Longitude: formulas.Normalize(rahu.Longitude + 180),
		Speed:     rahu.Speed,
	}
	return out, nil
}

func emptyHouses(ascSign domain.Sign) []House {
	houses := make([]House, 12)
	for i := range houses {
		sign := domain.Sign(i)
		houses[i] = House{
			Sign:        sign,
			Name:        sign.String(),
			Abbrev:      sign.Abbrev(),
			IsAscendant: sign == ascSign,
			Placements:  []Placement{},
		}
	}
	return houses
}

func statusText(st status.Status) string {
	var parts []string
	if st.Retrograde {
		parts = append(parts, "Retrograde")
	}
	if st.Combust {
		parts = append(parts, "Combust")
	}
	switch st.Dignity {
	case domain.DignityExalted:
		parts = append(parts, "Exalted")
	case domain.DignityDebilitated:
		parts = append(parts, "Debilitated")
	}
	return strings.Join(parts, ", ")
}
