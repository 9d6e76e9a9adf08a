// Package status classifies a body's retrograde, combustion and dignity state.
package status

import (
	"github.com/aristath/jyotish/internal/domain"
	"github.com/aristath/jyotish/pkg/formulas"
)

// Status is the per-chart annotation of one body
type Status struct {
	Retrograde bool           `json:"retrograde"`
	Combust    bool           `json:"combust"`
	Dignity    domain.Dignity `json:"dignity"`
}

// Suffix renders the status markers shown next to a body label
func (s Status) Suffix() string {
	suffix := ""
	if s.Retrograde {
		suffix += "(R)"
	}
	if s.Combust {
		suffix += "(C)"
	}
	return suffix
}

// combustLimit holds the maximum separation from the Sun, in degrees, at which
// a body is combust.
type combustLimit struct {
	direct     float64
	retrograde float64
}

// The Moon's limit is kept for reference only; combustion is surfaced for the
// five star planets and never evaluated for the Moon.
var combustLimits = map[domain.Body]combustLimit{
	domain.Moon:    {12, 12},
	domain.Mars:    {17, 17},
	domain.Mercury: {14, 12},
	domain.Jupiter: {11, 11},
	domain.Venus:   {10, 8},
	domain.Saturn:  {15, 15},
}

var exaltationSigns = map[domain.Body]domain.Sign{
	domain.Sun:     domain.Aries,
	domain.Moon:    domain.Taurus,
	domain.Mars:    domain.Capricorn,
	domain.Mercury: domain.Virgo,
	domain.Jupiter: domain.Cancer,
	domain.Venus:   domain.Pisces,
	domain.Saturn:  domain.Libra,
}

// Classify derives the status of body from its longitude and speed and the
// Sun's longitude.
func Classify(body domain.Body, lon, speed, sunLon float64) Status {
	st := Status{
		Retrograde: IsRetrograde(body, speed),
		Dignity:    DignityOf(body, domain.SignOf(lon)),
	}
	st.Combust = IsCombust(body, lon, sunLon, st.Retrograde)
	return st
}

// IsRetrograde reports retrograde motion. The nodes are always retrograde;
// the luminaries and the Ascendant never are.
func IsRetrograde(body domain.Body, speed float64) bool {
	switch {
	case body.IsNode():
		return true
	case body.IsLuminary(), body == domain.Ascendant:
		return false
	default:
		return speed < 0
	}
}

// IsCombust reports whether body is within its combustion limit of the Sun.
// Only Mars, Mercury, Jupiter, Venus and Saturn can be combust.
func IsCombust(body domain.Body, lon, sunLon float64, retrograde bool) bool {
	if body.IsLuminary() || body.IsNode() || body == domain.Ascendant {
		return false
	}
	limit, ok := CombustLimit(body, retrograde)
	if !ok {
		return false
	}
	return formulas.Separation(formulas.Normalize(lon), formulas.Normalize(sunLon)) <= limit
}

// CombustLimit returns the combustion threshold for body.
func CombustLimit(body domain.Body, retrograde bool) (float64, bool) {
	l, ok := combustLimits[body]
	if !ok {
		return 0, false
	}
	if retrograde {
		return l.retrograde, true
	}
	return l.direct, true
}

// ExaltationSign returns the sign in which body is exalted.
func ExaltationSign(body domain.Body) (domain.Sign, bool) {
	s, ok := exaltationSigns[body]
	return s, ok
}

// DignityOf classifies body in sign. Bodies without an exaltation sign
// (Ascendant and the nodes) are always neutral.
func DignityOf(body domain.Body, sign domain.Sign) domain.Dignity {
	exalted, ok := exaltationSigns[body]
	switch {
	case !ok:
		return domain.DignityNeutral
	case sign == exalted:
		return domain.DignityExalted
	case sign == exalted.Opposite():
		return domain.DignityDebilitated
	default:
		return domain.DignityNeutral
	}
}
