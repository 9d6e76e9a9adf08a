// Package domain provides core domain models and types.
package domain

import (
	"fmt"
	"strings"

	"github.com/aristath/jyotish/pkg/formulas"
)

// Body is a point placed in a chart
type Body int

const (
	Ascendant Body = iota
	Sun
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu // Mean ascending lunar node
	Ketu // Always Rahu + 180°, never queried from the ephemeris
)

var bodyNames = [...]string{"Ascendant", "Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu"}

var bodyAbbrevs = [...]string{"ASC", "Sun", "Moo", "Mar", "Mer", "Jup", "Ven", "Sat", "Rah", "Ket"}

// Bodies lists every chart body in display order.
var Bodies = []Body{Ascendant, Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

// Planets lists the bodies whose positions come from the ephemeris.
var Planets = []Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu}

// String returns the full body name
func (b Body) String() string {
	if b < Ascendant || b > Ketu {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b]
}

// Abbrev returns the three-letter chart label
func (b Body) Abbrev() string {
	if b < Ascendant || b > Ketu {
		return "?"
	}
	return bodyAbbrevs[b]
}

// IsNode reports whether the body is one of the lunar nodes
func (b Body) IsNode() bool {
	return b == Rahu || b == Ketu
}

// IsLuminary reports whether the body is the Sun or the Moon
func (b Body) IsLuminary() bool {
	return b == Sun || b == Moon
}

// MarshalText encodes the body by name
func (b Body) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText accepts a full name or abbreviation, case-insensitively
func (b *Body) UnmarshalText(text []byte) error {
	parsed, err := ParseBody(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseBody resolves a full name or abbreviation, case-insensitively
func ParseBody(name string) (Body, error) {
	name = strings.TrimSpace(name)
	for i := range bodyNames {
		if strings.EqualFold(name, bodyNames[i]) || strings.EqualFold(name, bodyAbbrevs[i]) {
			return Body(i), nil
		}
	}
	return 0, fmt.Errorf("unknown body %q", name)
}

// Sign is a 30° zodiac segment, Aries(0) through Pisces(11)
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [...]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var signAbbrevs = [...]string{"Ar", "Ta", "Ge", "Ca", "Le", "Vi", "Li", "Sc", "Sg", "Cp", "Aq", "Pi"}

// SignOf returns the D1 sign of a longitude
func SignOf(lon float64) Sign {
	return Sign(formulas.SignIndex(lon))
}

// String returns the full sign name
func (s Sign) String() string {
	return signNames[formulas.Mod12(int(s))]
}

// Abbrev returns the two-letter sign label
func (s Sign) Abbrev() string {
	return signAbbrevs[formulas.Mod12(int(s))]
}

// Opposite returns the sign six places away
func (s Sign) Opposite() Sign {
	return Sign(formulas.Mod12(int(s) + 6))
}

// Position is a raw ephemeris reading for one body
type Position struct {
	Body      Body    `json:"body"`
	Longitude float64 `json:"longitude"` // Sidereal degrees, [0, 360)
	Speed     float64 `json:"speed"`     // Degrees per day, negative when retrograde
}

// Dignity classifies a body's strength by sign
type Dignity string

const (
	DignityNeutral     Dignity = "neutral"
	DignityExalted     Dignity = "exalted"
	DignityDebilitated Dignity = "debilitated"
)

// Color returns the display colour for the dignity
func (d Dignity) Color() string {
	switch d {
	case DignityExalted:
		return "green"
	case DignityDebilitated:
		return "red"
	default:
		return "black"
	}
}

// Level is the depth of a dasha period in the tree
type Level int

const (
	LevelMahadasha Level = iota + 1
	LevelAntardasha
	LevelPratyantardasha
)

// String returns the level name
func (l Level) String() string {
	switch l {
	case LevelMahadasha:
		return "mahadasha"
	case LevelAntardasha:
		return "antardasha"
	case LevelPratyantardasha:
		return "pratyantardasha"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// MarshalText encodes the level by name
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText decodes a level name
func (l *Level) UnmarshalText(text []byte) error {
	for _, candidate := range []Level{LevelMahadasha, LevelAntardasha, LevelPratyantardasha} {
		if strings.EqualFold(string(text), candidate.String()) {
			*l = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown dasha level %q", string(text))
}
