package formulas

import (
	"fmt"
	"math"
)

// DMS is a longitude expressed as degrees within its sign, minutes and seconds.
type DMS struct {
	Degrees int `json:"degrees"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// ToDMS decomposes a longitude into degrees-within-sign, arc minutes and
// arc seconds. Each component is truncated, never rounded.
func ToDMS(lon float64) DMS {
	lon = Normalize(lon)
	return DMS{
		Degrees: int(math.Floor(math.Mod(lon, SignWidth))),
		Minutes: int(math.Floor(math.Mod(lon*60, 60))),
		Seconds: int(math.Floor(math.Mod(lon*3600, 60))),
	}
}

// String renders the value as DD°MM'SS".
func (d DMS) String() string {
	return fmt.Sprintf("%02d°%02d'%02d\"", d.Degrees, d.Minutes, d.Seconds)
}

// FormatDMS renders a longitude as DD°MM'SS" within its sign.
func FormatDMS(lon float64) string {
	return ToDMS(lon).String()
}
