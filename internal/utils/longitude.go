package utils

import (
	"math"
	"net/http"
	"strconv"
)

// ParseLongitude parses a path longitude, answering 400 unless it lies in [0, 360).
func ParseLongitude(w http.ResponseWriter, raw string) (float64, bool) {
	lon, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(lon) || lon < 0 || lon >= 360 {
		http.Error(w, "longitude must be a number in [0, 360)", http.StatusBadRequest)
		return 0, false
	}
	return lon, true
}
