// Package formulas holds the numeric helpers shared by the chart engines:
// zodiacal angle arithmetic, degree/minute/second decomposition and float sums.
package formulas

import "math"

const (
	// FullCircle is the number of degrees in the zodiac.
	FullCircle = 360.0
	// SignWidth is the width of one zodiac sign in degrees.
	SignWidth = 30.0
)

// Normalize wraps any real angle into [0, 360).
func Normalize(deg float64) float64 {
	n := math.Mod(deg, FullCircle)
	if n < 0 {
		n += FullCircle
	}
	// math.Mod of a tiny negative value can round up to exactly 360
	if n >= FullCircle {
		n = 0
	}
	return n
}

// Separation returns the shortest-arc distance between two longitudes, in [0, 180].
func Separation(a, b float64) float64 {
	diff := math.Abs(a - b)
	if diff > 180 {
		diff = FullCircle - diff
	}
	return diff
}

// InSign returns the degrees already traversed inside the longitude's sign, in [0, 30).
func InSign(lon float64) float64 {
	return math.Mod(Normalize(lon), SignWidth)
}

// SignIndex returns floor(lon/30) for a normalized longitude, in [0, 11].
func SignIndex(lon float64) int {
	return FloorDiv(Normalize(lon), SignWidth) % 12
}

// FloorDiv returns floor(x/width) as an int. Part indices are always floored,
// never rounded, so exact band boundaries fall into the upper band.
func FloorDiv(x, width float64) int {
	return int(math.Floor(x / width))
}

// Mod12 reduces an integer sign offset into [0, 11].
func Mod12(n int) int {
	m := n % 12
	if m < 0 {
		m += 12
	}
	return m
}
