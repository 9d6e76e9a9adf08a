// Package nakshatra locates the lunar mansion and pada of a longitude.
package nakshatra

import (
	"math"

	"github.com/aristath/jyotish/internal/domain"
	"github.com/aristath/jyotish/pkg/formulas"
)

// Count is the number of lunar mansions in the zodiac.
const Count = 27

// Width is the arc covered by one mansion (13°20').
const Width = formulas.FullCircle / Count

// Names of the 27 mansions starting at 0° Aries
var Names = [Count]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// Lords is the fixed nine-lord cycle. It rules mansions in order and seeds the
// Vimshottari dasha sequence.
var Lords = [9]domain.Body{
	domain.Ketu, domain.Venus, domain.Sun, domain.Moon, domain.Mars,
	domain.Rahu, domain.Jupiter, domain.Saturn, domain.Mercury,
}

// Placement is the mansion a longitude falls in
type Placement struct {
	Index    int         `json:"index"` // 0..26
	Name     string      `json:"name"`
	Pada     int         `json:"pada"`     // 1..4
	Lord     domain.Body `json:"lord"`     // Ruling lord
	Fraction float64     `json:"fraction"` // Share of the mansion already traversed, [0, 1)
}

// boundaryTolerance snaps pada positions that land within float noise of a
// pada start onto that start, so 40° is the first pada of Rohini rather than
// the end of Krittika.
const boundaryTolerance = 1e-9

// Locate returns the mansion, pada and ruling lord for a longitude.
func Locate(lon float64) Placement {
	lon = formulas.Normalize(lon)

	// Position measured in padas, [0, 108]. Index, pada and fraction all
	// derive from it.
	q := lon * Count * 4 / formulas.FullCircle
	if r := math.Round(q); formulas.ApproxEqual(q, r, boundaryTolerance) {
		q = r
	}
	quarter := int(math.Floor(q))
	mansion := quarter / 4
	fraction := (q - float64(mansion*4)) / 4
	index := mansion % Count

	return Placement{
		Index:    index,
		Name:     Names[index],
		Pada:     quarter%4 + 1,
		Lord:     Lords[index%len(Lords)],
		Fraction: fraction,
	}
}
