// Package dasha builds the Vimshottari dasha tree.
//
// The 120-year cycle is split among the nine nakshatra lords. Mahadashas are
// seeded by the Moon's mansion at birth; each period can be expanded into nine
// proportional sub-periods, two levels deep. Expansion is a pure function of
// the explicit parent period, so no drill-down selection is retained here.
package dasha

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/aristath/jyotish/internal/domain"
	"github.com/aristath/jyotish/internal/modules/nakshatra"
	"github.com/aristath/jyotish/pkg/formulas"
)

// CycleYears is the length of the full Vimshottari cycle.
const CycleYears = 120.0

// DaysPerYear is the Julian year used to convert dasha years to time.
const DaysPerYear = 365.25

// ErrUnknownLord is returned when a lord outside the nine-lord cycle is requested.
var ErrUnknownLord = errors.New("not a dasha lord")

var lordYears = map[domain.Body]float64{
	domain.Ketu:    7,
	domain.Venus:   20,
	domain.Sun:     6,
	domain.Moon:    10,
	domain.Mars:    7,
	domain.Rahu:    18,
	domain.Jupiter: 16,
	domain.Saturn:  19,
	domain.Mercury: 17,
}

// Period is one node of the dasha tree
type Period struct {
	Level   domain.Level  `json:"level"`
	Lord    domain.Body   `json:"lord"`
	Lineage []domain.Body `json:"lineage"` // Lords from the Mahadasha down to this period
	Start   time.Time     `json:"start"`
	End     time.Time     `json:"end"`
	Years   float64       `json:"years"`
}

// Contains reports whether t falls in [Start, End).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// AgeAtStart is the native's age in years when the period starts, clamped at
// zero for the period running at birth.
func (p Period) AgeAtStart(birth time.Time) float64 {
	age := p.Start.Sub(birth).Hours() / 24 / DaysPerYear
	return math.Max(age, 0)
}

// YearsOf returns the cycle allotment of a dasha lord.
func YearsOf(lord domain.Body) (float64, error) {
	y, ok := lordYears[lord]
	if !ok {
		return 0, fmt.Errorf("%s: %w", lord, ErrUnknownLord)
	}
	return y, nil
}

// IsLord reports whether body takes part in the dasha cycle.
func IsLord(body domain.Body) bool {
	_, ok := lordYears[body]
	return ok
}

// yearsToDuration converts dasha years to wall-clock time with the Julian year.
func yearsToDuration(years float64) time.Duration {
	return time.Duration(math.Round(years * DaysPerYear * 24 * float64(time.Hour)))
}

func lordIndex(lord domain.Body) int {
	for i, l := range nakshatra.Lords {
		if l == lord {
			return i
		}
	}
	return -1
}

// rotation returns the nine lords starting at start.
func rotation(start int) []domain.Body {
	out := make([]domain.Body, len(nakshatra.Lords))
	for i := range out {
		out[i] = nakshatra.Lords[(start+i)%len(nakshatra.Lords)]
	}
	return out
}

// sequence lays out contiguous periods from start, one per lord, with the
// duration of each given by yearsFor. The last period ends exactly at end
// when end is set, so children close on their parent's instant.
func sequence(level domain.Level, parent []domain.Body, start, end time.Time, lords []domain.Body, yearsFor func(domain.Body) float64) []Period {
	periods := make([]Period, 0, len(lords))
	cursor := start
	for i, lord := range lords {
		years := yearsFor(lord)
		next := cursor.Add(yearsToDuration(years))
		if i == len(lords)-1 && !end.IsZero() {
			next = end
		}

		lineage := make([]domain.Body, 0, len(parent)+1)
		lineage = append(lineage, parent...)
		lineage = append(lineage, lord)

		periods = append(periods, Period{
			Level:   level,
			Lord:    lord,
			Lineage: lineage,
			Start:   cursor,
			End:     next,
			Years:   years,
		})
		cursor = next
	}
	return periods
}

// Balance describes the Mahadasha running at birth
type Balance struct {
	Lord           domain.Body `json:"lord"`
	ElapsedYears   float64     `json:"elapsed_years"`
	RemainingYears float64     `json:"remaining_years"`
}

// BirthBalance returns the lord of the Mahadasha running at birth and how much
// of it had already elapsed.
func BirthBalance(moonLon float64) Balance {
	placement := nakshatra.Locate(moonLon)
	lord := placement.Lord
	total := lordYears[lord]
	remaining := total * (1 - placement.Fraction)
	return Balance{
		Lord:           lord,
		ElapsedYears:   total - remaining,
		RemainingYears: remaining,
	}
}

// Mahadashas builds the nine top-level periods for a Moon longitude and birth
// instant. The first period starts before birth by the share of the Moon's
// mansion already traversed.
func Mahadashas(moonLon float64, birth time.Time) []Period {
	balance := BirthBalance(moonLon)
	start := birth.Add(-yearsToDuration(balance.ElapsedYears))
	lords := rotation(lordIndex(balance.Lord))
	return sequence(domain.LevelMahadasha, nil, start, time.Time{}, lords, func(l domain.Body) float64 {
		return lordYears[l]
	})
}

// Antardashas splits the Mahadasha of mahaLord, starting at start, into its
// nine sub-periods.
func Antardashas(mahaLord domain.Body, start time.Time) ([]Period, error) {
	mahaYears, err := YearsOf(mahaLord)
	if err != nil {
		return nil, err
	}
	return antardashas(mahaLord, mahaYears, start, start.Add(yearsToDuration(mahaYears))), nil
}

func antardashas(mahaLord domain.Body, mahaYears float64, start, end time.Time) []Period {
	lords := rotation(lordIndex(mahaLord))
	return sequence(domain.LevelAntardasha, []domain.Body{mahaLord}, start, end, lords, func(l domain.Body) float64 {
		return mahaYears * lordYears[l] / CycleYears
	})
}

// Pratyantardashas splits the Antardasha antarLord of Mahadasha mahaLord,
// starting at start, into its nine sub-periods.
func Pratyantardashas(mahaLord, antarLord domain.Body, start time.Time) ([]Period, error) {
	mahaYears, err := YearsOf(mahaLord)
	if err != nil {
		return nil, err
	}
	antarYears, err := YearsOf(antarLord)
	if err != nil {
		return nil, err
	}
	end := start.Add(yearsToDuration(mahaYears * antarYears / CycleYears))
	return pratyantardashas(mahaLord, mahaYears, antarLord, antarYears, start, end), nil
}

func pratyantardashas(mahaLord domain.Body, mahaYears float64, antarLord domain.Body, antarYears float64, start, end time.Time) []Period {
	lords := rotation(lordIndex(antarLord))
	return sequence(domain.LevelPratyantardasha, []domain.Body{mahaLord, antarLord}, start, end, lords, func(l domain.Body) float64 {
		return mahaYears * antarYears * lordYears[l] / (CycleYears * CycleYears)
	})
}

// Expand returns the children of p, ending exactly at p.End. Pratyantardashas
// are the deepest level and have no children.
func Expand(p Period) ([]Period, error) {
	switch p.Level {
	case domain.LevelMahadasha:
		mahaYears, err := YearsOf(p.Lord)
		if err != nil {
			return nil, err
		}
		return antardashas(p.Lord, mahaYears, p.Start, p.End), nil
	case domain.LevelAntardasha:
		if len(p.Lineage) < 2 {
			return nil, fmt.Errorf("antardasha %s has no parent lord", p.Lord)
		}
		mahaYears, err := YearsOf(p.Lineage[0])
		if err != nil {
			return nil, err
		}
		antarYears, err := YearsOf(p.Lord)
		if err != nil {
			return nil, err
		}
		return pratyantardashas(p.Lineage[0], mahaYears, p.Lord, antarYears, p.Start, p.End), nil
	default:
		return nil, nil
	}
}

// SpanYears sums the allotted years of a list of periods.
func SpanYears(periods []Period) float64 {
	years := make([]float64, len(periods))
	for i, p := range periods {
		years[i] = p.Years
	}
	return formulas.Sum(years)
}

// Active returns the period containing t.
func Active(periods []Period, t time.Time) (Period, bool) {
	for _, p := range periods {
		if p.Contains(t) {
			return p, true
		}
	}
	return Period{}, false
}

// Lineage returns the Mahadasha, Antardasha and Pratyantardasha running at t
// for the given birth data. It returns fewer than three periods only when t
// lies outside the 120-year schedule.
func Lineage(moonLon float64, birth, t time.Time) []Period {
	var chain []Period
	level := Mahadashas(moonLon, birth)
	for len(level) > 0 {
		p, ok := Active(level, t)
		if !ok {
			break
		}
		chain = append(chain, p)
		children, err := Expand(p)
		if err != nil {
			break
		}
		level = children
	}
	return chain
}

// Snapshot is the running dasha lineage observed at a moment
type Snapshot struct {
	At      time.Time `json:"at"`
	Lineage []Period  `json:"lineage"`
}

// Key identifies the lineage by its lords, e.g. "Moon/Mars/Rahu".
func (s Snapshot) Key() string {
	key := ""
	for i, p := range s.Lineage {
		if i > 0 {
			key += "/"
		}
		key += p.Lord.String()
	}
	return key
}
