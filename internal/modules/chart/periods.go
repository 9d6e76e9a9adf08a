package chart

import (
	"math"
	"time"

	"github.com/aristath/jyotish/internal/domain"
	"github.com/aristath/jyotish/internal/modules/dasha"
)

// DateLayout is the date format of period tables. Dates are rendered in UTC.
const DateLayout = "2006-01-02"

// PeriodRow is one row of a dasha table
type PeriodRow struct {
	Lord    domain.Body   `json:"lord"`
	Label   string        `json:"label"`
	Level   domain.Level  `json:"level"`
	Lineage []domain.Body `json:"lineage"`
	Start   string        `json:"start"`
	End     string        `json:"end"`
	Years   float64       `json:"years"`
	Age     *float64      `json:"age,omitempty"` // Mahadasha rows only
}

// PeriodTable renders periods as table rows. The age column is filled for
// Mahadashas only, rounded to one decimal.
func PeriodTable(periods []dasha.Period, birth time.Time) []PeriodRow {
	rows := make([]PeriodRow, 0, len(periods))
	for _, p := range periods {
		row := PeriodRow{
			Lord:    p.Lord,
			Label:   p.Lord.String(),
			Level:   p.Level,
			Lineage: p.Lineage,
			Start:   p.Start.UTC().Format(DateLayout),
			End:     p.End.UTC().Format(DateLayout),
			Years:   p.Years,
		}
		if p.Level == domain.LevelMahadasha {
			age := math.Round(p.AgeAtStart(birth)*10) / 10
			row.Age = &age
		}
		rows = append(rows, row)
	}
	return rows
}
