package report

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/ecorisk-lab/climatevar/pkg/domain/model"
)

// Column headers shared by the dashboard table and the CSV export
const (
	ColumnYear             = "Year"
	ColumnHazardMultiplier = "Hazard Multiplier"
	ColumnValueAtRisk      = "Value at Risk ($)"
)

// Columns returns the table header in display order
func Columns() []string {
	return []string{ColumnYear, ColumnHazardMultiplier, ColumnValueAtRisk}
}

// Row is a ProjectionRow with every cell formatted for display
type Row struct {
	Year             string
	HazardMultiplier string
	ValueAtRisk      string
}

// FormatCurrency renders v as whole dollars with thousands separators, e.g. $75,000
func FormatCurrency(v float64) string {
	r := wholeNumber(v)
	if r < 0 {
		return "-$" + humanize.Commaf(-r)
	}
	return "$" + humanize.Commaf(r)
}

// FormatMultiplier renders a hazard multiplier with three decimals
func FormatMultiplier(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// FormatTons renders an emissions figure with thousands separators and no decimals
func FormatTons(v float64) string {
	return humanize.Commaf(wholeNumber(v))
}

// wholeNumber rounds half to even and folds negative zero into zero
func wholeNumber(v float64) float64 {
	r := math.RoundToEven(v)
	if r == 0 {
		return 0
	}
	return r
}

// Rows formats every row of the projection
func Rows(result *model.ProjectionResult) []Row {
	rows := make([]Row, len(result.Rows))
	for i, r := range result.Rows {
		rows[i] = Row{
			Year:             strconv.Itoa(r.Year),
			HazardMultiplier: FormatMultiplier(r.HazardMultiplier),
			ValueAtRisk:      FormatCurrency(r.ValueAtRisk),
		}
	}
	return rows
}
