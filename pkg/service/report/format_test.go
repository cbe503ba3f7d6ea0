package report_test

import (
	"testing"

	"github.com/ecorisk-lab/climatevar/pkg/domain/model"
	"github.com/ecorisk-lab/climatevar/pkg/domain/types"
	"github.com/ecorisk-lab/climatevar/pkg/service/report"
	"github.com/m-mizutani/gt"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{75000, "$75,000"},
		{450000, "$450,000"},
		{1234567.89, "$1,234,568"},
		{999.4, "$999"},
		{-1500, "-$1,500"},
	}
	for _, tt := range tests {
		gt.Value(t, report.FormatCurrency(tt.in)).Equal(tt.want)
	}
}

func TestFormatMultiplier(t *testing.T) {
	gt.Value(t, report.FormatMultiplier(0.03)).Equal("0.030")
	gt.Value(t, report.FormatMultiplier(0.18)).Equal("0.180")
	gt.Value(t, report.FormatMultiplier(0.0025)).Equal("0.003")
	gt.Value(t, report.FormatMultiplier(0)).Equal("0.000")
}

func TestFormatTons(t *testing.T) {
	gt.Value(t, report.FormatTons(25000)).Equal("25,000")
	gt.Value(t, report.FormatTons(0)).Equal("0")
}

func TestRows(t *testing.T) {
	result, err := model.DefaultHazardTable().Project(types.SectorEnergy, types.ScenarioSSP245, 25000)
	gt.NoError(t, err).Required()

	rows := report.Rows(result)
	gt.Array(t, rows).Equal([]report.Row{
		{Year: "2025", HazardMultiplier: "0.030", ValueAtRisk: "$75,000"},
		{Year: "2030", HazardMultiplier: "0.060", ValueAtRisk: "$150,000"},
		{Year: "2050", HazardMultiplier: "0.180", ValueAtRisk: "$450,000"},
	})
}

func TestColumns(t *testing.T) {
	gt.Array(t, report.Columns()).Equal([]string{"Year", "Hazard Multiplier", "Value at Risk ($)"})
}
