package model

import (
	"math"

	"github.com/ecorisk-lab/climatevar/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// BaselineYear is the year the hazard multiplier starts growing from
	BaselineYear = 2020
	// YearsPerStep is the number of years over which the multiplier grows by one base unit
	YearsPerStep = 5
	// ExposurePerTon is the assumed dollar exposure per tCO2e
	ExposurePerTon = 100.0
)

// ProjectionYears returns the fixed projection horizon in ascending order
func ProjectionYears() []int {
	return []int{2025, 2030, 2050}
}

// EmissionsInput holds scope 1/2/3 emissions in tCO2e
type EmissionsInput struct {
	Scope1 float64
	Scope2 float64
	Scope3 float64
}

// Validate checks that every scope is a finite non-negative number
func (e EmissionsInput) Validate() error {
	scopes := []struct {
		name  string
		value float64
	}{
		{"scope1", e.Scope1},
		{"scope2", e.Scope2},
		{"scope3", e.Scope3},
	}
	for _, s := range scopes {
		if err := validateEmissions(s.value); err != nil {
			return goerr.Wrap(err, "invalid emissions", goerr.V("scope", s.name))
		}
	}
	return nil
}

// Total returns scope1 + scope2 + scope3
func (e EmissionsInput) Total() float64 {
	return e.Scope1 + e.Scope2 + e.Scope3
}

// ProjectionRow is the projected hazard and value at risk for one year
type ProjectionRow struct {
	Year             int
	HazardMultiplier float64
	ValueAtRisk      float64
}

// ProjectionResult is the ordered set of rows for ProjectionYears
type ProjectionResult struct {
	Rows []ProjectionRow
}

// Years returns the year of each row
func (r *ProjectionResult) Years() []int {
	years := make([]int, len(r.Rows))
	for i, row := range r.Rows {
		years[i] = row.Year
	}
	return years
}

// TimeScale returns how many steps have elapsed between BaselineYear and year
func TimeScale(year int) float64 {
	return float64(year-BaselineYear) / YearsPerStep
}

// ValueAtRisk converts emissions and a hazard multiplier into a dollar exposure
func ValueAtRisk(totalEmissions, hazardMultiplier float64) float64 {
	return totalEmissions * hazardMultiplier * ExposurePerTon
}

// Project computes the value-at-risk projection for the pair. It has no side
// effects and returns the same result for the same inputs.
func (t *HazardTable) Project(sector types.Sector, scenario types.Scenario, totalEmissions float64) (*ProjectionResult, error) {
	if err := validateEmissions(totalEmissions); err != nil {
		return nil, goerr.Wrap(err, "invalid total emissions")
	}

	base, err := t.Multiplier(sector, scenario)
	if err != nil {
		return nil, err
	}

	years := ProjectionYears()
	result := &ProjectionResult{
		Rows: make([]ProjectionRow, 0, len(years)),
	}
	for _, year := range years {
		multiplier := base * TimeScale(year)
		row := ProjectionRow{
			Year:             year,
			HazardMultiplier: multiplier,
			ValueAtRisk:      ValueAtRisk(totalEmissions, multiplier),
		}
		// A finite input can still overflow once scaled; the result is all or nothing.
		if math.IsInf(row.HazardMultiplier, 0) || math.IsInf(row.ValueAtRisk, 0) || math.IsNaN(row.ValueAtRisk) {
			return nil, goerr.Wrap(ErrInvalidInput, "emissions too large",
				goerr.V(EmissionsKey, totalEmissions),
				goerr.V(SectorKey, sector),
				goerr.V(ScenarioKey, scenario),
				goerr.V("year", year),
			)
		}
		result.Rows = append(result.Rows, row)
	}

	return result, nil
}

func validateEmissions(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return goerr.Wrap(ErrInvalidInput, "emissions must be a finite number", goerr.V(EmissionsKey, v))
	}
	if v < 0 {
		return goerr.Wrap(ErrInvalidInput, "emissions must not be negative", goerr.V(EmissionsKey, v))
	}
	return nil
}
