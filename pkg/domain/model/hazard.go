package model

import (
	"math"

	"github.com/ecorisk-lab/climatevar/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// HazardFactor is a single cell of the hazard table
type HazardFactor struct {
	Sector     types.Sector
	Scenario   types.Scenario
	Multiplier float64
}

// HazardTable maps (sector, scenario) to a base hazard multiplier.
// A HazardTable is immutable once built and safe for concurrent use.
type HazardTable struct {
	sectors []types.Sector
	factors map[types.Sector]map[types.Scenario]float64
}

// NewHazardTable builds a table from factors. Every sector that appears must
// carry a non-negative multiplier for every supported scenario.
func NewHazardTable(factors []HazardFactor) (*HazardTable, error) {
	if len(factors) == 0 {
		return nil, goerr.Wrap(ErrInvalidHazard, "hazard table is empty")
	}

	t := &HazardTable{
		factors: make(map[types.Sector]map[types.Scenario]float64),
	}

	for _, f := range factors {
		if err := f.Sector.Validate(); err != nil {
			return nil, goerr.Wrap(ErrInvalidHazard, "invalid sector", goerr.V(SectorKey, f.Sector), goerr.V("cause", err.Error()))
		}
		if !f.Scenario.IsValid() {
			return nil, goerr.Wrap(ErrInvalidHazard, "unsupported scenario", goerr.V(SectorKey, f.Sector), goerr.V(ScenarioKey, f.Scenario))
		}
		if math.IsNaN(f.Multiplier) || math.IsInf(f.Multiplier, 0) || f.Multiplier < 0 {
			return nil, goerr.Wrap(ErrInvalidHazard, "multiplier must be a non-negative number",
				goerr.V(SectorKey, f.Sector), goerr.V(ScenarioKey, f.Scenario), goerr.V("multiplier", f.Multiplier))
		}

		row, ok := t.factors[f.Sector]
		if !ok {
			row = make(map[types.Scenario]float64)
			t.factors[f.Sector] = row
			t.sectors = append(t.sectors, f.Sector)
		}
		if _, dup := row[f.Scenario]; dup {
			return nil, goerr.Wrap(ErrInvalidHazard, "duplicate hazard factor", goerr.V(SectorKey, f.Sector), goerr.V(ScenarioKey, f.Scenario))
		}
		row[f.Scenario] = f.Multiplier
	}

	for _, sector := range t.sectors {
		for _, scenario := range types.AllScenarios() {
			if _, ok := t.factors[sector][scenario]; !ok {
				return nil, goerr.Wrap(ErrInvalidHazard, "missing hazard factor", goerr.V(SectorKey, sector), goerr.V(ScenarioKey, scenario))
			}
		}
	}

	return t, nil
}

// Multiplier returns the base multiplier for the pair, or ErrUnknownCategory
func (t *HazardTable) Multiplier(sector types.Sector, scenario types.Scenario) (float64, error) {
	row, ok := t.factors[sector]
	if !ok {
		return 0, goerr.Wrap(ErrUnknownCategory, "unknown sector", goerr.V(SectorKey, sector), goerr.V(ScenarioKey, scenario))
	}
	m, ok := row[scenario]
	if !ok {
		return 0, goerr.Wrap(ErrUnknownCategory, "unknown scenario", goerr.V(SectorKey, sector), goerr.V(ScenarioKey, scenario))
	}
	return m, nil
}

// Sectors returns the sectors in the order they were defined
func (t *HazardTable) Sectors() []types.Sector {
	out := make([]types.Sector, len(t.sectors))
	copy(out, t.sectors)
	return out
}

// Factors returns every cell, sectors in definition order and scenarios from mildest to most severe
func (t *HazardTable) Factors() []HazardFactor {
	out := make([]HazardFactor, 0, len(t.sectors)*len(types.AllScenarios()))
	for _, sector := range t.sectors {
		for _, scenario := range types.AllScenarios() {
			out = append(out, HazardFactor{
				Sector:     sector,
				Scenario:   scenario,
				Multiplier: t.factors[sector][scenario],
			})
		}
	}
	return out
}

// SeverityViolation reports a sector whose multiplier drops for a more severe scenario
type SeverityViolation struct {
	Sector types.Sector
	Milder HazardFactor
	Severe HazardFactor
}

// SeverityViolations lists places where a more severe scenario has a smaller
// multiplier than the one before it. Such tables are still usable.
func (t *HazardTable) SeverityViolations() []SeverityViolation {
	var violations []SeverityViolation
	scenarios := types.AllScenarios()
	for _, sector := range t.sectors {
		for i := 1; i < len(scenarios); i++ {
			prev := t.factors[sector][scenarios[i-1]]
			cur := t.factors[sector][scenarios[i]]
			if cur < prev {
				violations = append(violations, SeverityViolation{
					Sector: sector,
					Milder: HazardFactor{Sector: sector, Scenario: scenarios[i-1], Multiplier: prev},
					Severe: HazardFactor{Sector: sector, Scenario: scenarios[i], Multiplier: cur},
				})
			}
		}
	}
	return violations
}

var defaultHazardTable = mustHazardTable([]HazardFactor{
	{Sector: types.SectorEnergy, Scenario: types.ScenarioSSP126, Multiplier: 0.01},
	{Sector: types.SectorEnergy, Scenario: types.ScenarioSSP245, Multiplier: 0.03},
	{Sector: types.SectorEnergy, Scenario: types.ScenarioSSP585, Multiplier: 0.07},
	{Sector: types.SectorManufacturing, Scenario: types.ScenarioSSP126, Multiplier: 0.015},
	{Sector: types.SectorManufacturing, Scenario: types.ScenarioSSP245, Multiplier: 0.04},
	{Sector: types.SectorManufacturing, Scenario: types.ScenarioSSP585, Multiplier: 0.08},
	{Sector: types.SectorRealEstate, Scenario: types.ScenarioSSP126, Multiplier: 0.02},
	{Sector: types.SectorRealEstate, Scenario: types.ScenarioSSP245, Multiplier: 0.06},
	{Sector: types.SectorRealEstate, Scenario: types.ScenarioSSP585, Multiplier: 0.10},
	{Sector: types.SectorFinance, Scenario: types.ScenarioSSP126, Multiplier: 0.005},
	{Sector: types.SectorFinance, Scenario: types.ScenarioSSP245, Multiplier: 0.015},
	{Sector: types.SectorFinance, Scenario: types.ScenarioSSP585, Multiplier: 0.04},
})

// DefaultHazardTable returns the built-in table of simplified dummy multipliers
func DefaultHazardTable() *HazardTable {
	return defaultHazardTable
}

func mustHazardTable(factors []HazardFactor) *HazardTable {
	t, err := NewHazardTable(factors)
	if err != nil {
		panic(err)
	}
	return t
}
