package config

import (
	"os"
	"sort"

	"github.com/ecorisk-lab/climatevar/pkg/domain/model"
	"github.com/ecorisk-lab/climatevar/pkg/domain/types"
	"github.com/ecorisk-lab/climatevar/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// HazardTableFile is the TOML layout of a hazard table override:
//
//	[[sector]]
//	name = "Energy"
//	[sector.multipliers]
//	"SSP1-2.6" = 0.01
//	"SSP2-4.5" = 0.03
//	"SSP5-8.5" = 0.07
type HazardTableFile struct {
	Sectors []HazardSector `toml:"sector"`
}

// HazardSector is one row of the hazard table file
type HazardSector struct {
	Name        string             `toml:"name"`
	Multipliers map[string]float64 `toml:"multipliers"`
}

// Validate checks the row is complete before it is converted into factors
func (s *HazardSector) Validate() error {
	if s.Name == "" {
		return goerr.Wrap(ErrMissingName, "sector name is required")
	}
	for key := range s.Multipliers {
		if !types.Scenario(key).IsValid() {
			return goerr.Wrap(ErrUnknownScenario, "unknown scenario in hazard table",
				goerr.V(SectorKey, s.Name), goerr.V(ScenarioKey, key))
		}
	}
	for _, scenario := range types.AllScenarios() {
		if _, ok := s.Multipliers[scenario.String()]; !ok {
			return goerr.Wrap(ErrMissingScenario, "scenario missing from hazard table",
				goerr.V(SectorKey, s.Name), goerr.V(ScenarioKey, scenario))
		}
	}
	return nil
}

// ToDomain converts the file into an immutable hazard table
func (f *HazardTableFile) ToDomain() (*model.HazardTable, error) {
	var factors []model.HazardFactor
	for i := range f.Sectors {
		s := &f.Sectors[i]
		if err := s.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid sector", goerr.V(SectorIndexKey, i))
		}

		scenarios := make([]string, 0, len(s.Multipliers))
		for key := range s.Multipliers {
			scenarios = append(scenarios, key)
		}
		sort.Slice(scenarios, func(a, b int) bool {
			return types.Scenario(scenarios[a]).Severity() < types.Scenario(scenarios[b]).Severity()
		})

		for _, key := range scenarios {
			factors = append(factors, model.HazardFactor{
				Sector:     types.Sector(s.Name),
				Scenario:   types.Scenario(key),
				Multiplier: s.Multipliers[key],
			})
		}
	}

	table, err := model.NewHazardTable(factors)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build hazard table")
	}
	return table, nil
}

// LoadHazardTable reads and validates a hazard table TOML file
func LoadHazardTable(path string) (*model.HazardTable, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrConfigNotFound, "hazard table file not found", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read hazard table file", goerr.V(ConfigPathKey, path))
	}

	var file HazardTableFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse hazard table TOML", goerr.V(ConfigPathKey, path), goerr.V("cause", err.Error()))
	}

	table, err := file.ToDomain()
	if err != nil {
		return nil, goerr.Wrap(err, "hazard table validation failed", goerr.V(ConfigPathKey, path))
	}
	return table, nil
}

// Hazard holds the CLI flag selecting the hazard table
type Hazard struct {
	path string
}

// Flags returns CLI flags for hazard table configuration
func (h *Hazard) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "hazard-table",
			Usage:       "Path to a TOML hazard table replacing the built-in multipliers",
			Category:    "Hazard",
			Sources:     cli.EnvVars("CLIMATEVAR_HAZARD_TABLE"),
			Destination: &h.path,
		},
	}
}

// Path returns the configured hazard table path
func (h *Hazard) Path() string {
	return h.path
}

// Configure returns the hazard table from the configured file, or the built-in table when no file is given
func (h *Hazard) Configure() (*model.HazardTable, error) {
	if h.path == "" {
		return model.DefaultHazardTable(), nil
	}

	table, err := LoadHazardTable(h.path)
	if err != nil {
		return nil, err
	}

	logger := logging.Default()
	logger.Info("Loaded hazard table", "path", h.path, "sectors", len(table.Sectors()))
	for _, v := range table.SeverityViolations() {
		logger.Warn("Hazard multiplier decreases for a more severe scenario",
			"sector", v.Sector,
			"milder", v.Milder.Scenario,
			"milder_multiplier", v.Milder.Multiplier,
			"severe", v.Severe.Scenario,
			"severe_multiplier", v.Severe.Multiplier,
		)
	}
	return table, nil
}
