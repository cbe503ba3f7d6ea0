package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ecorisk-lab/climatevar/pkg/cli/config"
	"github.com/ecorisk-lab/climatevar/pkg/domain/model"
	"github.com/ecorisk-lab/climatevar/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hazard.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadHazardTable(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name: "valid table",
			content: `
[[sector]]
name = "Energy"
[sector.multipliers]
"SSP1-2.6" = 0.01
"SSP2-4.5" = 0.03
"SSP5-8.5" = 0.07

[[sector]]
name = "Agriculture"
[sector.multipliers]
"SSP5-8.5" = 0.12
"SSP1-2.6" = 0.02
"SSP2-4.5" = 0.05
`,
		},
		{
			name: "missing name",
			content: `
[[sector]]
[sector.multipliers]
"SSP1-2.6" = 0.01
"SSP2-4.5" = 0.03
"SSP5-8.5" = 0.07
`,
			wantErr: config.ErrMissingName,
		},
		{
			name: "unknown scenario",
			content: `
[[sector]]
name = "Energy"
[sector.multipliers]
"SSP1-2.6" = 0.01
"SSP2-4.5" = 0.03
"SSP5-8.5" = 0.07
"SSP3-7.0" = 0.05
`,
			wantErr: config.ErrUnknownScenario,
		},
		{
			name: "missing scenario",
			content: `
[[sector]]
name = "Energy"
[sector.multipliers]
"SSP1-2.6" = 0.01
"SSP5-8.5" = 0.07
`,
			wantErr: config.ErrMissingScenario,
		},
		{
			name: "negative multiplier",
			content: `
[[sector]]
name = "Energy"
[sector.multipliers]
"SSP1-2.6" = -0.01
"SSP2-4.5" = 0.03
"SSP5-8.5" = 0.07
`,
			wantErr: model.ErrInvalidHazard,
		},
		{
			name:    "empty file",
			content: ``,
			wantErr: model.ErrInvalidHazard,
		},
		{
			name:    "broken TOML",
			content: `[[sector]`,
			wantErr: config.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := config.LoadHazardTable(writeFile(t, tt.content))
			if tt.wantErr != nil {
				gt.Error(t, err)
				gt.Bool(t, errors.Is(err, tt.wantErr)).True()
				return
			}

			gt.NoError(t, err).Required()
			gt.Array(t, table.Sectors()).Equal([]types.Sector{"Energy", "Agriculture"})

			m, err := table.Multiplier("Agriculture", types.ScenarioSSP585)
			gt.NoError(t, err)
			gt.Number(t, m).Equal(0.12)
		})
	}
}

func TestLoadHazardTable_NotFound(t *testing.T) {
	_, err := config.LoadHazardTable(filepath.Join(t.TempDir(), "missing.toml"))
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, config.ErrConfigNotFound)).True()
}

func TestHazard_Configure(t *testing.T) {
	t.Run("defaults to built-in table", func(t *testing.T) {
		table, err := config.NewHazardForTest("").Configure()
		gt.NoError(t, err).Required()
		gt.Value(t, table).Equal(model.DefaultHazardTable())
	})

	t.Run("loads file", func(t *testing.T) {
		path := writeFile(t, `
[[sector]]
name = "Finance"
[sector.multipliers]
"SSP1-2.6" = 0.05
"SSP2-4.5" = 0.01
"SSP5-8.5" = 0.04
`)
		table, err := config.NewHazardForTest(path).Configure()
		gt.NoError(t, err).Required()
		gt.Array(t, table.Sectors()).Equal([]types.Sector{"Finance"})
		gt.Array(t, table.SeverityViolations()).Length(1)
	})
}
