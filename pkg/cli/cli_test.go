package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ecorisk-lab/climatevar/pkg/cli"
	"github.com/ecorisk-lab/climatevar/pkg/cli/config"
	"github.com/ecorisk-lab/climatevar/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runAppContext(t, context.Background(), args...)
}

func runAppContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := cli.NewApp("test")
	app.Writer = &buf
	err := app.Run(ctx, append([]string{"climatevar", "--log-level", "error"}, args...))
	return buf.String(), err
}

func TestProjectCommand_CSV(t *testing.T) {
	out, err := runApp(t, "project",
		"--sector", "Energy",
		"--scenario", "SSP2-4.5",
		"--scope1", "25000",
		"--scope2", "0",
		"--scope3", "0",
		"--format", "csv",
	)
	gt.NoError(t, err).Required()
	gt.String(t, out).Contains("Year,Hazard Multiplier,Value at Risk ($)\n")
	gt.String(t, out).Contains("2025,0.03,75000.0\n")
	gt.String(t, out).Contains("2030,0.06,150000.0\n")
}

func TestProjectCommand_TableDefaults(t *testing.T) {
	out, err := runApp(t, "project")
	gt.NoError(t, err).Required()
	gt.String(t, out).Contains("Example Corp")
	gt.String(t, out).Contains("Energy | Europe | SSP1-2.6")
	gt.String(t, out).Contains("Total GHG Emissions (tCO2e): 25,000")
	gt.String(t, out).Contains("Hazard Multiplier")
	gt.String(t, out).Contains("0.010")
	gt.String(t, out).Contains("$25,000")
}

func TestProjectCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "unknown sector",
			args:    []string{"project", "--sector", "Agriculture"},
			wantErr: model.ErrUnknownCategory,
		},
		{
			name:    "negative emissions",
			args:    []string{"project", "--scope1=-5"},
			wantErr: model.ErrInvalidInput,
		},
		{
			name:    "unknown region",
			args:    []string{"project", "--region", "Antarctica"},
			wantErr: model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runApp(t, tt.args...)
			gt.Error(t, err)
			gt.Bool(t, errors.Is(err, tt.wantErr)).True()
		})
	}
}

func TestProjectCommand_UnknownFormat(t *testing.T) {
	_, err := runApp(t, "project", "--format", "xlsx")
	gt.Error(t, err)
}

func TestProjectCommand_HazardOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hazard.toml")
	content := `
[[sector]]
name = "Agriculture"
[sector.multipliers]
"SSP1-2.6" = 0.5
"SSP2-4.5" = 1.0
"SSP5-8.5" = 2.0
`
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()

	out, err := runApp(t, "project",
		"--hazard-table", path,
		"--sector", "Agriculture",
		"--scope1", "1",
		"--scope2", "0",
		"--scope3", "0",
		"--format", "csv",
	)
	gt.NoError(t, err).Required()
	gt.String(t, out).Contains("2025,0.5,50.0\n")
	gt.String(t, out).Contains("2050,3.0,300.0\n")
}

func TestValidateCommand(t *testing.T) {
	t.Run("valid table", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hazard.toml")
		content := `
[[sector]]
name = "Energy"
[sector.multipliers]
"SSP1-2.6" = 0.01
"SSP2-4.5" = 0.03
"SSP5-8.5" = 0.07
`
		gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()

		_, err := runApp(t, "validate", "--hazard-table", path)
		gt.NoError(t, err)
	})

	t.Run("missing scenario", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hazard.toml")
		content := `
[[sector]]
name = "Energy"
[sector.multipliers]
"SSP1-2.6" = 0.01
`
		gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()

		_, err := runApp(t, "validate", "--hazard-table", path)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, config.ErrMissingScenario)).True()
	})

	t.Run("no path", func(t *testing.T) {
		_, err := runApp(t, "validate")
		gt.Error(t, err)
	})
}

func TestServeCommand_ShutdownOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := runAppContext(t, ctx, "serve", "--addr", "127.0.0.1:0")
	gt.NoError(t, err)
}

func TestServeCommand_InvalidHazardTable(t *testing.T) {
	_, err := runApp(t, "serve", "--addr", "127.0.0.1:0", "--hazard-table", filepath.Join(t.TempDir(), "missing.toml"))
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, config.ErrConfigNotFound)).True()
}
