package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/ecorisk-lab/climatevar/pkg/cli/config"
	"github.com/ecorisk-lab/climatevar/pkg/utils/logging"
)

func cmdValidate() *cli.Command {
	var hazardCfg config.Hazard

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a hazard table file",
		Flags:   hazardCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			if hazardCfg.Path() == "" {
				return goerr.New("hazard table path is required", goerr.V("flag", "--hazard-table"))
			}

			table, err := hazardCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "hazard table validation failed")
			}

			for _, f := range table.Factors() {
				logger.Debug("Hazard factor",
					"sector", f.Sector,
					"scenario", f.Scenario,
					"multiplier", f.Multiplier,
				)
			}

			logger.Info("Hazard table validation passed",
				"sector_count", len(table.Sectors()),
				"severity_warnings", len(table.SeverityViolations()),
			)
			return nil
		},
	}
}
