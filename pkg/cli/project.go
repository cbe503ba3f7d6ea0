package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/ecorisk-lab/climatevar/pkg/cli/config"
	"github.com/ecorisk-lab/climatevar/pkg/domain/model"
	"github.com/ecorisk-lab/climatevar/pkg/service/export"
	"github.com/ecorisk-lab/climatevar/pkg/service/report"
	"github.com/ecorisk-lab/climatevar/pkg/usecase"
)

// Output formats of the project command
const (
	formatTable = "table"
	formatCSV   = "csv"
)

var errUnknownFormat = goerr.New("unknown output format")

func cmdProject() *cli.Command {
	var hazardCfg config.Hazard
	var format string
	req := usecase.DefaultAssessmentRequest()

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "company",
			Usage:       "Company name shown in the report header",
			Value:       req.CompanyName,
			Destination: &req.CompanyName,
		},
		&cli.StringFlag{
			Name:        "sector",
			Usage:       "Industry sector",
			Value:       req.Sector,
			Destination: &req.Sector,
		},
		&cli.StringFlag{
			Name:        "region",
			Usage:       "Region",
			Value:       req.Region,
			Destination: &req.Region,
		},
		&cli.StringFlag{
			Name:        "scenario",
			Usage:       "Climate scenario [SSP1-2.6|SSP2-4.5|SSP5-8.5]",
			Value:       req.Scenario,
			Destination: &req.Scenario,
		},
		&cli.FloatFlag{
			Name:        "scope1",
			Usage:       "Scope 1 emissions (tCO2e)",
			Value:       req.Scope1,
			Destination: &req.Scope1,
		},
		&cli.FloatFlag{
			Name:        "scope2",
			Usage:       "Scope 2 emissions (tCO2e)",
			Value:       req.Scope2,
			Destination: &req.Scope2,
		},
		&cli.FloatFlag{
			Name:        "scope3",
			Usage:       "Scope 3 emissions (tCO2e)",
			Value:       req.Scope3,
			Destination: &req.Scope3,
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Output format [table|csv]",
			Value:       formatTable,
			Destination: &format,
		},
	}
	flags = append(flags, hazardCfg.Flags()...)

	return &cli.Command{
		Name:    "project",
		Aliases: []string{"p"},
		Usage:   "Print the value-at-risk projection for one company",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			table, err := hazardCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure hazard table")
			}

			uc := usecase.New(usecase.WithHazardTable(table))
			assessment, err := uc.Projection.Assess(ctx, req)
			if err != nil {
				return goerr.Wrap(err, "failed to project value at risk")
			}

			w := c.Root().Writer
			switch strings.ToLower(format) {
			case formatTable:
				return printAssessment(w, assessment)
			case formatCSV:
				return export.WriteCSV(w, assessment.Projection)
			default:
				return goerr.Wrap(errUnknownFormat, "format must be table or csv", goerr.V("format", format))
			}
		},
	}
}

func printAssessment(w io.Writer, a *model.Assessment) error {
	title := color.New(color.FgCyan, color.Bold)
	if _, err := title.Fprintln(w, a.CompanyName); err != nil {
		return goerr.Wrap(err, "failed to write report header")
	}
	if _, err := fmt.Fprintf(w, "%s | %s | %s\n", a.Sector, a.Region, a.Scenario); err != nil {
		return goerr.Wrap(err, "failed to write report header")
	}
	if _, err := fmt.Fprintf(w, "Total GHG Emissions (tCO2e): %s\n\n", report.FormatTons(a.TotalEmissions)); err != nil {
		return goerr.Wrap(err, "failed to write report header")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(report.Columns(), "\t")+"\t")
	for _, row := range report.Rows(a.Projection) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", row.Year, row.HazardMultiplier, row.ValueAtRisk)
	}
	if err := tw.Flush(); err != nil {
		return goerr.Wrap(err, "failed to write projection table")
	}
	return nil
}
