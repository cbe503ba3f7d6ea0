package usecase

import (
	"context"
	"time"

	"github.com/ecorisk-lab/climatevar/pkg/domain/model"
	"github.com/ecorisk-lab/climatevar/pkg/domain/types"
	"github.com/ecorisk-lab/climatevar/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Catalog lists the options offered by the input selectors
type Catalog struct {
	Sectors   []types.Sector
	Regions   []types.Region
	Scenarios []types.Scenario
}

type ProjectionUseCase struct {
	hazard    *model.HazardTable
	validator *requestValidator
	now       func() time.Time
}

func NewProjectionUseCase(hazard *model.HazardTable) *ProjectionUseCase {
	if hazard == nil {
		hazard = model.DefaultHazardTable()
	}
	return &ProjectionUseCase{
		hazard:    hazard,
		validator: newRequestValidator(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Project runs the risk projection for a sector/scenario pair
func (uc *ProjectionUseCase) Project(ctx context.Context, sector types.Sector, scenario types.Scenario, totalEmissions float64) (*model.ProjectionResult, error) {
	result, err := uc.hazard.Project(sector, scenario, totalEmissions)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to project value at risk")
	}

	logging.From(ctx).Debug("projection computed",
		"sector", sector,
		"scenario", scenario,
		"total_emissions", totalEmissions,
	)
	return result, nil
}

// Assess validates a request and builds the full assessment shown on the dashboard
func (uc *ProjectionUseCase) Assess(ctx context.Context, req AssessmentRequest) (*model.Assessment, error) {
	if err := uc.validator.Validate(req); err != nil {
		return nil, err
	}

	emissions := req.Emissions()
	sector := types.Sector(req.Sector)
	scenario := types.Scenario(req.Scenario)

	projection, err := uc.Project(ctx, sector, scenario, emissions.Total())
	if err != nil {
		return nil, err
	}

	assessment := &model.Assessment{
		ID:             model.NewAssessmentID(),
		CompanyName:    uc.validator.SanitizeCompanyName(req.CompanyName),
		Sector:         sector,
		Region:         types.Region(req.Region),
		Scenario:       scenario,
		Emissions:      emissions,
		TotalEmissions: emissions.Total(),
		Projection:     projection,
		CreatedAt:      uc.now(),
	}

	logging.From(ctx).Info("assessment created", "assessment", assessment)
	return assessment, nil
}

// Catalog returns the selectable sectors, regions and scenarios
func (uc *ProjectionUseCase) Catalog() *Catalog {
	return &Catalog{
		Sectors:   uc.hazard.Sectors(),
		Regions:   types.AllRegions(),
		Scenarios: types.AllScenarios(),
	}
}
