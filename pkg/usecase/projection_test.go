package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecorisk-lab/climatevar/pkg/domain/model"
	"github.com/ecorisk-lab/climatevar/pkg/domain/types"
	"github.com/ecorisk-lab/climatevar/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestProjectionUseCase_Assess(t *testing.T) {
	uc := usecase.New()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	uc.Projection.SetClock(func() time.Time { return fixed })

	req := usecase.DefaultAssessmentRequest()
	req.Scenario = types.ScenarioSSP245.String()

	assessment, err := uc.Projection.Assess(context.Background(), req)
	gt.NoError(t, err).Required()

	gt.String(t, assessment.ID.String()).NotEqual("")
	gt.Value(t, assessment.CompanyName).Equal("Example Corp")
	gt.Value(t, assessment.Sector).Equal(types.SectorEnergy)
	gt.Value(t, assessment.Region).Equal(types.RegionEurope)
	gt.Value(t, assessment.Scenario).Equal(types.ScenarioSSP245)
	gt.Number(t, assessment.TotalEmissions).Equal(25000)
	gt.Value(t, assessment.CreatedAt).Equal(fixed)
	gt.Array(t, assessment.Projection.Rows).Length(3).Required()
	gt.Number(t, assessment.Projection.Rows[0].ValueAtRisk).Equal(75000)
}

func TestProjectionUseCase_AssessIDsAreUnique(t *testing.T) {
	uc := usecase.New()
	a, err := uc.Projection.Assess(context.Background(), usecase.DefaultAssessmentRequest())
	gt.NoError(t, err).Required()
	b, err := uc.Projection.Assess(context.Background(), usecase.DefaultAssessmentRequest())
	gt.NoError(t, err).Required()
	gt.Value(t, a.ID).NotEqual(b.ID)
	gt.Value(t, a.Projection).Equal(b.Projection)
}

func TestProjectionUseCase_AssessRejects(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *usecase.AssessmentRequest)
		wantErr error
	}{
		{
			name:    "negative scope1",
			modify:  func(r *usecase.AssessmentRequest) { r.Scope1 = -10 },
			wantErr: model.ErrInvalidInput,
		},
		{
			name:    "negative scope3",
			modify:  func(r *usecase.AssessmentRequest) { r.Scope3 = -0.5 },
			wantErr: model.ErrInvalidInput,
		},
		{
			name:    "missing sector",
			modify:  func(r *usecase.AssessmentRequest) { r.Sector = "" },
			wantErr: model.ErrInvalidInput,
		},
		{
			name:    "unknown region",
			modify:  func(r *usecase.AssessmentRequest) { r.Region = "Atlantis" },
			wantErr: model.ErrInvalidInput,
		},
		{
			name:    "unknown sector",
			modify:  func(r *usecase.AssessmentRequest) { r.Sector = "Agriculture" },
			wantErr: model.ErrUnknownCategory,
		},
		{
			name:    "unknown scenario",
			modify:  func(r *usecase.AssessmentRequest) { r.Scenario = "SSP3-7.0" },
			wantErr: model.ErrUnknownCategory,
		},
	}

	uc := usecase.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := usecase.DefaultAssessmentRequest()
			tt.modify(&req)

			_, err := uc.Projection.Assess(context.Background(), req)
			gt.Error(t, err)
			gt.Bool(t, errors.Is(err, tt.wantErr)).True()
		})
	}
}

func TestProjectionUseCase_Project(t *testing.T) {
	uc := usecase.New()

	_, err := uc.Projection.Project(context.Background(), "Agriculture", types.ScenarioSSP245, 1000)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, model.ErrUnknownCategory)).True()

	result, err := uc.Projection.Project(context.Background(), types.SectorRealEstate, types.ScenarioSSP585, 0)
	gt.NoError(t, err).Required()
	for _, row := range result.Rows {
		gt.Number(t, row.ValueAtRisk).Equal(0)
	}
}

func TestProjectionUseCase_CustomHazardTable(t *testing.T) {
	table, err := model.NewHazardTable([]model.HazardFactor{
		{Sector: "Agriculture", Scenario: types.ScenarioSSP126, Multiplier: 0.1},
		{Sector: "Agriculture", Scenario: types.ScenarioSSP245, Multiplier: 0.2},
		{Sector: "Agriculture", Scenario: types.ScenarioSSP585, Multiplier: 0.3},
	})
	gt.NoError(t, err).Required()

	uc := usecase.New(usecase.WithHazardTable(table))
	gt.Array(t, uc.Projection.Catalog().Sectors).Equal([]types.Sector{"Agriculture"})

	result, err := uc.Projection.Project(context.Background(), "Agriculture", types.ScenarioSSP245, 10)
	gt.NoError(t, err).Required()
	gt.Number(t, result.Rows[0].ValueAtRisk).Equal(model.ValueAtRisk(10, 0.2*model.TimeScale(2025)))

	_, err = uc.Projection.Project(context.Background(), types.SectorEnergy, types.ScenarioSSP245, 10)
	gt.Bool(t, errors.Is(err, model.ErrUnknownCategory)).True()
}

func TestProjectionUseCase_Catalog(t *testing.T) {
	catalog := usecase.New().Projection.Catalog()
	gt.Array(t, catalog.Sectors).Equal(types.AllSectors())
	gt.Array(t, catalog.Regions).Equal(types.AllRegions())
	gt.Array(t, catalog.Scenarios).Equal(types.AllScenarios())
}

func TestSanitizeCompanyName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Example Corp", "Example Corp"},
		{"  Padded Inc  ", "Padded Inc"},
		{"Smith & Sons", "Smith & Sons"},
		{"<script>alert(1)</script>Acme", "Acme"},
		{"<b>Bold</b> Ltd", "Bold Ltd"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			gt.Value(t, usecase.SanitizeCompanyName(tt.in)).Equal(tt.want)
		})
	}
}
