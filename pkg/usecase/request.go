package usecase

import (
	"errors"
	"html"
	"strings"

	"github.com/ecorisk-lab/climatevar/pkg/domain/model"
	"github.com/ecorisk-lab/climatevar/pkg/domain/types"
	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
	"github.com/microcosm-cc/bluemonday"
)

// AssessmentRequest is the raw input collected from a user
type AssessmentRequest struct {
	CompanyName string  `validate:"max=200"`
	Sector      string  `validate:"required"`
	Region      string  `validate:"required"`
	Scenario    string  `validate:"required"`
	Scope1      float64 `validate:"gte=0"`
	Scope2      float64 `validate:"gte=0"`
	Scope3      float64 `validate:"gte=0"`
}

// Emissions returns the scope 1/2/3 values of the request
func (r AssessmentRequest) Emissions() model.EmissionsInput {
	return model.EmissionsInput{
		Scope1: r.Scope1,
		Scope2: r.Scope2,
		Scope3: r.Scope3,
	}
}

// DefaultAssessmentRequest returns the inputs a new dashboard starts with
func DefaultAssessmentRequest() AssessmentRequest {
	return AssessmentRequest{
		CompanyName: "Example Corp",
		Sector:      types.SectorEnergy.String(),
		Region:      types.RegionEurope.String(),
		Scenario:    types.ScenarioSSP126.String(),
		Scope1:      5000,
		Scope2:      7000,
		Scope3:      13000,
	}
}

type requestValidator struct {
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
}

func newRequestValidator() *requestValidator {
	return &requestValidator{
		validate:  validator.New(),
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (v *requestValidator) Validate(req AssessmentRequest) error {
	if err := v.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return goerr.Wrap(model.ErrInvalidInput, "request validation failed",
				goerr.V("field", fe.Field()),
				goerr.V("tag", fe.Tag()),
				goerr.V("param", fe.Param()),
			)
		}
		return goerr.Wrap(model.ErrInvalidInput, "request validation failed", goerr.V("cause", err.Error()))
	}

	if err := req.Emissions().Validate(); err != nil {
		return err
	}
	if err := types.Sector(req.Sector).Validate(); err != nil {
		return goerr.Wrap(model.ErrInvalidInput, "invalid sector", goerr.V(model.SectorKey, req.Sector))
	}
	if !types.Region(req.Region).IsValid() {
		return goerr.Wrap(model.ErrInvalidInput, "unknown region", goerr.V("region", req.Region))
	}

	return nil
}

// SanitizeCompanyName strips markup from free text so it can be shown and exported safely
func (v *requestValidator) SanitizeCompanyName(name string) string {
	return strings.TrimSpace(html.UnescapeString(v.sanitizer.Sanitize(name)))
}
