package http

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ecorisk-lab/climatevar/pkg/domain/model"
	"github.com/ecorisk-lab/climatevar/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
)

// Query parameter names of the dashboard form
const (
	paramCompany  = "company"
	paramSector   = "sector"
	paramRegion   = "region"
	paramScenario = "scenario"
	paramScope1   = "scope1"
	paramScope2   = "scope2"
	paramScope3   = "scope3"
)

// parseAssessmentQuery reads the dashboard form from the query string.
// Absent parameters keep their default value so a bare GET / renders the
// default company.
func parseAssessmentQuery(q url.Values) (usecase.AssessmentRequest, error) {
	req := usecase.DefaultAssessmentRequest()

	if q.Has(paramCompany) {
		req.CompanyName = q.Get(paramCompany)
	}
	if v := q.Get(paramSector); v != "" {
		req.Sector = v
	}
	if v := q.Get(paramRegion); v != "" {
		req.Region = v
	}
	if v := q.Get(paramScenario); v != "" {
		req.Scenario = v
	}

	scopes := []struct {
		name string
		dst  *float64
	}{
		{paramScope1, &req.Scope1},
		{paramScope2, &req.Scope2},
		{paramScope3, &req.Scope3},
	}
	for _, s := range scopes {
		raw := strings.TrimSpace(q.Get(s.name))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, goerr.Wrap(model.ErrInvalidInput, "emissions must be a number", goerr.V("field", s.name), goerr.V("value", raw))
		}
		*s.dst = v
	}

	return req, nil
}

// encodeAssessmentQuery is the inverse of parseAssessmentQuery
func encodeAssessmentQuery(req usecase.AssessmentRequest) url.Values {
	q := url.Values{}
	q.Set(paramCompany, req.CompanyName)
	q.Set(paramSector, req.Sector)
	q.Set(paramRegion, req.Region)
	q.Set(paramScenario, req.Scenario)
	q.Set(paramScope1, strconv.FormatFloat(req.Scope1, 'f', -1, 64))
	q.Set(paramScope2, strconv.FormatFloat(req.Scope2, 'f', -1, 64))
	q.Set(paramScope3, strconv.FormatFloat(req.Scope3, 'f', -1, 64))
	return q
}

// statusOf maps projection errors to HTTP status codes
func statusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnknownCategory):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// userMessage is the text shown to a user for a failed projection
func userMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrUnknownCategory):
		return "No data for this combination of sector and scenario."
	case errors.Is(err, model.ErrInvalidInput):
		return "Invalid input: emissions must be non-negative numbers and every selector must be set."
	default:
		return "Failed to compute the projection."
	}
}
