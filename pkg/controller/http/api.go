package http

import (
	"net/http"
	"time"

	"github.com/ecorisk-lab/climatevar/pkg/domain/model"
	"github.com/ecorisk-lab/climatevar/pkg/usecase"
	"github.com/ecorisk-lab/climatevar/pkg/utils/errutil"
	"github.com/ecorisk-lab/climatevar/pkg/utils/logging"
	"github.com/ecorisk-lab/climatevar/pkg/utils/safe"
	json "github.com/goccy/go-json"
	"github.com/m-mizutani/goerr/v2"
)

const maxRequestBody = 1 << 20

type projectionRequest struct {
	Company  string  `json:"company"`
	Sector   string  `json:"sector"`
	Region   string  `json:"region"`
	Scenario string  `json:"scenario"`
	Scope1   float64 `json:"scope1"`
	Scope2   float64 `json:"scope2"`
	Scope3   float64 `json:"scope3"`
}

type emissionsResponse struct {
	Scope1 float64 `json:"scope1"`
	Scope2 float64 `json:"scope2"`
	Scope3 float64 `json:"scope3"`
	Total  float64 `json:"total"`
}

type projectionRowResponse struct {
	Year             int     `json:"year"`
	HazardMultiplier float64 `json:"hazard_multiplier"`
	ValueAtRisk      float64 `json:"value_at_risk"`
}

type assessmentResponse struct {
	ID         string                  `json:"id"`
	Company    string                  `json:"company"`
	Sector     string                  `json:"sector"`
	Region     string                  `json:"region"`
	Scenario   string                  `json:"scenario"`
	Emissions  emissionsResponse       `json:"emissions"`
	Projection []projectionRowResponse `json:"projection"`
	CreatedAt  time.Time               `json:"created_at"`
}

type catalogResponse struct {
	Sectors   []string `json:"sectors"`
	Regions   []string `json:"regions"`
	Scenarios []string `json:"scenarios"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toAssessmentResponse(a *model.Assessment) assessmentResponse {
	rows := make([]projectionRowResponse, len(a.Projection.Rows))
	for i, row := range a.Projection.Rows {
		rows[i] = projectionRowResponse{
			Year:             row.Year,
			HazardMultiplier: row.HazardMultiplier,
			ValueAtRisk:      row.ValueAtRisk,
		}
	}
	return assessmentResponse{
		ID:       a.ID.String(),
		Company:  a.CompanyName,
		Sector:   a.Sector.String(),
		Region:   a.Region.String(),
		Scenario: a.Scenario.String(),
		Emissions: emissionsResponse{
			Scope1: a.Emissions.Scope1,
			Scope2: a.Emissions.Scope2,
			Scope3: a.Emissions.Scope3,
			Total:  a.TotalEmissions,
		},
		Projection: rows,
		CreatedAt:  a.CreatedAt,
	}
}

func (s *Server) projectionAPIHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body projectionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&body); err != nil {
		writeJSONError(w, r, goerr.Wrap(model.ErrInvalidInput, "invalid request body", goerr.V("cause", err.Error())))
		return
	}

	assessment, err := s.projection.Assess(ctx, usecase.AssessmentRequest{
		CompanyName: body.Company,
		Sector:      body.Sector,
		Region:      body.Region,
		Scenario:    body.Scenario,
		Scope1:      body.Scope1,
		Scope2:      body.Scope2,
		Scope3:      body.Scope3,
	})
	if err != nil {
		s.observeProjection(nil, err)
		writeJSONError(w, r, err)
		return
	}
	s.observeProjection(assessment, nil)

	writeJSON(w, r, http.StatusOK, toAssessmentResponse(assessment))
}

func (s *Server) catalogAPIHandler(w http.ResponseWriter, r *http.Request) {
	catalog := s.projection.Catalog()

	resp := catalogResponse{
		Sectors:   make([]string, len(catalog.Sectors)),
		Regions:   make([]string, len(catalog.Regions)),
		Scenarios: make([]string, len(catalog.Scenarios)),
	}
	for i, v := range catalog.Sectors {
		resp.Sectors[i] = v.String()
	}
	for i, v := range catalog.Regions {
		resp.Regions[i] = v.String()
	}
	for i, v := range catalog.Scenarios {
		resp.Scenarios[i] = v.String()
	}

	writeJSON(w, r, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	safe.Respond(r.Context(), w, status, "application/json", data)
}

func writeJSONError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		errutil.Handle(r.Context(), err, "projection API failed")
	} else {
		logging.From(r.Context()).Warn("projection API rejected request", "status", status, "error", err.Error())
	}
	writeJSON(w, r, status, errorResponse{Error: userMessage(err)})
}
