package http

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/ecorisk-lab/climatevar/pkg/domain/model"
	"github.com/ecorisk-lab/climatevar/pkg/service/chart"
	"github.com/ecorisk-lab/climatevar/pkg/service/export"
	"github.com/ecorisk-lab/climatevar/pkg/service/report"
	"github.com/ecorisk-lab/climatevar/pkg/usecase"
	"github.com/ecorisk-lab/climatevar/pkg/utils/errutil"
	"github.com/ecorisk-lab/climatevar/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

var templateFuncs = template.FuncMap{
	"tons": report.FormatTons,
}

type dashboardPage struct {
	Title       string
	Form        usecase.AssessmentRequest
	Catalog     *usecase.Catalog
	Assessment  *model.Assessment
	Columns     []string
	Rows        []report.Row
	ChartURL    string
	DownloadURL string
	Error       string
}

func (s *Server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := dashboardPage{
		Title:   "Company-Level Climate Scenario Analysis Dashboard",
		Catalog: s.projection.Catalog(),
		Columns: report.Columns(),
	}

	status := http.StatusOK
	req, err := parseAssessmentQuery(r.URL.Query())
	page.Form = req
	if err == nil {
		var assessment *model.Assessment
		assessment, err = s.projection.Assess(ctx, req)
		if err == nil {
			s.observeProjection(assessment, nil)
			query := encodeAssessmentQuery(req).Encode()
			page.Assessment = assessment
			page.Rows = report.Rows(assessment.Projection)
			page.ChartURL = "/chart.svg?" + query
			page.DownloadURL = "/download?" + query
		}
	}
	if err != nil {
		s.observeProjection(nil, err)
		status = statusOf(err)
		if status >= http.StatusInternalServerError {
			errutil.HandleHTTP(ctx, w, err, status)
			return
		}
		page.Error = userMessage(err)
	}

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, page); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to render dashboard"), http.StatusInternalServerError)
		return
	}

	safe.Respond(ctx, w, status, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) chartHandler(w http.ResponseWriter, r *http.Request) {
	assessment, ok := s.assessFromQuery(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := s.chart.WriteSVG(&buf, assessment.Projection); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to render chart"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	safe.Respond(r.Context(), w, http.StatusOK, chart.ContentType, buf.Bytes())
}

func (s *Server) downloadHandler(w http.ResponseWriter, r *http.Request) {
	assessment, ok := s.assessFromQuery(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, assessment.Projection); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to export projection"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	safe.Respond(r.Context(), w, http.StatusOK, export.ContentType, buf.Bytes())
}

// assessFromQuery recomputes the assessment described by the query string and
// writes an error response when that fails
func (s *Server) assessFromQuery(w http.ResponseWriter, r *http.Request) (*model.Assessment, bool) {
	req, err := parseAssessmentQuery(r.URL.Query())
	if err == nil {
		var assessment *model.Assessment
		assessment, err = s.projection.Assess(r.Context(), req)
		if err == nil {
			s.observeProjection(assessment, nil)
			return assessment, true
		}
	}

	s.observeProjection(nil, err)
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		errutil.HandleHTTP(r.Context(), w, err, status)
	} else {
		errutil.HandleHTTP(r.Context(), w, goerr.New(userMessage(err)), status)
	}
	return nil, false
}

func (s *Server) observeProjection(assessment *model.Assessment, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.observeProjection(assessment, err)
}
