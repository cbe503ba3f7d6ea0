package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ecorisk-lab/climatevar/pkg/domain/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	projections *prometheus.CounterVec
	failures    *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "climatevar_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "method", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "climatevar_http_request_duration_seconds",
				Help:    "Histogram of response latency (seconds) for HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		projections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "climatevar_projections_total",
				Help: "Number of value-at-risk projections computed",
			},
			[]string{"sector", "scenario"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "climatevar_projection_failures_total",
				Help: "Number of projections rejected, by reason",
			},
			[]string{"reason"},
		),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration, m.projections, m.failures} {
		if err := reg.Register(c); err != nil {
			return nil, goerr.Wrap(err, "failed to register metrics collector")
		}
	}
	return m, nil
}

func (m *metrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

func (m *metrics) observeProjection(assessment *model.Assessment, err error) {
	if err == nil {
		m.projections.WithLabelValues(assessment.Sector.String(), assessment.Scenario.String()).Inc()
		return
	}

	reason := "internal"
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		reason = "invalid_input"
	case errors.Is(err, model.ErrUnknownCategory):
		reason = "unknown_category"
	}
	m.failures.WithLabelValues(reason).Inc()
}
