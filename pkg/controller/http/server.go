package http

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/ecorisk-lab/climatevar/pkg/domain/model"
	"github.com/ecorisk-lab/climatevar/pkg/service/chart"
	"github.com/ecorisk-lab/climatevar/pkg/usecase"
	"github.com/ecorisk-lab/climatevar/pkg/utils/logging"
	"github.com/ecorisk-lab/climatevar/pkg/utils/safe"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed templates/*.html
var templateFS embed.FS

// ProjectionUseCase is the subset of the use case layer the HTTP server depends on
type ProjectionUseCase interface {
	Assess(ctx context.Context, req usecase.AssessmentRequest) (*model.Assessment, error)
	Catalog() *usecase.Catalog
}

type Server struct {
	router     *chi.Mux
	projection ProjectionUseCase
	chart      *chart.Generator
	registry   *prometheus.Registry
	metrics    *metrics
	page       *template.Template
}

type Options func(*Server)

// WithMetrics enables /metrics backed by registry
func WithMetrics(registry *prometheus.Registry) Options {
	return func(s *Server) {
		s.registry = registry
	}
}

func New(projection ProjectionUseCase, opts ...Options) (*Server, error) {
	if projection == nil {
		return nil, goerr.New("projection use case is required")
	}

	r := chi.NewRouter()

	s := &Server{
		router:     r,
		projection: projection,
		chart:      chart.New(),
	}
	for _, opt := range opts {
		opt(s)
	}

	page, err := template.New("dashboard.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/dashboard.html")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse dashboard template")
	}
	s.page = page

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	if s.registry != nil {
		m, err := newMetrics(s.registry)
		if err != nil {
			return nil, err
		}
		s.metrics = m
		r.Use(m.middleware)
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	r.Get("/healthz", healthHandler)

	// Dashboard
	r.Get("/", s.dashboardHandler)
	r.Get("/chart.svg", s.chartHandler)
	r.Get("/download", s.downloadHandler)

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.Post("/projection", s.projectionAPIHandler)
		r.Get("/catalog", s.catalogAPIHandler)
	})

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		logger := logging.Default().With("request_id", middleware.GetReqID(r.Context()))
		ctx := logging.With(r.Context(), logger)

		defer func() {
			logger.Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r.WithContext(ctx))
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	safe.Respond(r.Context(), w, http.StatusOK, "text/plain; charset=utf-8", []byte("ok"))
}
