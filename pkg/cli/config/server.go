package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Server holds CLI flags for the HTTP listener
type Server struct {
	addr    string
	metrics bool
}

// Flags returns CLI flags for HTTP server configuration
func (x *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Category:    "Server",
			Sources:     cli.EnvVars("CLIMATEVAR_ADDR"),
			Destination: &x.addr,
		},
		&cli.BoolFlag{
			Name:        "metrics",
			Usage:       "Expose Prometheus metrics on /metrics",
			Value:       true,
			Category:    "Server",
			Sources:     cli.EnvVars("CLIMATEVAR_METRICS"),
			Destination: &x.metrics,
		},
	}
}

// Addr returns the listen address
func (x *Server) Addr() string {
	return x.addr
}

// MetricsEnabled reports whether /metrics is served
func (x *Server) MetricsEnabled() bool {
	return x.metrics
}

func (x Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", x.addr),
		slog.Bool("metrics", x.metrics),
	)
}
