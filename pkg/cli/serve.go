package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/ecorisk-lab/climatevar/pkg/cli/config"
	httpctrl "github.com/ecorisk-lab/climatevar/pkg/controller/http"
	"github.com/ecorisk-lab/climatevar/pkg/usecase"
	"github.com/ecorisk-lab/climatevar/pkg/utils/logging"
)

const shutdownTimeout = 10 * time.Second

func cmdServe(version string) *cli.Command {
	var serverCfg config.Server
	var hazardCfg config.Hazard
	var sentryCfg config.Sentry

	var flags []cli.Flag
	flags = append(flags, serverCfg.Flags()...)
	flags = append(flags, hazardCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the dashboard HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// Initialize Sentry
			flush, err := sentryCfg.Configure(version)
			if err != nil {
				return err
			}
			defer flush()

			// Load hazard table (built-in unless --hazard-table is given)
			table, err := hazardCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure hazard table")
			}

			// Initialize use cases
			uc := usecase.New(usecase.WithHazardTable(table))

			// Metrics use a dedicated registry
			var opts []httpctrl.Options
			if serverCfg.MetricsEnabled() {
				registry := prometheus.NewRegistry()
				registry.MustRegister(
					collectors.NewGoCollector(),
					collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
				)
				opts = append(opts, httpctrl.WithMetrics(registry))
			}

			// Create HTTP handler
			handler, err := httpctrl.New(uc.Projection, opts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			server := &http.Server{
				Addr:              serverCfg.Addr(),
				Handler:           handler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			// A listener failure cancels ctx, which also triggers the shutdown goroutine
			eg, ctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				logging.Default().Info("Starting HTTP server", "server", serverCfg, "hazard_table", hazardCfg.Path())
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "failed to start HTTP server", goerr.V("addr", serverCfg.Addr()))
				}
				return nil
			})
			eg.Go(func() error {
				<-ctx.Done()
				logging.Default().Info("Shutting down HTTP server")

				// Create shutdown context with timeout
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
				logging.Default().Info("Server shutdown completed")
				return nil
			})

			return eg.Wait()
		},
	}
}
