package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-employee-catalog/internal/config"
	"github.com/MKhiriev/go-employee-catalog/internal/harness"
	"github.com/MKhiriev/go-employee-catalog/internal/logger"
	"github.com/MKhiriev/go-employee-catalog/internal/metrics"
	"github.com/MKhiriev/go-employee-catalog/internal/server"
	"github.com/MKhiriev/go-employee-catalog/internal/service"
	"github.com/MKhiriev/go-employee-catalog/internal/store"
	"github.com/MKhiriev/go-employee-catalog/internal/workers"
	"github.com/MKhiriev/go-employee-catalog/models"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

// App wires the services, the optional cleanup journal and the metrics
// listener for one catalogctl invocation.
type App struct {
	cfg      *config.ClientConfig
	services *service.Services
	journal  store.JournalRepository
	gatherer prometheus.Gatherer
	metrics  *metrics.Metrics
	out      io.Writer
	logger   *logger.Logger
}

// NewApp creates the runtime. journal may be nil, in which case leaks are
// only reported. gatherer is required only when cfg.MetricsAddress is set.
func NewApp(cfg *config.ClientConfig, services *service.Services, journal store.JournalRepository,
	gatherer prometheus.Gatherer, m *metrics.Metrics, out io.Writer, logger *logger.Logger) (Client, error) {
	if cfg == nil || services == nil {
		return nil, fmt.Errorf("client app: config and services are required")
	}

	return &App{
		cfg:      cfg,
		services: services,
		journal:  journal,
		gatherer: gatherer,
		metrics:  m,
		out:      out,
		logger:   logger,
	}, nil
}

// Run executes the configured command. The metrics listener, when enabled,
// lives exactly as long as the command.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	if a.cfg.MetricsAddress != "" {
		metricsServer, err := server.NewMetricsServer(a.cfg.MetricsAddress, a.gatherer, a.logger)
		if err != nil {
			return fmt.Errorf("error creating metrics server: %w", err)
		}
		g.Go(func() error { return metricsServer.Run(gctx) })
	}

	g.Go(func() error {
		defer cancel()
		return a.dispatch(gctx)
	})

	return g.Wait()
}

func (a *App) dispatch(ctx context.Context) error {
	log := a.logger.With().Str("command", a.cfg.Command).Logger()
	log.Info().Str("catalog", a.cfg.Adapter.HTTPAddress).Msg("starting")

	switch a.cfg.Command {
	case config.CommandRun, "":
		return a.runSuite(ctx)
	case config.CommandReap:
		return a.reap(ctx)
	case config.CommandWatch:
		return a.watch(ctx)
	default:
		return fmt.Errorf("%w: %q", config.ErrUnknownCommand, a.cfg.Command)
	}
}

func (a *App) runSuite(ctx context.Context) error {
	suite := harness.NewSuite(a.services, harness.Options{
		Credentials:    a.credentials(),
		Cases:          a.cfg.Harness.Cases,
		Seed:           a.cfg.Harness.Seed,
		SkipAuthChecks: a.cfg.Harness.SkipAuthChecks,
	}, a.journal, a.metrics, a.logger)

	report, err := suite.Run(ctx)
	if report != nil {
		if renderErr := report.Render(a.out); renderErr != nil {
			a.logger.Error().Err(renderErr).Msg("failed to print report")
		}
	}
	if err != nil {
		return fmt.Errorf("suite interrupted: %w", err)
	}

	if !report.Passed() {
		return ErrSuiteFailed
	}
	return nil
}

func (a *App) reap(ctx context.Context) error {
	job, err := a.reapJob()
	if err != nil {
		return err
	}

	stats, err := job.ReapOnce(ctx)
	_, _ = fmt.Fprintf(a.out, "reaped: %d pending, %d resolved, %d failed\n",
		stats.Pending, stats.Resolved, stats.Failed)
	if err != nil {
		return fmt.Errorf("reap: %w", err)
	}
	return nil
}

// watch reaps on every interval until ctx is cancelled.
func (a *App) watch(ctx context.Context) error {
	job, err := a.reapJob()
	if err != nil {
		return err
	}

	ws := workers.NewWorkers(job)
	ws.Start(ctx)
	<-ctx.Done()
	ws.Stop()

	a.logger.Info().Msg("watch stopped")
	return nil
}

func (a *App) reapJob() (*workers.ReapJob, error) {
	if a.journal == nil {
		return nil, ErrJournalRequired
	}
	return workers.NewReapJob(a.services, a.journal, a.credentials(), a.cfg.Workers, a.metrics, a.logger), nil
}

func (a *App) credentials() models.Credentials {
	return models.Credentials{
		Username: a.cfg.Auth.Username,
		Password: a.cfg.Auth.Password,
	}
}
