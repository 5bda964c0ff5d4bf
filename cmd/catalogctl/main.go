package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-employee-catalog/internal/adapter"
	"github.com/MKhiriev/go-employee-catalog/internal/client"
	"github.com/MKhiriev/go-employee-catalog/internal/config"
	"github.com/MKhiriev/go-employee-catalog/internal/logger"
	"github.com/MKhiriev/go-employee-catalog/internal/metrics"
	"github.com/MKhiriev/go-employee-catalog/internal/service"
	"github.com/MKhiriev/go-employee-catalog/internal/store"
	"github.com/MKhiriev/go-employee-catalog/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("catalogctl")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.Leveled(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	m := metrics.NewMetrics(reg)

	catalog, err := adapter.NewHTTPEmployeeCatalog(cfg.Adapter, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create catalog adapter")
	}
	services := service.NewServices(catalog, m, log)

	var journal store.JournalRepository
	if cfg.Storage.DB.DSN != "" {
		db, dbErr := store.NewDB(ctx, cfg.Storage.DB, log)
		if dbErr != nil {
			log.Fatal().Err(dbErr).Msg("open cleanup journal")
		}
		defer db.Close()
		journal = store.NewStorages(db, log).JournalRepository
	}

	app, err := client.NewApp(cfg, services, journal, reg, m, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		if errors.Is(err, client.ErrSuiteFailed) {
			stop()
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("client run error")
	}
}
