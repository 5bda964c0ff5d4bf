package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-employee-catalog/internal/config"
	"github.com/MKhiriev/go-employee-catalog/internal/logger"
	"github.com/MKhiriev/go-employee-catalog/internal/server"
	"github.com/MKhiriev/go-employee-catalog/internal/stub"
	"github.com/MKhiriev/go-employee-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("catalog-stub")
	cfg, err := config.GetStubConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.Leveled(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	handler, err := stub.NewHandler(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating stub handler")
	}

	srv, err := server.NewHTTPServer("stub", cfg.HTTPAddress, handler.Init(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating stub server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err = srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("stub server error")
	}
}
