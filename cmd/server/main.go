package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-catalog-api/internal/config"
	"github.com/MKhiriev/go-catalog-api/internal/handler"
	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/server"
	"github.com/MKhiriev/go-catalog-api/internal/service"
	"github.com/MKhiriev/go-catalog-api/internal/store"
	"github.com/MKhiriev/go-catalog-api/internal/workers"
	"github.com/MKhiriev/go-catalog-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("catalog-api")
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("build_version", build.Version).
		Str("build_date", build.Date).
		Str("build_commit", build.Commit).
		Msg("starting catalog API")

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.ApplyEnvironment(cfg.App.IsDevelopment())

	log.Info().
		Str("env", cfg.App.Env).
		Str("version", cfg.App.Version).
		Int("port", cfg.Server.Port).
		Str("db_host", cfg.Storage.DB.Host).
		Str("db_name", cfg.Storage.DB.Name).
		Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	services, err := service.NewServices(store.NewStorages(db, log), *cfg, log)
	if err != nil {
		_ = db.Close()
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		_ = db.Close()
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	poolStats := workers.NewPoolStatsWorker(db, cfg.Storage.DB.StatsInterval, log)

	srv, err := server.NewServer(handlers, cfg.Server, db, log, poolStats)
	if err != nil {
		_ = db.Close()
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
