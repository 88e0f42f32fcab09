package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-catalog-api/internal/adapter"
	"github.com/MKhiriev/go-catalog-api/internal/config"
	"github.com/MKhiriev/go-catalog-api/internal/logger"
)

func main() {
	log := logger.NewLogger("catalog-smoke")

	cfg, err := config.GetSmokeConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	client, err := adapter.NewHTTPCatalogAdapter(cfg.Address, cfg.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating catalog client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := adapter.RunSmoke(ctx, client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("smoke run failed")
	}

	log.Info().
		Int64("user_id", report.UserID).
		Int64("product_id", report.ProductID).
		Int("products", report.Products).
		Dur("duration", report.Duration).
		Msg("smoke run passed")
}
