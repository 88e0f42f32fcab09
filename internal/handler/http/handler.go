package http

import (
	"github.com/MKhiriev/go-catalog-api/internal/config"
	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/service"
)

type Handler struct {
	services *service.Services

	// development exposes internal error messages in 500 responses.
	development bool
	corsOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		development: cfg.App.IsDevelopment(),
		corsOrigins: cfg.Server.CORSOrigins,
		logger:      logger,
	}
}
