package service

import (
	"context"

	"github.com/MKhiriev/go-catalog-api/internal/config"
	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/models"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Describe returns the document served on the root path.
func (s *appInfoService) Describe(ctx context.Context) models.ServiceDescription {
	return models.ServiceDescription{
		Message:  "Catalog REST API with Go + PostgreSQL",
		Version:  s.appVersion,
		Database: "PostgreSQL",
		Endpoints: map[string]map[string]string{
			"users": {
				"getAll":   "GET /api/users",
				"register": "POST /api/users/register",
				"login":    "POST /api/users/login",
				"delete":   "DELETE /api/users/:id",
			},
			"products": {
				"getAll":     "GET /api/products",
				"getOne":     "GET /api/products/:id",
				"create":     "POST /api/products",
				"update":     "PUT /api/products/:id",
				"delete":     "DELETE /api/products/:id",
				"search":     "GET /api/products/search?q=query",
				"priceRange": "GET /api/products/price-range?min=0&max=100",
				"lowStock":   "GET /api/products/low-stock?threshold=10",
			},
		},
	}
}
