package service

import (
	"github.com/MKhiriev/go-catalog-api/internal/config"
	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/store"
	"github.com/MKhiriev/go-catalog-api/internal/validators"
)

type Services struct {
	UserService    UserService
	ProductService ProductService
	AppInfoService AppInfoService
}

// NewServices wires every service on top of storages, each behind its
// validating decorator.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewCatalogValidator()

	return &Services{
		UserService: NewUserValidationService(validator).
			Wrap(NewUserService(storages.UserRepository, logger)),
		ProductService: NewProductValidationService(validator).
			Wrap(NewProductService(storages.ProductRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
