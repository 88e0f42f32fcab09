package store

import "github.com/MKhiriev/go-catalog-api/internal/logger"

// Storages bundles the repositories handed to the service layer.
type Storages struct {
	UserRepository    UserRepository
	ProductRepository ProductRepository
}

// NewStorages builds every repository on top of the shared pool.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ProductRepository: NewProductRepository(db, log),
	}
}
