package service

import (
	"context"

	"github.com/MKhiriev/go-catalog-api/models"
)

// UserService covers registration, credential checks and account removal.
type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id int64) (models.User, error)
}

// ProductService covers the catalog operations.
type ProductService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	CreateProduct(ctx context.Context, req models.CreateProductRequest) (models.Product, error)

	// UpdateProduct merges the supplied fields of req into the stored product.
	UpdateProduct(ctx context.Context, id int64, req models.UpdateProductRequest) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) (models.Product, error)

	// SearchProducts matches query literally against name and description.
	SearchProducts(ctx context.Context, query string) ([]models.Product, error)
	FindByPriceRange(ctx context.Context, priceRange models.PriceRange) ([]models.Product, error)
	FindLowStock(ctx context.Context, threshold int) ([]models.Product, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Describe(ctx context.Context) models.ServiceDescription
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging or validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// ProductServiceWrapper is the ProductService counterpart of
// [UserServiceWrapper].
type ProductServiceWrapper interface {
	Wrap(ProductService) ProductService
}
