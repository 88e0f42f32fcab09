package store

import (
	"context"

	"github.com/MKhiriev/go-catalog-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator turns a driver error into an engine-independent
// [ErrorKind].
type ErrorClassificator interface {
	Classify(err error) ErrorKind
	Wrap(op string, err error) error
}

// UserRepository persists accounts in the "users" table.
type UserRepository interface {
	// CreateUser inserts user and returns it with server-assigned fields.
	// A duplicate username or email yields [ErrConflict].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// FindUserByEmail is the only lookup that populates PasswordHash.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// ListUsers returns every account, newest first.
	ListUsers(ctx context.Context) ([]models.User, error)

	// DeleteUser removes the row and returns its last state.
	DeleteUser(ctx context.Context, id int64) (models.User, error)
}

// ProductRepository persists catalog items in the "products" table.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	FindProductByID(ctx context.Context, id int64) (models.Product, error)

	// ListProducts returns every product, newest first.
	ListProducts(ctx context.Context) ([]models.Product, error)

	// UpdateProduct overwrites name, price, quantity and description of the
	// product with product.ProductID and bumps updated_at.
	UpdateProduct(ctx context.Context, product models.Product) (models.Product, error)

	// DeleteProduct removes the row and returns its last state.
	DeleteProduct(ctx context.Context, id int64) (models.Product, error)

	// SearchProducts matches pattern case-insensitively against name and
	// description. pattern is used as is, wildcards included.
	SearchProducts(ctx context.Context, pattern string) ([]models.Product, error)

	// FindProductsByPriceRange returns products priced within [minPrice, maxPrice],
	// cheapest first.
	FindProductsByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.Product, error)

	// FindLowStockProducts returns products with quantity <= threshold,
	// lowest quantity first.
	FindLowStockProducts(ctx context.Context, threshold int) ([]models.Product, error)
}
