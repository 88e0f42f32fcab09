// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides an HTTP client for the catalog API.
//
// [CatalogClient] decouples callers such as the smoke runner from the REST
// transport. Non-2xx responses are mapped to the sentinel errors in errors.go
// so that callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-catalog-api/models"
)

// CatalogClient is a typed client for every endpoint of the catalog API.
type CatalogClient interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.UserResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.UserResponse, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id int64) (models.DeletedUserResponse, error)

	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	CreateProduct(ctx context.Context, req models.CreateProductRequest) (models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req models.UpdateProductRequest) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) (models.Product, error)
	SearchProducts(ctx context.Context, query string) ([]models.Product, error)
}
