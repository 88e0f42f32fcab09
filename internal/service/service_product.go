// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/store"
	"github.com/MKhiriev/go-catalog-api/models"
)

// likeEscaper prefixes LIKE wildcards and the escape character itself with
// a backslash.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type productService struct {
	productRepository store.ProductRepository
	logger            *logger.Logger
}

func NewProductService(productRepository store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		logger:            logger,
	}
}

func (s *productService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.productRepository.ListProducts(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing products failed")
		return nil, fmt.Errorf("listing products failed: %w", err)
	}
	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	product, err := s.productRepository.FindProductByID(ctx, id)
	if err != nil {
		return models.Product{}, s.mapError(ctx, "getting product failed", id, err)
	}
	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (models.Product, error) {
	product := models.Product{Name: req.Name}
	product = applyPatch(product,
		field(req.Price, func(p *models.Product) *float64 { return &p.Price }),
		convertedField(req.Quantity, func(p *models.Product) *int { return &p.Quantity }, toInt),
		field(req.Description, func(p *models.Product) *string { return &p.Description }),
	)

	created, err := s.productRepository.CreateProduct(ctx, product)
	if err != nil {
		return models.Product{}, s.mapError(ctx, "creating product failed", 0, err)
	}
	return created, nil
}

// UpdateProduct loads the stored product, overlays every field present in
// req and writes all columns back.
func (s *productService) UpdateProduct(ctx context.Context, id int64, req models.UpdateProductRequest) (models.Product, error) {
	existing, err := s.productRepository.FindProductByID(ctx, id)
	if err != nil {
		return models.Product{}, s.mapError(ctx, "loading product for update failed", id, err)
	}

	merged := applyPatch(existing,
		field(req.Name, func(p *models.Product) *string { return &p.Name }),
		field(req.Price, func(p *models.Product) *float64 { return &p.Price }),
		convertedField(req.Quantity, func(p *models.Product) *int { return &p.Quantity }, toInt),
		field(req.Description, func(p *models.Product) *string { return &p.Description }),
	)

	updated, err := s.productRepository.UpdateProduct(ctx, merged)
	if err != nil {
		return models.Product{}, s.mapError(ctx, "updating product failed", id, err)
	}
	return updated, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) (models.Product, error) {
	deleted, err := s.productRepository.DeleteProduct(ctx, id)
	if err != nil {
		return models.Product{}, s.mapError(ctx, "deleting product failed", id, err)
	}
	return deleted, nil
}

// SearchProducts escapes LIKE wildcards in query so that it is matched
// literally, then looks for it anywhere in name or description.
func (s *productService) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	pattern := "%" + likeEscaper.Replace(query) + "%"

	products, err := s.productRepository.SearchProducts(ctx, pattern)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("query", query).Msg("searching products failed")
		return nil, fmt.Errorf("searching products failed: %w", err)
	}
	return products, nil
}

func (s *productService) FindByPriceRange(ctx context.Context, priceRange models.PriceRange) ([]models.Product, error) {
	products, err := s.productRepository.FindProductsByPriceRange(ctx, priceRange.Min, priceRange.Max)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("price range lookup failed")
		return nil, fmt.Errorf("price range lookup failed: %w", err)
	}
	return products, nil
}

func (s *productService) FindLowStock(ctx context.Context, threshold int) ([]models.Product, error) {
	products, err := s.productRepository.FindLowStockProducts(ctx, threshold)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("low stock lookup failed")
		return nil, fmt.Errorf("low stock lookup failed: %w", err)
	}
	return products, nil
}

// mapError converts store kinds into product errors. Unclassified errors are
// logged and wrapped with msg.
func (s *productService) mapError(ctx context.Context, msg string, id int64, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrProductNotFound
	case errors.Is(err, store.ErrConflict):
		return ErrProductNameTaken
	case errors.Is(err, store.ErrReferenced):
		return ErrProductReferenced
	case errors.Is(err, store.ErrInvalidData):
		return fmt.Errorf("%w: %w", ErrDataTooLong, err)
	}

	logger.FromContext(ctx).Err(err).Int64("id", id).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}

func toInt(v float64) int {
	return int(v)
}
