// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/models"
	sq "github.com/Masterminds/squirrel"
)

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository].
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by db.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProduct inserts product and returns the stored row. Values that do
// not fit their column or violate a CHECK constraint yield [ErrInvalidData].
func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	const op = "products.create"

	query, args, err := psql.Insert(productsTable).
		Columns("name", "price", "quantity", "description").
		Values(product.Name, product.Price, product.Quantity, product.Description).
		Suffix(returning(productColumns)).
		ToSql()
	if err != nil {
		return models.Product{}, r.buildError(ctx, op, "*productRepository.CreateProduct", err)
	}

	created, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productRepository.CreateProduct").Msg("error inserting product")
		return models.Product{}, r.db.wrap(op, err)
	}

	return created, nil
}

func (r *productRepository) FindProductByID(ctx context.Context, id int64) (models.Product, error) {
	const op = "products.find_by_id"

	query, args, err := selectProducts().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Product{}, r.buildError(ctx, op, "*productRepository.FindProductByID", err)
	}

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Product{}, r.rowError(ctx, op, "*productRepository.FindProductByID", err)
	}

	return p, nil
}

func (r *productRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	return r.queryProducts(ctx, "products.list", selectProducts().OrderBy(newestFirst))
}

// UpdateProduct overwrites every mutable column in one statement. Merging of
// absent fields is the caller's job.
func (r *productRepository) UpdateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	const op = "products.update"

	query, args, err := psql.Update(productsTable).
		Set("name", product.Name).
		Set("price", product.Price).
		Set("quantity", product.Quantity).
		Set("description", product.Description).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": product.ProductID}).
		Suffix(returning(productColumns)).
		ToSql()
	if err != nil {
		return models.Product{}, r.buildError(ctx, op, "*productRepository.UpdateProduct", err)
	}

	updated, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Product{}, r.rowError(ctx, op, "*productRepository.UpdateProduct", err)
	}

	return updated, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int64) (models.Product, error) {
	const op = "products.delete"

	query, args, err := psql.Delete(productsTable).
		Where(sq.Eq{"id": id}).
		Suffix(returning(productColumns)).
		ToSql()
	if err != nil {
		return models.Product{}, r.buildError(ctx, op, "*productRepository.DeleteProduct", err)
	}

	deleted, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Product{}, r.rowError(ctx, op, "*productRepository.DeleteProduct", err)
	}

	return deleted, nil
}

// SearchProducts runs a case-insensitive ILIKE against name or description.
// The backslash is the default LIKE escape character in PostgreSQL, which
// lets callers match literal wildcards.
func (r *productRepository) SearchProducts(ctx context.Context, pattern string) ([]models.Product, error) {
	return r.queryProducts(ctx, "products.search", selectProducts().
		Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		}).
		OrderBy(newestFirst))
}

func (r *productRepository) FindProductsByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.Product, error) {
	return r.queryProducts(ctx, "products.price_range", selectProducts().
		Where(sq.And{
			sq.GtOrEq{"price": minPrice},
			sq.LtOrEq{"price": maxPrice},
		}).
		OrderBy(cheapestFirst))
}

func (r *productRepository) FindLowStockProducts(ctx context.Context, threshold int) ([]models.Product, error) {
	return r.queryProducts(ctx, "products.low_stock", selectProducts().
		Where(sq.LtOrEq{"quantity": threshold}).
		OrderBy(lowestStock))
}

func (r *productRepository) queryProducts(ctx context.Context, op string, b sq.SelectBuilder) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, r.buildError(ctx, op, "*productRepository.queryProducts", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.queryProducts").Str("op", op).Msg("error executing query")
		return nil, r.db.wrap(op, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Err(err).Str("func", "*productRepository.queryProducts").Str("op", op).Msg("error scanning row")
			return nil, newError(op, KindUnexpected, fmt.Errorf("%w: %w", ErrScanningRow, err))
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*productRepository.queryProducts").Str("op", op).Msg("error iterating rows")
		return nil, r.db.wrap(op, fmt.Errorf("%w: %w", ErrScanningRows, err))
	}

	return products, nil
}

func (r *productRepository) buildError(ctx context.Context, op, fn string, err error) error {
	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error building query")
	return newError(op, KindUnexpected, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
}

// rowError classifies a single-row failure. A missing row is expected
// control flow and is not logged.
func (r *productRepository) rowError(ctx context.Context, op, fn string, err error) error {
	wrapped := r.db.wrap(op, err)
	if KindOf(wrapped) != KindNotFound {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("database error")
	}
	return wrapped
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ProductID, &p.Name, &p.Price, &p.Quantity, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
