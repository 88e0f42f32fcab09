// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Product is a catalog item stored in the "products" table.
type Product struct {
	// ProductID is the sequential identifier assigned by the database.
	ProductID int64 `json:"id"`

	// Name is the display name of the product (2–100 characters).
	Name string `json:"name"`

	// Price is the unit price with at most two fraction digits.
	// Stored as NUMERIC(10,2).
	Price float64 `json:"price"`

	// Quantity is the number of units in stock. Never negative.
	Quantity int `json:"quantity"`

	// Description is optional free text; empty string when absent.
	Description string `json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// CreateProductRequest is the body of POST /api/products.
//
// Numeric fields are pointers so that "absent" and "zero" can be told apart
// by the required rule. Quantity is decoded as a float so that a fractional
// value is reported as a validation message rather than a decode failure.
// The upper bound on Quantity is the range of the INTEGER column.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Price       *float64 `json:"price" validate:"required,gt=0,price_precision"`
	Quantity    *float64 `json:"quantity" validate:"required,integer,min=0,max=2147483647"`
	Description *string  `json:"description" validate:"omitnil,max=500"`
}

// UpdateProductRequest is the body of PUT /api/products/{id}.
// A nil field means "keep the stored value".
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitnil,min=2,max=100"`
	Price       *float64 `json:"price" validate:"omitnil,gt=0,price_precision"`
	Quantity    *float64 `json:"quantity" validate:"omitnil,integer,min=0,max=2147483647"`
	Description *string  `json:"description" validate:"omitnil,max=500"`
}

// IsEmpty reports whether no field was supplied.
func (r UpdateProductRequest) IsEmpty() bool {
	return r.Name == nil && r.Price == nil && r.Quantity == nil && r.Description == nil
}

// PriceRange bounds a price-range lookup. Both ends are inclusive.
type PriceRange struct {
	Min float64 `json:"min" validate:"min=0"`
	Max float64 `json:"max" validate:"gtefield=Min"`
}

// SearchRequest is the query of GET /api/products/search.
type SearchRequest struct {
	Query string `json:"q" validate:"required,max=100"`
}

// LowStockRequest is the query of GET /api/products/low-stock.
type LowStockRequest struct {
	Threshold int `json:"threshold" validate:"min=0"`
}

// DefaultLowStockThreshold is used when no threshold is supplied.
const DefaultLowStockThreshold = 10
