// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-catalog-api/internal/validators"
	"github.com/MKhiriev/go-catalog-api/models"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.services.ProductService.ListProducts(r.Context())
	if err != nil {
		h.respondError(w, r, err, "Error retrieving products")
		return
	}

	h.respond(w, r, http.StatusOK, models.NewListResponse("Products retrieved successfully", products))
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, ErrInvalidProductID)
	if err != nil {
		h.respondError(w, r, err, "Error retrieving product")
		return
	}

	product, err := h.services.ProductService.GetProduct(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err, "Error retrieving product")
		return
	}

	h.respondData(w, r, http.StatusOK, "Product retrieved successfully", product)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err, "Error creating product")
		return
	}

	product, err := h.services.ProductService.CreateProduct(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err, "Error creating product")
		return
	}

	h.respondData(w, r, http.StatusCreated, "Product created successfully", product)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, ErrInvalidProductID)
	if err != nil {
		h.respondError(w, r, err, "Error updating product")
		return
	}

	var req models.UpdateProductRequest
	if err = decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err, "Error updating product")
		return
	}

	product, err := h.services.ProductService.UpdateProduct(r.Context(), id, req)
	if err != nil {
		h.respondError(w, r, err, "Error updating product")
		return
	}

	h.respondData(w, r, http.StatusOK, "Product updated successfully", product)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, ErrInvalidProductID)
	if err != nil {
		h.respondError(w, r, err, "Error deleting product")
		return
	}

	product, err := h.services.ProductService.DeleteProduct(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err, "Error deleting product")
		return
	}

	h.respondData(w, r, http.StatusOK, "Product deleted successfully", product)
}

// searchProducts reports a rejected query with its single message and no
// errors list.
func (h *Handler) searchProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	products, err := h.services.ProductService.SearchProducts(r.Context(), query)
	if err != nil {
		var ve *validators.ValidationError
		if errors.As(err, &ve) && len(ve.Messages) > 0 {
			h.respond(w, r, http.StatusBadRequest, models.Response{Message: ve.Messages[0]})
			return
		}
		h.respondError(w, r, err, "Error searching products")
		return
	}

	resp := models.NewListResponse("Search completed successfully", products)
	resp.Query = query
	h.respond(w, r, http.StatusOK, resp)
}

func (h *Handler) productsByPriceRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		priceRange models.PriceRange
		messages   []string
		ok         bool
	)
	if priceRange.Min, ok = parseNumber(q.Get("min")); !ok {
		messages = append(messages, "min must be a number")
	}
	if priceRange.Max, ok = parseNumber(q.Get("max")); !ok {
		messages = append(messages, "max must be a number")
	}
	if len(messages) > 0 {
		h.respondError(w, r, validators.NewValidationError(messages...), "Error retrieving products")
		return
	}

	products, err := h.services.ProductService.FindByPriceRange(r.Context(), priceRange)
	if err != nil {
		h.respondError(w, r, err, "Error retrieving products")
		return
	}

	h.respond(w, r, http.StatusOK, models.NewListResponse("Products retrieved successfully", products))
}

func (h *Handler) lowStockProducts(w http.ResponseWriter, r *http.Request) {
	threshold := models.DefaultLowStockThreshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		var err error
		if threshold, err = strconv.Atoi(raw); err != nil {
			h.respondError(w, r, validators.NewValidationError("threshold must be an integer"), "Error retrieving products")
			return
		}
	}

	products, err := h.services.ProductService.FindLowStock(r.Context(), threshold)
	if err != nil {
		h.respondError(w, r, err, "Error retrieving products")
		return
	}

	h.respond(w, r, http.StatusOK, models.NewListResponse("Products retrieved successfully", products))
}

func parseNumber(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
