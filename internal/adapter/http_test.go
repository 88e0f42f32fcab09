// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) CatalogClient {
	t.Helper()
	a, err := NewHTTPCatalogAdapter(serverURL, 2*time.Second, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, resp models.Response) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	assert.NoError(t, json.NewEncoder(w).Encode(resp))
}

// ── NewHTTPCatalogAdapter ───────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:3000", want: "http://localhost:3000"},
		{raw: " https://api.example.com/ ", want: "https://api.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users/register", r.URL.Path)

		var req models.RegisterRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)

		writeEnvelope(t, w, http.StatusCreated, models.Response{
			Success: true,
			Message: "User registered successfully",
			Data:    models.UserResponse{UserID: 5, Username: req.Username, Email: req.Email},
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Register(context.Background(),
		models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, int64(5), got.UserID)
	assert.Equal(t, "alice", got.Username)
}

func TestRegister_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		resp       models.Response
		wantErr    error
		wantDetail string
	}{
		{
			name:       "validation",
			status:     http.StatusBadRequest,
			resp:       models.Response{Message: "Validation error", Errors: []string{"Password must be at least 6 characters long"}},
			wantErr:    ErrBadRequest,
			wantDetail: "Validation error; Password must be at least 6 characters long",
		},
		{
			name:       "conflict",
			status:     http.StatusConflict,
			resp:       models.Response{Message: "User already exists with this email address"},
			wantErr:    ErrConflict,
			wantDetail: "User already exists with this email address",
		},
		{
			name:       "internal",
			status:     http.StatusInternalServerError,
			resp:       models.Response{Message: "Error registering user", Error: "Internal Server Error"},
			wantErr:    ErrInternalServerError,
			wantDetail: "Error registering user; Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(t, w, tt.status, tt.resp)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.RegisterRequest{})

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantDetail)
		})
	}
}

func TestMapHTTPError_PlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream down\n")
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListProducts(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 502: upstream down")
}

// ── Products ────────────────────────────────────────────────────────────────

func TestUpdateProduct_SendsOnlySuppliedFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/products/7", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"price":2.5}`, string(body))

		writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Data: models.Product{ProductID: 7, Price: 2.5}})
	}))
	defer srv.Close()

	price := 2.5
	got, err := newTestAdapter(t, srv.URL).UpdateProduct(context.Background(), 7, models.UpdateProductRequest{Price: &price})

	require.NoError(t, err)
	assert.Equal(t, 2.5, got.Price)
}

func TestSearchProducts_EncodesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/search", r.URL.Path)
		assert.Equal(t, "wid%et & co", r.URL.Query().Get("q"))

		writeEnvelope(t, w, http.StatusOK, models.NewListResponse("Search completed successfully", []models.Product{{ProductID: 1}}))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).SearchProducts(context.Background(), "wid%et & co")

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestGetProduct_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusNotFound, models.Response{Message: "Product not found"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetProduct(context.Background(), 999999)

	assert.ErrorIs(t, err, ErrNotFound)
}
