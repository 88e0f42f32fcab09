package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/utils"
	"github.com/MKhiriev/go-catalog-api/models"
	"github.com/go-resty/resty/v2"
)

type httpCatalogAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// envelope mirrors models.Response with a typed payload.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// NewHTTPCatalogAdapter returns a [CatalogClient] talking to the API at
// address. A missing scheme defaults to http.
func NewHTTPCatalogAdapter(address string, timeout time.Duration, logger *logger.Logger) (CatalogClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, timeout)
	a := &httpCatalogAdapter{client: client, logger: logger}
	client.OnAfterResponse(a.logResponse)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCatalogAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.UserResponse, error) {
	return do[models.UserResponse](h.request(ctx).SetBody(req), resty.MethodPost, "/api/users/register")
}

func (h *httpCatalogAdapter) Login(ctx context.Context, req models.LoginRequest) (models.UserResponse, error) {
	return do[models.UserResponse](h.request(ctx).SetBody(req), resty.MethodPost, "/api/users/login")
}

func (h *httpCatalogAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	return do[[]models.User](h.request(ctx), resty.MethodGet, "/api/users")
}

func (h *httpCatalogAdapter) DeleteUser(ctx context.Context, id int64) (models.DeletedUserResponse, error) {
	return do[models.DeletedUserResponse](h.request(ctx), resty.MethodDelete, "/api/users/"+strconv.FormatInt(id, 10))
}

func (h *httpCatalogAdapter) ListProducts(ctx context.Context) ([]models.Product, error) {
	return do[[]models.Product](h.request(ctx), resty.MethodGet, "/api/products")
}

func (h *httpCatalogAdapter) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	return do[models.Product](h.request(ctx), resty.MethodGet, productPath(id))
}

func (h *httpCatalogAdapter) CreateProduct(ctx context.Context, req models.CreateProductRequest) (models.Product, error) {
	return do[models.Product](h.request(ctx).SetBody(req), resty.MethodPost, "/api/products")
}

// UpdateProduct sends only the non-nil fields of req.
func (h *httpCatalogAdapter) UpdateProduct(ctx context.Context, id int64, req models.UpdateProductRequest) (models.Product, error) {
	body := make(map[string]any, 4)
	if req.Name != nil {
		body["name"] = *req.Name
	}
	if req.Price != nil {
		body["price"] = *req.Price
	}
	if req.Quantity != nil {
		body["quantity"] = *req.Quantity
	}
	if req.Description != nil {
		body["description"] = *req.Description
	}

	return do[models.Product](h.request(ctx).SetBody(body), resty.MethodPut, productPath(id))
}

func (h *httpCatalogAdapter) DeleteProduct(ctx context.Context, id int64) (models.Product, error) {
	return do[models.Product](h.request(ctx), resty.MethodDelete, productPath(id))
}

func (h *httpCatalogAdapter) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	return do[[]models.Product](h.request(ctx).SetQueryParam("q", query), resty.MethodGet, "/api/products/search")
}

func (h *httpCatalogAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("catalog api response")
	return nil
}

func (h *httpCatalogAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", utils.JSONContentType)
}

// do executes req and decodes the data member of the envelope.
func do[T any](req *resty.Request, method, path string) (T, error) {
	var zero T

	resp, err := req.Execute(method, path)
	if err != nil {
		return zero, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return zero, fmt.Errorf("%s %s: %w", method, path, err)
	}

	var env envelope[T]
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return zero, fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return env.Data, nil
}

func productPath(id int64) string {
	return "/api/products/" + strconv.FormatInt(id, 10)
}
