package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/models"
)

// SmokeReport summarises a successful smoke run.
type SmokeReport struct {
	UserID    int64
	ProductID int64
	Products  int
	Duration  time.Duration
}

// RunSmoke walks the main API flows against a live server: register, login,
// create a product, read it back, update it, search for it, list, delete it
// and confirm it is gone, then remove the user. Every record it creates is
// removed on success.
func RunSmoke(ctx context.Context, c CatalogClient, log *logger.Logger) (SmokeReport, error) {
	start := time.Now()
	suffix := start.Format("150405")
	var report SmokeReport

	step := func(name string) {
		log.Info().Str("step", name).Msg("smoke step")
	}

	step("register")
	register := models.RegisterRequest{
		Username: "smoke" + suffix,
		Email:    "smoke" + suffix + "@example.com",
		Password: "smoke-pass",
	}
	user, err := c.Register(ctx, register)
	if err != nil {
		return report, fmt.Errorf("register: %w", err)
	}
	report.UserID = user.UserID

	step("login")
	if _, err = c.Login(ctx, models.LoginRequest{Email: register.Email, Password: register.Password}); err != nil {
		return report, fmt.Errorf("login: %w", err)
	}
	if _, err = c.Login(ctx, models.LoginRequest{Email: register.Email, Password: "wrong-pass"}); !errors.Is(err, ErrUnauthorized) {
		return report, fmt.Errorf("login with wrong password: want %v, got %v", ErrUnauthorized, err)
	}

	step("create product")
	price, quantity, description := 1.5, 3.0, "smoke test pen"
	created, err := c.CreateProduct(ctx, models.CreateProductRequest{
		Name:        "Smoke Pen " + suffix,
		Price:       &price,
		Quantity:    &quantity,
		Description: &description,
	})
	if err != nil {
		return report, fmt.Errorf("create product: %w", err)
	}
	report.ProductID = created.ProductID

	step("get product")
	got, err := c.GetProduct(ctx, created.ProductID)
	if err != nil {
		return report, fmt.Errorf("get product: %w", err)
	}
	if got.Name != created.Name || got.Price != created.Price {
		return report, fmt.Errorf("get product: got %+v, want %+v", got, created)
	}

	step("update product")
	newPrice := 2.25
	updated, err := c.UpdateProduct(ctx, created.ProductID, models.UpdateProductRequest{Price: &newPrice})
	if err != nil {
		return report, fmt.Errorf("update product: %w", err)
	}
	if updated.Price != newPrice || updated.Name != created.Name || updated.Quantity != created.Quantity {
		return report, fmt.Errorf("update product: partial update changed other fields: %+v", updated)
	}

	step("search products")
	found, err := c.SearchProducts(ctx, "smoke pen "+suffix)
	if err != nil {
		return report, fmt.Errorf("search products: %w", err)
	}
	if len(found) == 0 {
		return report, errors.New("search products: created product not found")
	}

	step("list products")
	all, err := c.ListProducts(ctx)
	if err != nil {
		return report, fmt.Errorf("list products: %w", err)
	}
	report.Products = len(all)

	step("delete product")
	if _, err = c.DeleteProduct(ctx, created.ProductID); err != nil {
		return report, fmt.Errorf("delete product: %w", err)
	}
	if _, err = c.GetProduct(ctx, created.ProductID); !errors.Is(err, ErrNotFound) {
		return report, fmt.Errorf("get deleted product: want %v, got %v", ErrNotFound, err)
	}

	step("delete user")
	if _, err = c.DeleteUser(ctx, user.UserID); err != nil {
		return report, fmt.Errorf("delete user: %w", err)
	}

	report.Duration = time.Since(start)
	return report, nil
}
