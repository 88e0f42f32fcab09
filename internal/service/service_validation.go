package service

import (
	"context"

	"github.com/MKhiriev/go-catalog-api/internal/validators"
	"github.com/MKhiriev/go-catalog-api/models"
)

// UserValidationService runs the request rules before delegating to the
// wrapped UserService. Validation failures are returned unchanged as
// *validators.ValidationError so that no repository is touched.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{validator: validator}
}

func (v *UserValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}
	return v.inner.Register(ctx, req)
}

func (v *UserValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}
	return v.inner.Login(ctx, req)
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	return v.inner.DeleteUser(ctx, id)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

// ProductValidationService is the ProductService counterpart of
// [UserValidationService].
type ProductValidationService struct {
	inner     ProductService
	validator validators.Validator
}

func NewProductValidationService(validator validators.Validator) ProductServiceWrapper {
	return &ProductValidationService{validator: validator}
}

func (v *ProductValidationService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return v.inner.ListProducts(ctx)
}

func (v *ProductValidationService) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	return v.inner.GetProduct(ctx, id)
}

func (v *ProductValidationService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (models.Product, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Product{}, err
	}
	return v.inner.CreateProduct(ctx, req)
}

func (v *ProductValidationService) UpdateProduct(ctx context.Context, id int64, req models.UpdateProductRequest) (models.Product, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Product{}, err
	}
	return v.inner.UpdateProduct(ctx, id, req)
}

func (v *ProductValidationService) DeleteProduct(ctx context.Context, id int64) (models.Product, error) {
	return v.inner.DeleteProduct(ctx, id)
}

func (v *ProductValidationService) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	if err := v.validator.Validate(ctx, models.SearchRequest{Query: query}); err != nil {
		return nil, err
	}
	return v.inner.SearchProducts(ctx, query)
}

func (v *ProductValidationService) FindByPriceRange(ctx context.Context, priceRange models.PriceRange) ([]models.Product, error) {
	if err := v.validator.Validate(ctx, priceRange); err != nil {
		return nil, err
	}
	return v.inner.FindByPriceRange(ctx, priceRange)
}

func (v *ProductValidationService) FindLowStock(ctx context.Context, threshold int) ([]models.Product, error) {
	if err := v.validator.Validate(ctx, models.LowStockRequest{Threshold: threshold}); err != nil {
		return nil, err
	}
	return v.inner.FindLowStock(ctx, threshold)
}

func (v *ProductValidationService) Wrap(wrapped ProductService) ProductService {
	v.inner = wrapped
	return v
}
