package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-catalog-api/models"
	"github.com/go-playground/validator/v10"
)

// Struct field names accepted by the fields argument of
// [CatalogValidator.Validate].
const (
	FieldUsername    = "Username"
	FieldEmail       = "Email"
	FieldPassword    = "Password"
	FieldName        = "Name"
	FieldPrice       = "Price"
	FieldQuantity    = "Quantity"
	FieldDescription = "Description"
)

// CatalogValidator validates every request model of the catalog API with
// go-playground/validator struct tags and reports failures as a
// [ValidationError].
type CatalogValidator struct {
	validate *validator.Validate
}

// NewCatalogValidator builds a validator with the custom price_precision,
// integer and max_bytes rules registered and json tag names used as field names.
func NewCatalogValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails on empty tags or nil funcs
	_ = v.RegisterValidation("price_precision", pricePrecision)
	_ = v.RegisterValidation("integer", integer)
	_ = v.RegisterValidation("max_bytes", maxBytes)

	return &CatalogValidator{validate: v}
}

// Validate checks obj against its rules. When fields are given only those
// struct fields are checked.
func (v *CatalogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest, *models.RegisterRequest,
		models.LoginRequest, *models.LoginRequest,
		models.CreateProductRequest, *models.CreateProductRequest,
		models.SearchRequest, *models.SearchRequest,
		models.LowStockRequest, *models.LowStockRequest,
		models.PriceRange, *models.PriceRange:
		return v.validateStruct(ctx, value, fields...)

	case models.UpdateProductRequest:
		return v.validateUpdateProduct(ctx, value, fields...)
	case *models.UpdateProductRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUpdateProduct(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CatalogValidator) validateUpdateProduct(ctx context.Context, req models.UpdateProductRequest, fields ...string) error {
	if req.IsEmpty() {
		return &ValidationError{
			Messages: []string{ErrNoFieldsToUpdate.Error()},
			Err:      ErrNoFieldsToUpdate,
		}
	}
	return v.validateStruct(ctx, req, fields...)
}

func (v *CatalogValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		if err = checkFields(obj, fields); err != nil {
			return err
		}
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ErrUnsupportedType
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		msgs = append(msgs, message(fe))
	}

	return NewValidationError(msgs...)
}

func checkFields(obj any, fields []string) error {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	for _, f := range fields {
		if _, ok := t.FieldByName(f); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}
