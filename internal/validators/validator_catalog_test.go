package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-catalog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCatalogValidator_Register(t *testing.T) {
	v := NewCatalogValidator()

	tests := []struct {
		name string
		req  models.RegisterRequest
		want []string
	}{
		{
			name: "valid",
			req:  models.RegisterRequest{Username: "john42", Email: "john@example.com", Password: "secret"},
		},
		{
			name: "empty",
			req:  models.RegisterRequest{},
			want: []string{"Username is required", "Email is required", "Password is required"},
		},
		{
			name: "not alphanumeric",
			req:  models.RegisterRequest{Username: "jo hn", Email: "john@example.com", Password: "secret"},
			want: []string{"Username must only contain alphanumeric characters"},
		},
		{
			name: "short username and password, bad email",
			req:  models.RegisterRequest{Username: "jo", Email: "not-an-email", Password: "123"},
			want: []string{
				"Username must be at least 3 characters long",
				"Please provide a valid email address",
				"Password must be at least 6 characters long",
			},
		},
		{
			name: "long username",
			req:  models.RegisterRequest{Username: strings.Repeat("a", 51), Email: "a@b.io", Password: "secret"},
			want: []string{"Username must not exceed 50 characters"},
		},
		{
			name: "password of 72 bytes",
			req:  models.RegisterRequest{Username: "john42", Email: "a@b.io", Password: strings.Repeat("p", 72)},
		},
		{
			name: "password over 72 bytes",
			req:  models.RegisterRequest{Username: "john42", Email: "a@b.io", Password: strings.Repeat("p", 73)},
			want: []string{"Password must not exceed 72 bytes"},
		},
		{
			name: "multibyte password counted in bytes",
			req:  models.RegisterRequest{Username: "john42", Email: "a@b.io", Password: strings.Repeat("я", 40)},
			want: []string{"Password must not exceed 72 bytes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.want, ve.Messages)
		})
	}
}

func TestCatalogValidator_Login(t *testing.T) {
	v := NewCatalogValidator()

	assert.NoError(t, v.Validate(context.Background(), &models.LoginRequest{Email: "a@b.io", Password: "x"}))

	err := v.Validate(context.Background(), models.LoginRequest{Email: "a@b.io"})
	assert.Equal(t, []string{"Password is required"}, Messages(err))
}

func TestCatalogValidator_CreateProduct(t *testing.T) {
	v := NewCatalogValidator()

	valid := func() models.CreateProductRequest {
		return models.CreateProductRequest{Name: "Pen", Price: ptr(19.99), Quantity: ptr(10.0)}
	}

	tests := []struct {
		name   string
		mutate func(r *models.CreateProductRequest)
		want   []string
	}{
		{name: "valid", mutate: func(r *models.CreateProductRequest) {}},
		{name: "empty description allowed", mutate: func(r *models.CreateProductRequest) { r.Description = ptr("") }},
		{name: "zero quantity allowed", mutate: func(r *models.CreateProductRequest) { r.Quantity = ptr(0.0) }},
		{
			name:   "missing everything",
			mutate: func(r *models.CreateProductRequest) { *r = models.CreateProductRequest{} },
			want:   []string{"Product name is required", "Price is required", "Quantity is required"},
		},
		{
			name:   "negative price",
			mutate: func(r *models.CreateProductRequest) { r.Price = ptr(-5.0) },
			want:   []string{"Price must be a positive number"},
		},
		{
			name:   "zero price",
			mutate: func(r *models.CreateProductRequest) { r.Price = ptr(0.0) },
			want:   []string{"Price must be a positive number"},
		},
		{
			name:   "three decimals",
			mutate: func(r *models.CreateProductRequest) { r.Price = ptr(1.999) },
			want:   []string{"Price must have at most 2 decimal places"},
		},
		{
			name:   "negative quantity",
			mutate: func(r *models.CreateProductRequest) { r.Quantity = ptr(-1.0) },
			want:   []string{"Quantity cannot be negative"},
		},
		{
			name:   "fractional quantity",
			mutate: func(r *models.CreateProductRequest) { r.Quantity = ptr(2.5) },
			want:   []string{"Quantity must be an integer"},
		},
		{
			name:   "largest integer column value",
			mutate: func(r *models.CreateProductRequest) { r.Quantity = ptr(2147483647.0) },
		},
		{
			name:   "quantity beyond integer column",
			mutate: func(r *models.CreateProductRequest) { r.Quantity = ptr(1e19) },
			want:   []string{"Quantity is too large"},
		},
		{
			name:   "short name",
			mutate: func(r *models.CreateProductRequest) { r.Name = "A" },
			want:   []string{"Product name must be at least 2 characters long"},
		},
		{
			name:   "long name",
			mutate: func(r *models.CreateProductRequest) { r.Name = strings.Repeat("n", 101) },
			want:   []string{"Product name must not exceed 100 characters"},
		},
		{
			name:   "long description",
			mutate: func(r *models.CreateProductRequest) { r.Description = ptr(strings.Repeat("d", 501)) },
			want:   []string{"Description must not exceed 500 characters"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, Messages(err))
		})
	}
}

func TestCatalogValidator_UpdateProduct(t *testing.T) {
	v := NewCatalogValidator()

	t.Run("empty", func(t *testing.T) {
		err := v.Validate(context.Background(), models.UpdateProductRequest{})
		require.ErrorIs(t, err, ErrNoFieldsToUpdate)
		assert.Equal(t, []string{"At least one field must be provided for update"}, Messages(err))
	})

	t.Run("price only", func(t *testing.T) {
		assert.NoError(t, v.Validate(context.Background(), &models.UpdateProductRequest{Price: ptr(2.5)}))
	})

	t.Run("invalid fields", func(t *testing.T) {
		err := v.Validate(context.Background(), models.UpdateProductRequest{Name: ptr("A"), Quantity: ptr(-3.0)})
		assert.Equal(t, []string{
			"Product name must be at least 2 characters long",
			"Quantity cannot be negative",
		}, Messages(err))
	})
}

func TestCatalogValidator_Queries(t *testing.T) {
	v := NewCatalogValidator()
	ctx := context.Background()

	assert.Equal(t, []string{"Search query is required"}, Messages(v.Validate(ctx, models.SearchRequest{})))
	assert.Equal(t, []string{"Search query too long (max 100 characters)"},
		Messages(v.Validate(ctx, models.SearchRequest{Query: strings.Repeat("q", 101)})))
	assert.NoError(t, v.Validate(ctx, models.SearchRequest{Query: strings.Repeat("é", 100)}))

	assert.NoError(t, v.Validate(ctx, models.PriceRange{Min: 1, Max: 1}))
	assert.Equal(t, []string{"Minimum price cannot be negative"}, Messages(v.Validate(ctx, models.PriceRange{Min: -1, Max: 5})))
	assert.Equal(t, []string{"Maximum price must be greater than or equal to minimum price"},
		Messages(v.Validate(ctx, models.PriceRange{Min: 10, Max: 5})))

	assert.Equal(t, []string{"Threshold cannot be negative"}, Messages(v.Validate(ctx, models.LowStockRequest{Threshold: -1})))
}

func TestCatalogValidator_PartialFields(t *testing.T) {
	v := NewCatalogValidator()
	ctx := context.Background()
	req := models.RegisterRequest{Email: "broken"}

	err := v.Validate(ctx, req, FieldEmail)
	assert.Equal(t, []string{"Please provide a valid email address"}, Messages(err))

	err = v.Validate(ctx, req, "Nickname")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestCatalogValidator_UnsupportedType(t *testing.T) {
	v := NewCatalogValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.RegisterRequest)(nil)), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.UpdateProductRequest)(nil)), ErrUnsupportedType)
}
