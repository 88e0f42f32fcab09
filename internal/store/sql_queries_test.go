package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturning(t *testing.T) {
	assert.Equal(t, "RETURNING id, username", returning([]string{"id", "username"}))
	assert.Equal(t,
		"RETURNING id, name, price, quantity, description, created_at, updated_at",
		returning(productColumns))
}

func TestSelectUsers_NeverSelectsPasswordHash(t *testing.T) {
	query, args, err := selectUsers().OrderBy(newestFirst).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, username, email, created_at, updated_at FROM users ORDER BY created_at DESC",
		query)
	assert.Empty(t, args)
	assert.NotContains(t, query, "password")
}

func TestEqualFold_LowersBothSides(t *testing.T) {
	query, args, err := selectUsers().Where(equalFold("email", "Alice@X.com")).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, username, email, created_at, updated_at FROM users WHERE lower(email) = lower($1)",
		query)
	assert.Equal(t, []any{"Alice@X.com"}, args)
}

func TestSelectProducts_Queries(t *testing.T) {
	tests := []struct {
		name      string
		builder   sq.SelectBuilder
		wantParts []string
		wantArgs  []any
	}{
		{
			name:      "by id",
			builder:   selectProducts().Where(sq.Eq{"id": int64(7)}),
			wantParts: []string{"FROM products", "WHERE id = $1"},
			wantArgs:  []any{int64(7)},
		},
		{
			name: "search",
			builder: selectProducts().
				Where(sq.Or{sq.ILike{"name": "%pen%"}, sq.ILike{"description": "%pen%"}}).
				OrderBy(newestFirst),
			wantParts: []string{"name ILIKE $1", "description ILIKE $2", " OR ", "ORDER BY created_at DESC"},
			wantArgs:  []any{"%pen%", "%pen%"},
		},
		{
			name: "price range",
			builder: selectProducts().
				Where(sq.And{sq.GtOrEq{"price": 1.5}, sq.LtOrEq{"price": 9.0}}).
				OrderBy(cheapestFirst),
			wantParts: []string{"price >= $1", "price <= $2", "ORDER BY price ASC"},
			wantArgs:  []any{1.5, 9.0},
		},
		{
			name: "low stock",
			builder: selectProducts().
				Where(sq.LtOrEq{"quantity": 10}).
				OrderBy(lowestStock),
			wantParts: []string{"quantity <= $1", "ORDER BY quantity ASC"},
			wantArgs:  []any{10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.builder.ToSql()
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(query,
				"SELECT id, name, price, quantity, description, created_at, updated_at FROM products"), query)
			for _, part := range tt.wantParts {
				assert.Contains(t, query, part)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestDeleteReturning(t *testing.T) {
	query, args, err := psql.Delete(productsTable).
		Where(sq.Eq{"id": int64(3)}).
		Suffix(returning(productColumns)).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"DELETE FROM products WHERE id = $1 RETURNING id, name, price, quantity, description, created_at, updated_at",
		query)
	assert.Equal(t, []any{int64(3)}, args)
}
