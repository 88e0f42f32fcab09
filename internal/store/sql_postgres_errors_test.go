package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		code string
		want ErrorKind
	}{
		{pgerrcode.UniqueViolation, KindConflict},
		{pgerrcode.ForeignKeyViolation, KindReferenced},
		{pgerrcode.RestrictViolation, KindReferenced},
		{pgerrcode.StringDataRightTruncationDataException, KindInvalidData},
		{pgerrcode.NumericValueOutOfRange, KindInvalidData},
		{pgerrcode.CheckViolation, KindInvalidData},
		{pgerrcode.NotNullViolation, KindInvalidData},
		{pgerrcode.NoDataFound, KindNotFound},
		{pgerrcode.DeadlockDetected, KindUnexpected},
		{pgerrcode.UndefinedTable, KindUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPgError(&pgconn.PgError{Code: tt.code}))
		})
	}
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, KindNotFound, c.Classify(sql.ErrNoRows))
	assert.Equal(t, KindNotFound, c.Classify(fmt.Errorf("scan: %w", sql.ErrNoRows)))
	assert.Equal(t, KindConflict, c.Classify(fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation))))
	assert.Equal(t, KindUnexpected, c.Classify(errors.New("boom")))
	assert.Equal(t, KindUnexpected, c.Classify(nil))
}

func TestPostgresErrorClassifier_Wrap(t *testing.T) {
	c := NewPostgresErrorClassifier()

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, c.Wrap("op", nil))
	})

	t.Run("keeps constraint", func(t *testing.T) {
		err := c.Wrap("users.create", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_username_lower_key"})

		var storeErr *Error
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, KindConflict, storeErr.Kind)
		assert.Equal(t, "users.create", storeErr.Op)
		assert.Equal(t, "users_username_lower_key", storeErr.Constraint)
	})

	t.Run("already wrapped", func(t *testing.T) {
		orig := newError("first", KindNotFound, sql.ErrNoRows)
		assert.Same(t, orig, c.Wrap("second", orig))
	})

	t.Run("context canceled", func(t *testing.T) {
		err := c.Wrap("op", context.Canceled)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, KindUnexpected, KindOf(err))
	})
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("service: %w", newError("products.delete", KindReferenced, pgError(pgerrcode.ForeignKeyViolation)))

	assert.ErrorIs(t, err, ErrReferenced)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrConflict)

	var pgErr *pgconn.PgError
	assert.ErrorAs(t, err, &pgErr)
}

func TestError_Error(t *testing.T) {
	assert.Equal(t, "store: not found", ErrNotFound.Error())
	assert.Equal(t, "products.find: not found", (&Error{Kind: KindNotFound, Op: "products.find"}).Error())
	assert.Equal(t, "users.create: conflict: dup", newError("users.create", KindConflict, errors.New("dup")).Error())
}
