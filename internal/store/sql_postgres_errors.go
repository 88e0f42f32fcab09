package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver and maps it
// to an [ErrorKind]. Native codes never leave this file.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. [sql.ErrNoRows] is reported as
// [KindNotFound]; PostgreSQL errors are delegated to [ClassifyPgError];
// anything else is [KindUnexpected].
func (c *PostgresErrorClassifier) Classify(err error) ErrorKind {
	if err == nil {
		return KindUnexpected
	}

	if errors.Is(err, sql.ErrNoRows) {
		return KindNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return KindUnexpected
}

// Wrap classifies err and wraps it into an [*Error] for operation op.
// Context cancellation is kept as [KindUnexpected] so callers can still match
// it with [errors.Is] against [context.Canceled].
func (c *PostgresErrorClassifier) Wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	var storeErr *Error
	if errors.As(err, &storeErr) {
		return err
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return newError(op, KindUnexpected, err)
	}

	e := newError(op, c.Classify(err), err)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		e.Constraint = pgErr.ConstraintName
	}

	return e
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorKind] based on the
// PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
//   - 23505 unique_violation → [KindConflict]
//   - 23503 foreign_key_violation, 23001 restrict_violation → [KindReferenced]
//   - 22001 string_data_right_truncation, 22003 numeric_value_out_of_range,
//     23514 check_violation, 23502 not_null_violation → [KindInvalidData]
//   - P0002 no_data_found → [KindNotFound]
//
// Any code not listed above is classified as [KindUnexpected].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorKind {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return KindConflict

	case pgerrcode.ForeignKeyViolation,
		pgerrcode.RestrictViolation:
		return KindReferenced

	case pgerrcode.StringDataRightTruncationDataException,
		pgerrcode.NumericValueOutOfRange,
		pgerrcode.CheckViolation,
		pgerrcode.NotNullViolation:
		return KindInvalidData

	case pgerrcode.NoDataFound:
		return KindNotFound
	}

	return KindUnexpected
}
