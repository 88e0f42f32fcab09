package store

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed storage operation independently of the
// database engine that produced it.
type ErrorKind int

const (
	// KindUnexpected covers every failure that has no dedicated kind:
	// connectivity loss, syntax errors, scan failures.
	KindUnexpected ErrorKind = iota

	// KindNotFound means the targeted row does not exist.
	KindNotFound

	// KindConflict means a unique constraint rejected the write.
	KindConflict

	// KindReferenced means a foreign key prevents the row from being removed.
	KindReferenced

	// KindInvalidData means the value does not fit the column, e.g. it is too
	// long or violates a CHECK constraint.
	KindInvalidData
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	case KindReferenced:
		return "referenced"
	case KindInvalidData:
		return "invalid data"
	default:
		return "unexpected"
	}
}

// Sentinel errors matching each [ErrorKind]. Repository errors satisfy
// [errors.Is] against the sentinel of their kind.
var (
	ErrNotFound    = &Error{Kind: KindNotFound}
	ErrConflict    = &Error{Kind: KindConflict}
	ErrReferenced  = &Error{Kind: KindReferenced}
	ErrInvalidData = &Error{Kind: KindInvalidData}
	ErrUnexpected  = &Error{Kind: KindUnexpected}
)

// Low-level database operation errors, wrapped into [Error.Err].
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a statement fails in the driver.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a single row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iteration over a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

// Error is the error type returned by every repository method.
type Error struct {
	// Kind is the engine-independent classification.
	Kind ErrorKind

	// Op names the repository operation, e.g. "products.create".
	Op string

	// Err is the underlying cause. Nil for sentinels.
	Err error

	// Constraint is the name of the violated constraint, when known.
	Constraint string
}

func (e *Error) Error() string {
	switch {
	case e.Op == "" && e.Err == nil:
		return "store: " + e.Kind.String()
	case e.Err == nil:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf returns the kind carried by err, or [KindUnexpected] if err was not
// produced by this package.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

func newError(op string, kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}
