package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailTaken        = errors.New("user already exists with this email address")
	ErrUsernameTaken     = errors.New("username is already taken")
	ErrUserAlreadyExists = errors.New("user already exists with this email or username")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserReferenced    = errors.New("user has associated records")

	ErrProductNotFound   = errors.New("product not found")
	ErrProductNameTaken  = errors.New("product with this name already exists")
	ErrProductReferenced = errors.New("product is referenced by other records")

	// ErrDataTooLong is returned when the database rejects a value that
	// passed validation, e.g. a too long column value or a CHECK violation.
	ErrDataTooLong = errors.New("input data too long for database field")
)
