package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration is absent or out of range.
var (
	// ErrMissingDBConfigs indicates that one or more required database
	// settings (host, user, database name) were not provided by any source.
	ErrMissingDBConfigs = errors.New("missing required database configuration")
	// ErrInvalidPort indicates a listening or database port outside 1–65535.
	ErrInvalidPort = errors.New("invalid port")
)
