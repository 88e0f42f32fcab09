// Package validators checks request models of the catalog API before they
// reach the service layer.
//
// Rules live in go-playground/validator struct tags on the models. Failures
// are collected into a single [ValidationError] listing one message per
// failing field, in field declaration order, so clients see every problem
// in one round trip.
package validators

import "context"

// Validator checks a request model. When fields are given only those struct
// fields are checked, which is how partial updates are validated.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
