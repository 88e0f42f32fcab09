package validators

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// messages maps "<json field>.<rule>" to the text returned to clients.
var messages = map[string]string{
	"username.required": "Username is required",
	"username.alphanum": "Username must only contain alphanumeric characters",
	"username.min":      "Username must be at least 3 characters long",
	"username.max":      "Username must not exceed 50 characters",

	"email.required": "Email is required",
	"email.email":    "Please provide a valid email address",

	"password.required":  "Password is required",
	"password.min":       "Password must be at least 6 characters long",
	"password.max_bytes": "Password must not exceed 72 bytes",

	"name.required": "Product name is required",
	"name.min":      "Product name must be at least 2 characters long",
	"name.max":      "Product name must not exceed 100 characters",

	"price.required":        "Price is required",
	"price.gt":              "Price must be a positive number",
	"price.price_precision": "Price must have at most 2 decimal places",

	"quantity.required": "Quantity is required",
	"quantity.integer":  "Quantity must be an integer",
	"quantity.min":      "Quantity cannot be negative",
	"quantity.max":      "Quantity is too large",

	"description.max": "Description must not exceed 500 characters",

	"q.required": "Search query is required",
	"q.max":      "Search query too long (max 100 characters)",

	"min.min":      "Minimum price cannot be negative",
	"max.gtefield": "Maximum price must be greater than or equal to minimum price",

	"threshold.min": "Threshold cannot be negative",
}

func message(fe validator.FieldError) string {
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
