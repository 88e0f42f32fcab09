package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-catalog-api/internal/service"
	"github.com/MKhiriev/go-catalog-api/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidUserID:       http.StatusBadRequest,
	ErrInvalidProductID:    http.StatusBadRequest,
	ErrMalformedJSON:       http.StatusBadRequest,
	service.ErrDataTooLong: http.StatusBadRequest,

	service.ErrInvalidCredentials: http.StatusUnauthorized,

	service.ErrUserNotFound:    http.StatusNotFound,
	service.ErrProductNotFound: http.StatusNotFound,

	service.ErrEmailTaken:        http.StatusConflict,
	service.ErrUsernameTaken:     http.StatusConflict,
	service.ErrUserAlreadyExists: http.StatusConflict,
	service.ErrUserReferenced:    http.StatusConflict,
	service.ErrProductNameTaken:  http.StatusConflict,
	service.ErrProductReferenced: http.StatusConflict,

	ErrBodyTooLarge: http.StatusRequestEntityTooLarge,
}

// errorMessageMap holds the client-facing message for every mapped error.
var errorMessageMap = map[error]string{
	ErrInvalidUserID:       "Invalid user ID format",
	ErrInvalidProductID:    "Invalid product ID format",
	ErrMalformedJSON:       "Invalid JSON payload",
	service.ErrDataTooLong: "Input data too long for database field",

	service.ErrInvalidCredentials: "Invalid email or password",

	service.ErrUserNotFound:    "User not found",
	service.ErrProductNotFound: "Product not found",

	service.ErrEmailTaken:        "User already exists with this email address",
	service.ErrUsernameTaken:     "Username is already taken",
	service.ErrUserAlreadyExists: "User already exists with this email or username",
	service.ErrUserReferenced:    "Cannot delete user - user has associated records",
	service.ErrProductNameTaken:  "Product with this name already exists",
	service.ErrProductReferenced: "Cannot delete product - it is referenced by other records",

	ErrBodyTooLarge: "Request body too large",
}

func statusFromError(err error) int {
	var ve *validators.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) (string, bool) {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg, true
		}
	}
	return "", false
}
