package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-catalog-api/internal/validators"
	"github.com/go-chi/chi/v5"
)

// maxBodySize caps every JSON request body.
const maxBodySize = 100 << 10

// decodeJSON reads the request body into dst. An empty body leaves dst
// untouched and anything after the first JSON value is malformed. Unknown fields and wrong JSON types are reported as a
// [validators.ValidationError] so that they reach the client the same way
// rule violations do.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err == nil {
		// exactly one JSON value is allowed
		var extra json.RawMessage
		if err = decoder.Decode(&extra); errors.Is(err, io.EOF) {
			return nil
		}
		if err == nil {
			return fmt.Errorf("%w: unexpected data after JSON value", ErrMalformedJSON)
		}
	}

	var (
		maxBytesErr  *http.MaxBytesError
		typeErr      *json.UnmarshalTypeError
		unknownField = "json: unknown field "
	)
	switch {
	case errors.As(err, &maxBytesErr):
		return ErrBodyTooLarge
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return validators.NewValidationError(fmt.Sprintf("%s must be a %s", typeErr.Field, jsonKind(typeErr.Type)))
	case strings.HasPrefix(err.Error(), unknownField):
		// the field name is already quoted by encoding/json
		return validators.NewValidationError(strings.TrimPrefix(err.Error(), unknownField) + " is not allowed")
	default:
		return fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "valid value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

// parseID returns the {id} path parameter. Anything that is not a positive
// base-10 integer yields invalid.
func parseID(r *http.Request, invalid error) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalid
	}
	return id, nil
}
