package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-catalog-api/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrPayloadTooLarge,
	http.StatusInternalServerError:   ErrInternalServerError,
}

// mapHTTPError returns nil for 2xx responses. Otherwise the envelope message
// and field errors are attached to the sentinel matching the status.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := describeBody(resp.Body())
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}

	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
}

func describeBody(body []byte) string {
	var env models.Response
	if err := json.Unmarshal(body, &env); err != nil || env.Message == "" {
		return strings.TrimSpace(string(body))
	}

	parts := []string{env.Message}
	parts = append(parts, env.Errors...)
	if env.Error != "" {
		parts = append(parts, env.Error)
	}
	return strings.Join(parts, "; ")
}
