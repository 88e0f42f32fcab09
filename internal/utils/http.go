package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// JSONContentType is the media type of every API response body.
const JSONContentType = "application/json"

// WriteJSON encodes data and writes it as the response body with statusCode.
//
// Encoding happens before any header is sent. If it fails the client gets a
// bare 500 and the error is returned to the caller for logging. HTML
// characters are not escaped, so product names such as "Tom & Jerry" stay
// readable.
//
// The returned int is the number of body bytes written.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(data); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding JSON response: %w", err)
	}

	w.Header().Set("Content-Type", JSONContentType)
	w.WriteHeader(statusCode)

	return w.Write(buf.Bytes())
}
