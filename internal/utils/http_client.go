package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a resty client preconfigured for a JSON API rooted at a base
// URL. The embedded *resty.Client is exposed for hooks and requests.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client for baseURL that asks for JSON
// responses. A non-positive timeout leaves requests bounded only by their
// context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", JSONContentType)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
