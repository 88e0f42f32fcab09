package models

// Response is the uniform JSON envelope returned by every endpoint.
type Response struct {
	// Success is true for 2xx responses.
	Success bool `json:"success"`

	// Message is a human-readable summary of the outcome.
	Message string `json:"message"`

	// Data carries the payload of successful responses.
	Data any `json:"data,omitempty"`

	// Count is the number of items in Data for list responses.
	Count *int `json:"count,omitempty"`

	// Query echoes the search term of search responses.
	Query string `json:"query,omitempty"`

	// Errors lists every field-level validation message.
	Errors []string `json:"errors,omitempty"`

	// Error holds error detail for 5xx responses. Outside development it is
	// always the generic "Internal Server Error".
	Error string `json:"error,omitempty"`
}

// NewListResponse builds a successful envelope for a list payload and
// fills Count with its length.
func NewListResponse[T any](message string, items []T) Response {
	if items == nil {
		items = []T{}
	}
	count := len(items)

	return Response{
		Success: true,
		Message: message,
		Data:    items,
		Count:   &count,
	}
}
