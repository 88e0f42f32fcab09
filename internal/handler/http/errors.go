// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading a request, before any service is
// called. Callers can match against them with [errors.Is].
var (
	// ErrInvalidUserID is returned when the {id} path segment of a user route
	// is not a positive base-10 integer.
	ErrInvalidUserID = errors.New("invalid user ID format")

	// ErrInvalidProductID is the product route counterpart of ErrInvalidUserID.
	ErrInvalidProductID = errors.New("invalid product ID format")

	// ErrMalformedJSON is returned when the request body is not valid JSON.
	ErrMalformedJSON = errors.New("malformed JSON body")

	// ErrBodyTooLarge is returned when the request body exceeds maxBodySize.
	ErrBodyTooLarge = errors.New("request body too large")
)
