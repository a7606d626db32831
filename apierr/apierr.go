// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apierr

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidInput is returned for malformed identifiers, missing body
	// fields and non-integer vote deltas.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidQuery is returned for query parameters outside the allowed
	// sort fields, orders or integer pagination values.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrNotFound is returned when a referenced article, comment, user or
	// topic is absent, or a requested page lies past the last row.
	ErrNotFound = errors.New("not found")
)

// Status maps an error to the HTTP status code of its category.
// Anything outside the taxonomy is a 500.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing msg for a status code.
func Message(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Bad request"
	case http.StatusNotFound:
		return "Not found"
	case http.StatusInternalServerError:
		return "Internal Server Error"
	default:
		return http.StatusText(status)
	}
}
