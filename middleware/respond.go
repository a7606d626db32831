// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/nc-news/apierr"
	"github.com/danielhkuo/nc-news/models"
)

// JSONResponse writes a JSON response
func JSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// ErrorResponse writes the {"msg": ...} body for a status code
func ErrorResponse(w http.ResponseWriter, statusCode int) {
	JSONResponse(w, statusCode, models.ErrorResponse{Msg: apierr.Message(statusCode)})
}

// WriteError maps err onto its status and writes the error body.
// Only unexpected errors are logged; their details never reach the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := apierr.Status(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
			"request_id", RequestID(r.Context()),
		)
	}
	ErrorResponse(w, status)
}

// MaxBodyBytes caps a JSON request body.
const MaxBodyBytes = 1 << 20

// ParseJSONBody parses the request body into the given struct.
// Malformed JSON, or a body over MaxBodyBytes, is an apierr.ErrInvalidInput.
func ParseJSONBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer body.Close()
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", apierr.ErrInvalidInput, err)
	}
	return nil
}
