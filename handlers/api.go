// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/nc-news/apierr"
	"github.com/danielhkuo/nc-news/cliparse"
	"github.com/danielhkuo/nc-news/middleware"
	"github.com/danielhkuo/nc-news/models"
	"github.com/danielhkuo/nc-news/store"
)

//go:embed endpoints.json
var endpointsJSON []byte

// newStore builds the store a handler queries, logging statements when cfg.Debug is set
func newStore(db *sql.DB, cfg cliparse.Config) *store.Store {
	s := store.New(db)
	if cfg.Debug {
		s = s.Debug(slog.Default())
	}
	return s
}

// pathID parses an integer path segment; anything else is a 400
func pathID(r *http.Request, name string) (int, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, &idError{name: name, raw: raw}
	}
	return int(id), nil
}

type idError struct {
	name, raw string
}

func (e *idError) Error() string { return "invalid " + e.name + " " + strconv.Quote(e.raw) }
func (e *idError) Unwrap() error { return apierr.ErrInvalidInput }

type APIHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAPIHandler(db *sql.DB, cfg cliparse.Config) *APIHandler {
	return &APIHandler{db: db, cfg: cfg}
}

// GetEndpoints handles GET /api
func (h *APIHandler) GetEndpoints(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.EndpointsResponse{
		Endpoints: json.RawMessage(endpointsJSON),
	})
}

// Health handles GET /health
func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		slog.Error("health check failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("database unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// NotFound answers every unmatched route
func (h *APIHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	middleware.ErrorResponse(w, http.StatusNotFound)
}
