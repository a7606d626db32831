// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/nc-news/cliparse"
	"github.com/danielhkuo/nc-news/middleware"
	"github.com/danielhkuo/nc-news/models"
	"github.com/danielhkuo/nc-news/store"
)

type UserHandler struct {
	store *store.Store
}

func NewUserHandler(db *sql.DB, cfg cliparse.Config) *UserHandler {
	return &UserHandler{store: newStore(db, cfg)}
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UsersResponse{Users: users})
}

// GetUser handles GET /api/users/{username}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.GetUser(r.Context(), r.PathValue("username"))
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UserResponse{User: user})
}
