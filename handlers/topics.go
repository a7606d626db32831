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

type TopicHandler struct {
	store *store.Store
}

func NewTopicHandler(db *sql.DB, cfg cliparse.Config) *TopicHandler {
	return &TopicHandler{store: newStore(db, cfg)}
}

// ListTopics handles GET /api/topics
func (h *TopicHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.store.ListTopics(r.Context())
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TopicsResponse{Topics: topics})
}
