// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/nc-news/cliparse"
	"github.com/danielhkuo/nc-news/middleware"
	"github.com/danielhkuo/nc-news/models"
	"github.com/danielhkuo/nc-news/query"
	"github.com/danielhkuo/nc-news/store"
)

type CommentHandler struct {
	store *store.Store
}

func NewCommentHandler(db *sql.DB, cfg cliparse.Config) *CommentHandler {
	return &CommentHandler{store: newStore(db, cfg)}
}

// ListByArticle handles GET /api/articles/{article_id}/comments
func (h *CommentHandler) ListByArticle(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathID(r, "article_id")
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	params, err := query.ParseCommentParams(r.URL.Query())
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	comments, err := h.store.ListComments(r.Context(), articleID, params)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CommentsResponse{Comments: comments})
}

// Create handles POST /api/articles/{article_id}/comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathID(r, "article_id")
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	var req models.NewComment
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	comment, err := h.store.CreateComment(r.Context(), articleID, req)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CommentResponse{Comment: comment})
}

// UpdateVotes handles PATCH /api/comments/{comment_id}
func (h *CommentHandler) UpdateVotes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "comment_id")
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.WriteError(w, r, err)
		return
	}
	delta, err := req.Delta()
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	comment, err := h.store.UpdateCommentVotes(r.Context(), id, delta)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CommentResponse{Comment: comment})
}

// Delete handles DELETE /api/comments/{comment_id}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "comment_id")
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	if err := h.store.DeleteComment(r.Context(), id); err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
