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

type ArticleHandler struct {
	store *store.Store
}

func NewArticleHandler(db *sql.DB, cfg cliparse.Config) *ArticleHandler {
	return &ArticleHandler{store: newStore(db, cfg)}
}

// ListArticles handles GET /api/articles
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	params, err := query.ParseArticleParams(r.URL.Query())
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	articles, err := h.store.ListArticles(r.Context(), params)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ArticlesResponse{
		Articles:   articles,
		TotalCount: len(articles),
	})
}

// GetArticle handles GET /api/articles/{article_id}
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	article, err := h.store.GetArticle(r.Context(), id)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ArticleResponse{Article: article})
}

// CreateArticle handles POST /api/articles
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req models.NewArticle
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	article, err := h.store.CreateArticle(r.Context(), req)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.ArticleResponse{Article: article})
}

// UpdateVotes handles PATCH /api/articles/{article_id}
func (h *ArticleHandler) UpdateVotes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
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

	article, err := h.store.UpdateArticleVotes(r.Context(), id, delta)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ArticleResponse{Article: article})
}
