// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/nc-news/cliparse"
	"github.com/danielhkuo/nc-news/handlers"
	"github.com/danielhkuo/nc-news/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	apiHandler := handlers.NewAPIHandler(db, cfg)
	topicHandler := handlers.NewTopicHandler(db, cfg)
	articleHandler := handlers.NewArticleHandler(db, cfg)
	commentHandler := handlers.NewCommentHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", apiHandler.Health)

	mux.HandleFunc("GET /api", middleware.WithLogging(apiHandler.GetEndpoints))
	mux.HandleFunc("GET /api/topics", middleware.WithLogging(topicHandler.ListTopics))

	// Articles
	mux.HandleFunc("GET /api/articles", middleware.WithLogging(articleHandler.ListArticles))
	mux.HandleFunc("POST /api/articles", middleware.WithLogging(articleHandler.CreateArticle))
	mux.HandleFunc("GET /api/articles/{article_id}", middleware.WithLogging(articleHandler.GetArticle))
	mux.HandleFunc("PATCH /api/articles/{article_id}", middleware.WithLogging(articleHandler.UpdateVotes))

	// Comments
	mux.HandleFunc("GET /api/articles/{article_id}/comments", middleware.WithLogging(commentHandler.ListByArticle))
	mux.HandleFunc("POST /api/articles/{article_id}/comments", middleware.WithLogging(commentHandler.Create))
	mux.HandleFunc("PATCH /api/comments/{comment_id}", middleware.WithLogging(commentHandler.UpdateVotes))
	mux.HandleFunc("DELETE /api/comments/{comment_id}", middleware.WithLogging(commentHandler.Delete))

	// Users
	mux.HandleFunc("GET /api/users", middleware.WithLogging(userHandler.ListUsers))
	mux.HandleFunc("GET /api/users/{username}", middleware.WithLogging(userHandler.GetUser))

	// Anything else
	mux.HandleFunc("/", middleware.WithLogging(apiHandler.NotFound))

	return mux
}
