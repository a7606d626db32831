// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the NC News API.

# Handler Types

Each handler is a struct built from the database and config:

  - APIHandler: endpoint catalogue, health check, unmatched routes
  - TopicHandler: topic listing
  - ArticleHandler: article listing, lookup, creation and votes
  - CommentHandler: comments on an article, comment votes and deletion
  - UserHandler: user listing and lookup

Handlers are created via constructor functions that accept *sql.DB and Config:

	articleHandler := handlers.NewArticleHandler(db, cfg)

With cfg.Debug set, every statement a handler runs is logged at debug level.

# Articles

	GET   /api/articles                → ListArticles (sort_by, order, topic, limit, p)
	GET   /api/articles/{article_id}   → GetArticle
	POST  /api/articles                → CreateArticle
	PATCH /api/articles/{article_id}   → UpdateVotes ({"inc_votes": n})

total_count in the listing is the length of the returned page.

# Comments

	GET    /api/articles/{article_id}/comments → ListByArticle (limit, p)
	POST   /api/articles/{article_id}/comments → Create
	PATCH  /api/comments/{comment_id}          → UpdateVotes
	DELETE /api/comments/{comment_id}          → Delete (204, no body)

# Errors

Handlers never pick a status themselves. Every failure is passed to
middleware.WriteError, which maps apierr.ErrInvalidInput and
apierr.ErrInvalidQuery to 400, apierr.ErrNotFound to 404 and everything
else to 500. A path id that is not a 32-bit integer is a 400.
*/
package handlers
