// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the NC News API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health and discovery:

	GET /health - Database ping, plain "OK"
	GET /api    - Endpoint catalogue

Topics and users:

	GET /api/topics
	GET /api/users
	GET /api/users/{username}

Articles:

	GET   /api/articles              - Paged listing (sort_by, order, topic, limit, p)
	POST  /api/articles              - Publish
	GET   /api/articles/{article_id} - Single article with body
	PATCH /api/articles/{article_id} - Add inc_votes

Comments:

	GET    /api/articles/{article_id}/comments - Paged, newest first
	POST   /api/articles/{article_id}/comments - Add a comment
	PATCH  /api/comments/{comment_id}          - Add inc_votes
	DELETE /api/comments/{comment_id}          - Remove

Every other path or method answers 404 {"msg":"Not found"}.
*/
package router
