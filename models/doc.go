// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Topic: slug, description
  - User: username, name, avatar_url
  - ArticleSummary: article_id, title, topic, author, created_at, votes,
    article_img_url, comment_count
  - Article: ArticleSummary plus body
  - Comment: comment_id, article_id, body, author, votes, created_at

# Request Types

Types for parsing incoming JSON:

  - NewComment: username, body
  - NewArticle: author, title, body, topic, article_img_url (optional)
  - VoteRequest: inc_votes

Validate and Delta return errors wrapping apierr.ErrInvalidInput, so a
missing field or a non-integer vote delta becomes a 400 before the store is
touched.

# Response Types

Every payload is wrapped in a named envelope:

	{"topics": [...]}
	{"articles": [...], "total_count": n}
	{"article": {...}}
	{"comments": [...]}
	{"comment": {...}}
	{"users": [...]}
	{"user": {...}}
	{"endpoints": {...}}
	{"msg": "..."}

total_count is the number of articles in the returned page.
*/
package models
