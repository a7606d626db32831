// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// DefaultArticleImageURL is stored when an article is created without an image.
const DefaultArticleImageURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, conn *sql.DB, d Dialect) error {
	for _, stmt := range schema(d) {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// schema returns one statement per element; not every driver accepts
// several statements in a single Exec.
func schema(d Dialect) []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS topics (
    slug VARCHAR PRIMARY KEY,
    description VARCHAR NOT NULL
)`,

		`CREATE TABLE IF NOT EXISTS users (
    username VARCHAR PRIMARY KEY,
    name VARCHAR NOT NULL,
    avatar_url VARCHAR
)`,

		`CREATE TABLE IF NOT EXISTS articles (
    article_id ` + d.SerialPrimaryKey() + `,
    title VARCHAR NOT NULL,
    topic VARCHAR NOT NULL REFERENCES topics(slug),
    author VARCHAR NOT NULL REFERENCES users(username),
    body VARCHAR NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    votes INT NOT NULL DEFAULT 0 CHECK (votes BETWEEN -2147483648 AND 2147483647),
    article_img_url VARCHAR DEFAULT '` + DefaultArticleImageURL + `'
)`,

		`CREATE INDEX IF NOT EXISTS idx_articles_topic ON articles(topic)`,

		`CREATE TABLE IF NOT EXISTS comments (
    comment_id ` + d.SerialPrimaryKey() + `,
    body VARCHAR NOT NULL,
    article_id INT NOT NULL REFERENCES articles(article_id) ON DELETE CASCADE,
    author VARCHAR NOT NULL REFERENCES users(username),
    votes INT NOT NULL DEFAULT 0 CHECK (votes BETWEEN -2147483648 AND 2147483647),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,

		`CREATE INDEX IF NOT EXISTS idx_comments_article_id ON comments(article_id)`,
	}
}
