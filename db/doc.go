// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles driver selection, schema creation and driver error
classification.

# Drivers

Open picks the database/sql driver from the configured type:

	postgres → github.com/lib/pq
	pgx      → github.com/jackc/pgx/v5/stdlib
	sqlite   → modernc.org/sqlite (foreign keys switched on)

	conn, err := db.Open(ctx, cfg)

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn, db.DialectFor(cfg.DatabaseType)); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - topics: slug (primary key), description
  - users: username (primary key), name, avatar_url
  - articles: article_id, title, topic, author, body, created_at, votes, article_img_url
  - comments: comment_id, body, article_id, author, votes, created_at

# Relationships

	topics 1──* articles
	users  1──* articles
	users  1──* comments
	articles 1──* comments (ON DELETE CASCADE)

comment_count is never stored; it is aggregated from comments on every read.

# Errors

Classify maps driver errors onto the apierr taxonomy:

	22P02, 22003 (PostgreSQL), SQLITE_MISMATCH        → apierr.ErrInvalidInput
	23503 (PostgreSQL), SQLITE_CONSTRAINT_FOREIGNKEY  → apierr.ErrNotFound
	sql.ErrNoRows                                     → apierr.ErrNotFound
*/
package db
