// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the NC News API server.

NC News serves articles grouped into topics, the comments readers leave on
them, and the users who write both. Articles and comments carry a running
vote tally.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 9090 -d "postgres://..." -t pgx

A local SQLite file needs no server at all:

	go run . -t sqlite -d nc_news.db

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string or SQLite path

Optional settings:

  - PORT (-p): Server port (default: 9090)
  - DATABASE_TYPE (-t): postgres, pgx or sqlite (default: postgres)
  - DB_MAX_OPEN_CONNS (-max-conns): pool size (default: 10)
  - DEBUG (-debug): debug logging, including every SQL statement
  - -env: dotenv file read before the environment (default: .env)

SIGINT and SIGTERM drain in-flight requests before exiting.

# Architecture

  - handlers: HTTP request handlers (topics, articles, comments, users)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request IDs, panic recovery, logging, JSON helpers
  - store: Queries, existence checks and vote updates
  - query: Listing parameter validation and SELECT construction
  - apierr: Error categories and their HTTP statuses
  - models: Domain, request and response types
  - db: Connection, dialects, schema and driver error mapping
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
