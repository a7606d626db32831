// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"log/slog"
)

// Querier executes parameterized statements. *sql.DB and *sql.Tx both
// satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// Store runs the API's reads and writes against a Querier.
// It holds no state of its own and is safe for concurrent use when q is.
type Store struct {
	q Querier
}

func New(q Querier) *Store {
	return &Store{q: q}
}

// Debug returns a Store that logs every statement at debug level.
// The original Store is not modified.
func (s *Store) Debug(l *slog.Logger) *Store {
	return &Store{q: loggingQuerier{q: s.q, log: l}}
}

type loggingQuerier struct {
	q   Querier
	log *slog.Logger
}

func (l loggingQuerier) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	l.log.DebugContext(ctx, "query", "sql", query, "args", args)
	return l.q.QueryContext(ctx, query, args...)
}

func (l loggingQuerier) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	l.log.DebugContext(ctx, "query row", "sql", query, "args", args)
	return l.q.QueryRowContext(ctx, query, args...)
}

func (l loggingQuerier) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	l.log.DebugContext(ctx, "exec", "sql", query, "args", args)
	return l.q.ExecContext(ctx, query, args...)
}

type scanner interface {
	Scan(dest ...any) error
}
