// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/nc-news/cliparse"
)

// driverNames maps a configured database type to its database/sql driver.
var driverNames = map[string]string{
	cliparse.DatabasePostgres: "postgres",
	cliparse.DatabasePGX:      "pgx",
	cliparse.DatabaseSQLite:   "sqlite",
}

// Open connects to the configured database, applies pool limits and
// verifies the connection with a ping.
func Open(ctx context.Context, cfg cliparse.Config) (*sql.DB, error) {
	driver, ok := driverNames[cfg.DatabaseType]
	if !ok {
		return nil, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	dsn := cfg.DatabaseURL
	if cfg.DatabaseType == cliparse.DatabaseSQLite {
		dsn = SQLiteDSN(dsn)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	inMemory := cfg.DatabaseType == cliparse.DatabaseSQLite && strings.Contains(dsn, ":memory:")
	if inMemory {
		// every connection to :memory: is a separate database
		maxOpen = 1
	}
	if maxOpen > 0 {
		conn.SetMaxOpenConns(maxOpen)
		conn.SetMaxIdleConns(maxOpen)
	}
	if !inMemory {
		conn.SetConnMaxLifetime(time.Hour)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	return conn, nil
}

// SQLiteDSN turns on foreign key enforcement, which SQLite leaves off
// by default.
func SQLiteDSN(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}
