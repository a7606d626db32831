// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "github.com/danielhkuo/nc-news/cliparse"

// Dialect abstracts the DDL differences between the supported engines.
// Queries themselves are written once with $n placeholders, which both
// engines accept.
type Dialect interface {
	// Name identifies the dialect in logs.
	Name() string

	// SerialPrimaryKey is the column definition of an auto-incrementing
	// integer primary key.
	SerialPrimaryKey() string
}

// PostgreSQL is the Dialect for PostgreSQL, used by both lib/pq and pgx.
var PostgreSQL Dialect = postgresDialect{}

// SQLite is the Dialect for modernc.org/sqlite.
var SQLite Dialect = sqliteDialect{}

type postgresDialect struct{}

func (postgresDialect) Name() string             { return "postgres" }
func (postgresDialect) SerialPrimaryKey() string { return "SERIAL PRIMARY KEY" }

type sqliteDialect struct{}

func (sqliteDialect) Name() string             { return "sqlite" }
func (sqliteDialect) SerialPrimaryKey() string { return "INTEGER PRIMARY KEY AUTOINCREMENT" }

// DialectFor returns the dialect of a configured database type.
func DialectFor(databaseType string) Dialect {
	if databaseType == cliparse.DatabaseSQLite {
		return SQLite
	}
	return PostgreSQL
}
