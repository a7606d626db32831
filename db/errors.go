// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/nc-news/apierr"
)

// PostgreSQL SQLSTATE codes the API reports as client errors.
const (
	codeInvalidTextRepresentation = "22P02"
	codeNumericValueOutOfRange    = "22003"
	codeForeignKeyViolation       = "23503"
	codeCheckViolation            = "23514"
)

// Classify maps a driver error onto the apierr taxonomy. Errors it does
// not recognise are returned unchanged and surface as 500s. The driver
// error stays in the chain for logging.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", apierr.ErrNotFound, err)
	}

	if code := sqlState(err); code != "" {
		switch code {
		case codeInvalidTextRepresentation, codeNumericValueOutOfRange, codeCheckViolation:
			return fmt.Errorf("%w: %w", apierr.ErrInvalidInput, err)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: %w", apierr.ErrNotFound, err)
		}
		return err
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		switch {
		case code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY,
			code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "FOREIGN KEY"):
			return fmt.Errorf("%w: %w", apierr.ErrNotFound, err)
		case code == sqlite3.SQLITE_CONSTRAINT_CHECK,
			code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "CHECK constraint"),
			code&0xff == sqlite3.SQLITE_MISMATCH:
			return fmt.Errorf("%w: %w", apierr.ErrInvalidInput, err)
		}
	}

	return err
}

// sqlState extracts the SQLSTATE from a lib/pq or pgx error.
func sqlState(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
