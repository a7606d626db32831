// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 9090)
  - DatabaseURL: Connection string (required)
  - DatabaseType: postgres (lib/pq), pgx (pgx stdlib) or sqlite (default: postgres)
  - MaxOpenConns: Connection pool size (default: 10)
  - Debug: Log every SQL statement
  - EnvFile: dotenv file read before the environment (default: .env)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-max-conns  Maximum open connections
	-debug      SQL statement logging
	-env        dotenv file

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	DB_MAX_OPEN_CONNS → -max-conns
	DEBUG             → -debug

CLI flags take precedence over environment variables. Variables in the
dotenv file never override variables already set in the environment, and a
missing file is not an error.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - PORT, DB_MAX_OPEN_CONNS or DEBUG do not parse
  - DATABASE_TYPE is not one of postgres, pgx, sqlite
*/
package cliparse
