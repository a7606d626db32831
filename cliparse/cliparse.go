package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Supported database types
const (
	DatabasePostgres = "postgres"
	DatabasePGX      = "pgx"
	DatabaseSQLite   = "sqlite"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	MaxOpenConns int
	Debug        bool
	EnvFile      string
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("nc-news", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres, pgx or sqlite)")
	fs.IntVar(&cfg.MaxOpenConns, "max-conns", 0, "Maximum open database connections")
	fs.BoolVar(&cfg.Debug, "debug", false, "Log every SQL statement")
	fs.StringVar(&cfg.EnvFile, "env", ".env", "Optional dotenv file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Real environment variables always win over the file
	if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", cfg.EnvFile, err)
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 9090 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabasePostgres
		}
	}
	switch cfg.DatabaseType {
	case DatabasePostgres, DatabasePGX, DatabaseSQLite:
	default:
		return Config{}, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	if cfg.MaxOpenConns == 0 {
		if s := os.Getenv("DB_MAX_OPEN_CONNS"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 {
				return Config{}, errors.New("invalid DB_MAX_OPEN_CONNS env variable")
			}
			cfg.MaxOpenConns = n
		} else {
			cfg.MaxOpenConns = 10
		}
	}

	if !cfg.Debug {
		if s := os.Getenv("DEBUG"); s != "" {
			debug, err := strconv.ParseBool(s)
			if err != nil {
				return Config{}, errors.New("invalid DEBUG env variable")
			}
			cfg.Debug = debug
		}
	}

	return cfg, nil
}
