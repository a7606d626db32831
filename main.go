package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/nc-news/cliparse"
	"github.com/danielhkuo/nc-news/db"
	"github.com/danielhkuo/nc-news/middleware"
	"github.com/danielhkuo/nc-news/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect and verify
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err, "type", cfg.DatabaseType)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	dialect := db.DialectFor(cfg.DatabaseType)
	if err := db.CreateSchema(ctx, dbConn, dialect); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "dialect", dialect.Name())

	mux := router.NewRouter(dbConn, cfg)

	server := http.Server{
		Handler:           middleware.CORS(middleware.WithRequestID(middleware.Recover(mux))),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		slog.Error("listen failed", "error", err, "addr", server.Addr)
		os.Exit(1)
	}

	slog.Info("Listening", "port", cfg.Port)
	if err := serve(ctx, &server, ln, shutdownTimeout); err != nil {
		slog.Error("Server closed", "error", err)
		dbConn.Close()
		os.Exit(1)
	}
	slog.Info("Server closed")
}

// serve runs server on ln until ctx is done, then drains in-flight
// requests for up to timeout. It returns only after the drain ends.
func serve(ctx context.Context, server *http.Server, ln net.Listener, timeout time.Duration) error {
	drained := make(chan error, 1)
	go func() {
		<-ctx.Done()
		slog.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := server.Shutdown(shutdownCtx)
		if err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
		drained <- err
	}()

	if err := server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-drained
}
