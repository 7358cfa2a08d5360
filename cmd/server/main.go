/*
main.go - Static data server entry point

PURPOSE:
  Serves the built frontend and the reference data it reads (municipal
  tax rates, counties, example plans). All benefit calculations run in
  the browser, so the server holds no state and stores nothing.

STARTUP SEQUENCE:
  1. Load configuration (.env file, then FPG_* environment)
  2. Apply command-line overrides
  3. Build the logger and router
  4. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -addr      Listen address (default: FPG_HTTP_ADDR or :8080)
  -static    Built frontend directory (default: FPG_STATIC_DIR)
  -env-file  .env file to read (default: .env)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

EXAMPLES:
  ./server -addr=:3000
  FPG_ENV=production FPG_STATIC_DIR=/srv/web ./server

SEE ALSO:
  - api/server.go: Router configuration
  - config/config.go: Environment variables
*/
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"

	"github.com/foraldrapengen/benefit-engine/api"
	"github.com/foraldrapengen/benefit-engine/calendar"
	"github.com/foraldrapengen/benefit-engine/config"
)

func main() {
	addr := flag.String("addr", "", "listen address (overrides FPG_HTTP_ADDR)")
	staticDir := flag.String("static", "", "built frontend directory (overrides FPG_STATIC_DIR)")
	envFile := flag.String("env-file", ".env", ".env file to load")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	if *addr != "" {
		cfg.HTTPAddr = *addr
	}
	if *staticDir != "" {
		cfg.StaticDir = *staticDir
	}

	logFormat := httplog.SchemaECS.Concise(!cfg.IsProduction())
	logger := cfg.Logger(os.Stdout, logFormat.ReplaceAttr).With(
		slog.String("app", "foraldrapengen"),
		slog.String("env", cfg.Env),
	)
	slog.SetDefault(logger)

	handler := api.NewHandler(calendar.SystemClock{}, cfg.TaxRate())
	router := api.NewRouter(handler, api.Options{
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		RateLimit:      cfg.RateLimit,
		StaticDir:      cfg.StaticDir,
		Production:     cfg.IsProduction(),
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", slog.String("addr", cfg.HTTPAddr), slog.String("static_dir", cfg.StaticDir))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("server stopped")
}
