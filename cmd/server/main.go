// Command server serves the enrolment dashboard and runs analyses over
// uploaded extract files.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/config"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/core"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/core/tables"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/ingest"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/logging"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/web"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded", "config", cfg.String())

	normalizer, err := tables.NewNormalizer(cfg.Normalize.StateAliasFile)
	if err != nil {
		slog.Error("failed to load state aliases", "path", cfg.Normalize.StateAliasFile, "error", err)
		os.Exit(1)
	}

	slog.Info("categories registered", "count", core.SchemaCount())
	for _, schema := range core.All() {
		slog.Debug("category", "name", schema.Category, "count_columns", len(schema.Counts))
	}

	pipeline := ingest.NewPipeline(normalizer, ingest.Options{MaxFileSize: cfg.Input.MaxFileSize})
	server := web.NewServer(pipeline, cfg)

	// Graceful shutdown
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}

	// Start returns as soon as Shutdown begins; wait for it to finish.
	<-shutdownDone
	slog.Info("server stopped")
}
