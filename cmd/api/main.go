package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notebook-ai/internal/audio"
	"notebook-ai/internal/backend"
	"notebook-ai/internal/config"
	"notebook-ai/internal/http"
	"notebook-ai/internal/service"
	"notebook-ai/internal/storage"
)

// General API information
//
// This API ingests files, copied text and websites into notebooks and hands
// them to the remote document processor.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: Notebook AI Ingestion API
//   version: 1.0.0
// schemes:
//   - http
// consumes:
//   - application/json
//   - multipart/form-data
// produces:
//   - application/json

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	sourceRepo := storage.NewSourceRepo(db)
	notificationRepo := storage.NewNotificationRepo(db)
	notebookRepo := storage.NewNotebookRepo(db)

	// Create backend client (external service layer)
	backendClient := backend.NewClient(cfg.BackendURL, cfg.BackendAPIKey, cfg.StorageBucket)
	slog.Debug("Backend configuration", "base_url", cfg.BackendURL, "bucket", cfg.StorageBucket)

	// Create services
	notifications := service.NewNotificationService(notificationRepo)
	registry := service.NewRegistry()
	ingest := service.NewIngestService(service.IngestDeps{
		Store:     sourceRepo,
		Uploader:  backendClient,
		Processor: backendClient,
		Generator: backendClient,
		Webhook:   backendClient,
		Notifier:  notifications,
		Registry:  registry,
	}, service.IngestConfig{
		StaggerDelay: cfg.StaggerDelay,
		MaxParallel:  cfg.MaxParallel,
	})
	sources := service.NewSourceService(sourceRepo)
	refresher := audio.NewRefresher(notebookRepo, backendClient, cfg.AudioRefreshInterval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start audio URL refresh in background
	go func() {
		if err := refresher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("Audio refresher stopped", "error", err)
		}
	}()

	// Create router with dependencies
	router := http.NewRouter(&http.Deps{
		IngestService:       ingest,
		SourceService:       sources,
		NotificationService: notifications,
		Submissions:         registry,
		Audio:               refresher,
		DB:                  db,
		Inflight:            registry.Len,
	})

	// Start API server
	addr := ":" + cfg.APIPort
	srv := &nethttp.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		slog.Info("Shutting down API server", "inflight_submissions", registry.Len())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("API server shutdown failed", "error", err)
		}
	}()

	slog.Info("Starting API server", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		log.Fatalf("API server failed to start: %v", err)
	}
}
