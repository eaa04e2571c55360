package main

import (
	"chat-uploads/domain/mimetypes"
	"chat-uploads/internal"
	"chat-uploads/observability"
	"chat-uploads/repositories"
	"chat-uploads/runtime/workers"
	"chat-uploads/services"
	"chat-uploads/sink"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the engine lifecycle, and
// centralizes error reporting, so every defer (database close included)
// executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Storage layout. The directory tree is normally provisioned by the
	// deployment; creating missing subdirectories here is a convenience for
	// local runs, not a substitute for it.
	for _, sub := range mimetypes.Subdirectories() {
		if err := os.MkdirAll(filepath.Join(config.UploadRootDir, string(sub)), 0o755); err != nil {
			return fmt.Errorf("upload directory bootstrap failed: %w", err)
		}
	}

	// 3. Database (BadgerDB) for the artifact / duplicate index
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 4. Engine assembly
	monitoring := observability.NewMonitoringManager(log)
	store := services.NewSessionStore(log)
	artifactRepo := repositories.NewArtifactRepository(db, log)
	duplicates := services.NewDuplicateIndex(log, artifactRepo)
	assembler := services.NewHashingAssembler(log, config.UploadRootDir)

	coordinator := services.NewUploadCoordinator(
		log,
		services.NewChunkValidator(),
		store,
		assembler,
		duplicates,
		nil, // artifact registry is wired by the embedding chat server
		monitoring,
		services.CoordinatorConfig{
			MaxFileSizeBytes:    config.MaxFileSizeBytes,
			AllowedContentTypes: config.ContentTypes(),
		},
	)

	chunkSink := sink.NewChunkSink(config.IngestBufferSize)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go monitoring.Listen(ctx)

	if config.DebugPort > 0 {
		server := internal.StartDebugServer(log, config.DebugPort, monitoring, artifactRepo)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()
	}

	// 6. Background workers under supervision
	sup := workers.NewSupervisor(log)
	sup.Add(
		workers.NewIngestWorker(log, chunkSink, coordinator),
		workers.NewSessionSweeperWorker(log, store, config.SessionTimeout, config.SweepInterval, monitoring),
		workers.NewTelemetryWorker(log, monitoring, config.MetricInterval),
	)

	log.Info("Upload engine started",
		"root", config.UploadRootDir,
		"max_file_size", config.MaxFileSizeBytes,
		"session_timeout", config.SessionTimeout,
	)

	// Run blocks until the signal context cancels and workers drain.
	sup.Run(ctx)

	log.Info("Shutting down gracefully...")
	return nil
}
