// Command api serves the Reading Log HTTP API.
//
//go:generate swag init -g cmd/api/main.go -d ../../ -o ../../docs --outputTypes go,json
//
// @title Reading Log API
// @version 1.0.0
// @description An API for managing your reading log (books, authors, and read status).
// @host localhost:3000
// @BasePath /
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"readinglog/internal/apidocs"
	"readinglog/internal/app"
	"readinglog/internal/config"
	"readinglog/internal/logger"

	"go.uber.org/zap"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	apidocs.SetHost(cfg.Port)
	if cfg.DocsSnapshotPath != "" {
		if err := apidocs.WriteSnapshot(cfg.DocsSnapshotPath); err != nil {
			zl.Error("api document snapshot failed", zap.String("path", cfg.DocsSnapshotPath), zap.Error(err))
		} else {
			zl.Info("api document written", zap.String("path", cfg.DocsSnapshotPath))
		}
	}

	store, err := app.OpenStore(ctx, cfg, zl)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			zl.Warn("store close failed", zap.Error(err))
		}
	}()

	return app.New(ctx, cfg, zl, store).Run(ctx)
}
