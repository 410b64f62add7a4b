// cmd/activities-server/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"mergington-activities/internal/common/config"
	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/observability"
	"mergington-activities/internal/server"
	"mergington-activities/pkg/registry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootstrap := logger.New("info", "console")
		bootstrap.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting activities server...",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// --- Seed the Activity Registry ---
	seed, err := loadSeed(cfg.Registry.SeedPath)
	if err != nil {
		zapLog.Fatal("seed load failed", zap.Error(err))
	}

	reg, err := registry.New(seed)
	if err != nil {
		zapLog.Fatal("registry init failed", zap.Error(err))
	}
	zapLog.Info("Activity registry seeded", zap.Int("activities", reg.Len()))

	// --- HTTP Server ---
	srv := server.New(cfg.Server, reg, log, obs)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	case sig := <-sigCh:
		zapLog.Info("Shutdown signal received, draining requests...",
			zap.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			zapLog.Error("Error shutting down HTTP server", zap.Error(err))
		}
	}

	zapLog.Info("Activities server stopped gracefully")
}

func loadSeed(path string) (*registry.SeedFile, error) {
	if path != "" {
		return registry.LoadSeed(path)
	}
	return registry.DefaultSeed()
}
