package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	configloader "github.com/hllops/pluginkit/external/config"
	profileimpl "github.com/hllops/pluginkit/external/profile"
	rconimpl "github.com/hllops/pluginkit/external/rcon"
	storeimpl "github.com/hllops/pluginkit/external/store"
	webhookimpl "github.com/hllops/pluginkit/external/webhook"
	"github.com/hllops/pluginkit/internal/config"
	"github.com/hllops/pluginkit/internal/publisher"
	"github.com/hllops/pluginkit/internal/refresh"
	"github.com/samber/do/v2"
)

func main() {
	slog.Info("startup: loading configuration")
	cfg := mustLoadConfig()
	initLogger(cfg)
	slog.Info("startup: configuration loaded", "env", cfg.Env, "server_id", cfg.ServerID)

	slog.Info("startup: building dependency graph")
	injector := setupDI(cfg)

	slog.Info("startup: launching live status publisher")
	runPublisher(injector)
}

func mustLoadConfig() *config.Config {
	cfg, err := configloader.Load()
	if err != nil {
		slog.Error("config validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

func initLogger(cfg *config.Config) {
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))
}

func setupDI(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	storeimpl.RegisterDI(injector)
	webhookimpl.RegisterDI(injector)
	profileimpl.RegisterDI(injector)
	rconimpl.RegisterDI(injector)
	refresh.RegisterDI(injector)
	publisher.RegisterDI(injector)

	return injector
}

func runPublisher(injector do.Injector) {
	manager, err := do.Invoke[*publisher.Manager](injector)
	if err != nil {
		slog.Error("failed to resolve publisher", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := manager.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("publisher stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("shutting down")
}
