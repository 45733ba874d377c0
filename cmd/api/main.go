package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"brew-backend/internal/shared/config"
	"brew-backend/internal/shared/server"
	"brew-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.Init(cfg.LogLevel)
	defer telemetry.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg); err != nil {
		telemetry.Error("server.exit", map[string]any{"error": err})
		telemetry.Sync()
		os.Exit(1)
	}
}
