package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Gunvolt24/person_sync/config"
	"github.com/Gunvolt24/person_sync/internal/app"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Сборка приложения; недоступный брокер после всех попыток — фатал.
	a, cleanup, err := app.Bootstrap(ctx, &cfg)
	if err != nil {
		cleanup()
		os.Exit(1)
	}
	defer cleanup()

	if err := a.Run(ctx); err != nil {
		a.Logger.Errorf(ctx, "run failed: %v", err)
		os.Exit(1)
	}
}
