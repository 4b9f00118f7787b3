package main

import (
	"context"
	"github.com/zagvozdeen/irys-gallery/api"
	"github.com/zagvozdeen/irys-gallery/config"
	"github.com/zagvozdeen/irys-gallery/internal/gallery"
	"github.com/zagvozdeen/irys-gallery/internal/render"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := config.New()
	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is not set in environment variables")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := gallery.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", "err", err)
		os.Exit(1)
	}
	defer store.Close()

	if os.Getenv("MIGRATE") == "true" {
		if err = store.Migrate(ctx); err != nil {
			logger.Error("Failed to migrate database", "err", err)
			os.Exit(1)
		}
		logger.Info("Database schema applied")
	}

	if err = api.New(cfg, store, render.New()).Run(ctx); err != nil {
		logger.Error("Failed to run server", "err", err)
		os.Exit(1)
	}
}
