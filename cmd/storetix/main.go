package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/kelvish/storetix/docs"
	"github.com/kelvish/storetix/internal/app"
	"github.com/kelvish/storetix/internal/config"
)

// @title Storetix API
// @version 1.0
// @description Event-ticketing storefront: catalog, cart, coupons, checkout.
// @host localhost:8080
// @BasePath /
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.New()
	if err != nil {
		logger.Error("failed to load config", "error", err)
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create application", "error", err)
	}

	if err := application.Run(context.Background()); err != nil {
		logger.Error("application finished with error", "error", err)
	}
}
