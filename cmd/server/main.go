package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/blanks-game/blanks-backend/internal/catalog"
	"github.com/blanks-game/blanks-backend/internal/config"
	"github.com/blanks-game/blanks-backend/internal/httpapi"
	"github.com/blanks-game/blanks-backend/internal/hub"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	logger, err := buildLogger(cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}
	store, err := catalog.OpenPG(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to open catalog", zap.Error(err))
	}

	ctx := context.Background()
	h := hub.NewHub(ctx, store, logger)

	// Build the router *with* the hub injected
	handler := httpapi.SetupRoutes(h, store, logger)

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func buildLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
