package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/riskapi/internal/config"
	"github.com/ferdiebergado/riskapi/internal/db"
	"github.com/ferdiebergado/riskapi/internal/middleware"
	"github.com/ferdiebergado/riskapi/internal/pkg/logging"
	"github.com/ferdiebergado/riskapi/internal/platform/router"
)

// Run loads configuration, connects to the database and serves HTTP until ctx
// is canceled.
func Run(ctx context.Context) error {
	slog.Info("Initializing...")

	if os.Getenv("ENV") != "production" {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}

	cfg, err := config.Load("config.json")
	if err != nil {
		return err
	}

	logging.SetupLogger(cfg.App.Env, cfg.App.LogLevel, os.Stdout)

	dbConn, err := db.Connect(ctx, cfg.DB, cfg.Conn)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	provider, err := newProvider(dbConn)
	if err != nil {
		return err
	}

	middlewares := []router.Middleware{
		middleware.TrackResponses,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		provider.Metrics.Middleware,
		middleware.ContextGuard,
	}

	api := New(cfg, provider, middlewares)
	if err := api.Start(ctx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}
