package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ferdiebergado/riskapi/internal/config"
	"github.com/ferdiebergado/riskapi/internal/field"
	"github.com/ferdiebergado/riskapi/internal/platform/router"
	"github.com/ferdiebergado/riskapi/internal/risktype"
	"github.com/ferdiebergado/riskapi/internal/system"
)

type App struct {
	server          *http.Server
	config          *config.Config
	provider        *Provider
	middlewares     []router.Middleware
	stop            context.CancelFunc
	shutdownTimeout time.Duration
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.provider.Router.Use(mw)
	}
}

func (a *App) setupRoutes() http.Handler {
	riskTypeRepo := risktype.NewRepository(a.provider.DB)
	riskTypeService := risktype.NewService(riskTypeRepo)

	fieldRepo := field.NewRepository(a.provider.DB)
	fieldService := field.NewService(fieldRepo)

	h := &handlers{
		system:   system.NewHandler(a.provider.Migrator, a.provider.DB),
		riskType: risktype.NewHandler(riskTypeService),
		field:    field.NewHandler(fieldService),
		metrics:  a.provider.Metrics.Handler(),
	}

	return routes(a.provider.Router, h, a.provider.Validator, a.config.Server.MaxBodyBytes)
}

// Handler returns the fully wired HTTP handler.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

func (a *App) Start(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	// In-flight requests keep their context until they drain or the timeout hits.
	err := a.server.Shutdown(shutdownCtx)
	a.stop()
	if err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

// New wires the routes and middlewares. Global middlewares are registered
// before any route.
func New(cfg *config.Config, provider *Provider, middlewares []router.Middleware) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr: fmt.Sprintf(":%d", serverCfg.Port),
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	a := &App{
		config:          cfg,
		provider:        provider,
		server:          server,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}

	a.registerMiddlewares()
	server.Handler = a.setupRoutes()

	return a
}
