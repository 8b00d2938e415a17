// Package server wires the user authority together: storage, migrations,
// the user service and the HTTP API. Run serves until the context ends and
// then shuts down gracefully.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrijs2005/userconsole/internal/logging"
	"github.com/dmitrijs2005/userconsole/internal/server/config"
	"github.com/dmitrijs2005/userconsole/internal/server/httpapi"
	"github.com/dmitrijs2005/userconsole/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/userconsole/internal/server/services"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	server      *http.Server
}

// NewApp opens storage and runs migrations. An empty DatabaseDSN keeps
// users in memory for the lifetime of the process.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	rm, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := rm.RunMigrations(ctx); err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc := services.NewUserService(rm, cfg)
	h := httpapi.NewHandler(svc, logger, cfg.CookieName, reg)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &App{config: cfg, logger: logger, repomanager: rm, server: srv}, nil
}

func openStorage(ctx context.Context, cfg *config.Config, logger logging.Logger) (repomanager.RepositoryManager, error) {
	if cfg.DatabaseDSN == "" {
		logger.Warn(ctx, "no database configured, users are kept in memory")
		return repomanager.NewMemoryRepositoryManager(), nil
	}
	rm, err := repomanager.OpenPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	return rm, nil
}

// Run serves on the configured address until ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.server.Addr)
	if err != nil {
		_ = app.repomanager.Close()
		return fmt.Errorf("listen: %w", err)
	}
	return app.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (app *App) Serve(ctx context.Context, ln net.Listener) error {
	defer func() {
		if err := app.repomanager.Close(); err != nil {
			app.logger.Error(ctx, "closing storage", logging.Err(err))
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "HTTP server starting", "address", ln.Addr().String())
		err := app.server.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		app.logger.Info(ctx, "shutting down HTTP server gracefully")
		return app.server.Shutdown(timeoutCtx)
	}
}
