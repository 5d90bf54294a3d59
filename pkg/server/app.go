package server

import (
	"context"
	"database/sql"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	domrepo "FinHub/internal/domain/repository"
	"FinHub/pkg/config"
	xhttp "FinHub/pkg/http"
	applogger "FinHub/pkg/logger"
)

// App encapsulates the application lifecycle: start the HTTP server,
// block until a signal, then shut everything down in order.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	db         *sql.DB
	sessions   domrepo.SessionStore
	handlers   []xhttp.Handler
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, logger *applogger.Logger, db *sql.DB, sessions domrepo.SessionStore, handlers []xhttp.Handler) *App {
	return &App{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		sessions: sessions,
		handlers: handlers,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	opts := []xhttp.ServerOption{
		xhttp.WithAppName("FinHub"),
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithRequestMetrics(a.logger, 2*time.Second),
	}
	if !a.cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetricsPath(""))
	} else if a.cfg.Metrics.Path != "" {
		opts = append(opts, xhttp.WithMetricsPath(a.cfg.Metrics.Path))
	}

	a.httpServer = xhttp.NewServer(a.handlers, opts...)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("environment", a.cfg.Environment))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops the server and closes resources.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	if closer, ok := a.sessions.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			a.logger.Warn("session store close error", applogger.Error(err))
		}
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("database close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
