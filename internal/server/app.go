// Package server initializes and runs the Taskify API server.
// It loads configuration, opens the database, applies migrations,
// wires the service layer into the HTTP route table, and handles
// graceful shutdown on SIGINT/SIGTERM/SIGQUIT.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/taskify/internal/logging"
	"github.com/dmitrijs2005/taskify/internal/server/auth"
	"github.com/dmitrijs2005/taskify/internal/server/config"
	"github.com/dmitrijs2005/taskify/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/taskify/internal/server/rest"
	"github.com/dmitrijs2005/taskify/internal/server/rest/handlers"
	"github.com/dmitrijs2005/taskify/internal/server/rest/middleware"
	"github.com/dmitrijs2005/taskify/internal/server/services"
)

const (
	handlerTimeout  = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	repos  repomanager.RepositoryManager
	server *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}),
	))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	tokens := auth.NewService([]byte(cfg.SecretKey), cfg.TokenValidityDuration)

	us := services.NewUserService(db, rm, tokens)
	ts := services.NewTaskService(db, rm)

	ew := rest.ErrorWriter{Verbose: cfg.VerboseErrors}

	mux := http.NewServeMux()
	handlers.Register(mux, logger, handlers.Deps{Users: us, Tasks: ts, Tokens: tokens}, ew, handlerTimeout)

	handler := middleware.Rescue(
		middleware.Logging(
			middleware.CORS(mux, cfg.AllowedOrigins),
			logger,
		),
		logger,
	)

	srv := &http.Server{Addr: cfg.Address, Handler: handler}

	return &App{config: cfg, logger: logger, db: db, repos: rm, server: srv}, nil
}

func parseLogLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Run applies migrations and serves HTTP until the context is cancelled
// or a termination signal arrives, then drains in-flight requests.
func (app *App) Run(ctx context.Context) error {

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := app.repos.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting server", "addr", app.config.Address)
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := app.db.Close(); err != nil {
		return fmt.Errorf("db close: %w", err)
	}

	app.logger.Info(ctx, "server stopped")
	return nil
}
