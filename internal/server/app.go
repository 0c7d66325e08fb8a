// Package server initializes and runs the application: it wires config,
// logging, storage, services and the HTTP API together and handles
// graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"taskdeck/internal/logging"
	"taskdeck/internal/server/config"
	"taskdeck/internal/server/httpapi"
	"taskdeck/internal/server/repositories/repomanager"
	"taskdeck/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
}

func NewApp(c *config.Config) *App {
	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	return &App{config: c, logger: logging.NewSlogLogger(sl)}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	db, err := sql.Open("pgx", app.config.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	us := services.NewUserService(db, rm, app.config)
	ts := services.NewTaskService(db, rm)

	srv := httpapi.NewServer(app.config.EndpointAddr, app.logger, us, ts, app.config.SecretKey)

	if err := srv.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}

	return nil
}
