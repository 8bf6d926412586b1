// Package server initializes and runs the application server.
// It validates configuration, opens the database, applies migrations,
// and starts the HTTP server, shutting everything down gracefully on
// SIGINT/SIGTERM/SIGQUIT.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/webmanager/internal/logging"
	"github.com/dmitrijs2005/webmanager/internal/server/config"
	"github.com/dmitrijs2005/webmanager/internal/server/httpapi"
	"github.com/dmitrijs2005/webmanager/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/webmanager/internal/server/services"
	"github.com/dmitrijs2005/webmanager/internal/server/shared/db"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	employeeService *services.EmployeeService
	hostingService  *services.HostingService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	conn, err := db.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	es := services.NewEmployeeService(conn, rm, cfg)
	hs := services.NewHostingService(conn, rm)

	return &App{config: cfg, logger: logger, db: conn, employeeService: es, hostingService: hs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddr, app.logger,
		app.employeeService, app.hostingService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
}
