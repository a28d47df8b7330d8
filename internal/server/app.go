// Package server assembles the gophtasks server: storage, services, the JSON
// API, the gRPC health service and tracing, and runs them until a signal
// arrives.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gophtasks/internal/logging"
	"github.com/dmitrijs2005/gophtasks/internal/server/config"
	"github.com/dmitrijs2005/gophtasks/internal/server/health"
	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/memory"
	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophtasks/internal/server/services"
	"github.com/dmitrijs2005/gophtasks/internal/server/telemetry"

	gs "github.com/dmitrijs2005/gophtasks/internal/server/grpc"
	hs "github.com/dmitrijs2005/gophtasks/internal/server/http"
)

const serviceName = "gophtasks"

type App struct {
	config            *config.Config
	logger            logging.Logger
	repomanager       repomanager.RepositoryManager
	monitor           *health.Monitor
	userService       *services.UserService
	taskService       *services.TaskService
	shutdownTelemetry func(context.Context) error
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	level := slog.LevelDebug
	if c.Environment == config.Production {
		level = slog.LevelInfo
	}
	logger := logging.NewJSONLogger(os.Stdout, level)

	shutdownTelemetry, err := telemetry.Setup(ctx, serviceName, c.OTelEndpoint)
	if err != nil {
		return nil, fmt.Errorf("telemetry init error: %w", err)
	}

	rm, err := newRepositoryManager(ctx, c)
	if err != nil {
		_ = shutdownTelemetry(ctx)
		return nil, fmt.Errorf("db init error: %w", err)
	}

	return &App{
		config:            c,
		logger:            logger,
		repomanager:       rm,
		monitor:           health.NewMonitor(rm, c.HealthCheckInterval, logger),
		userService:       services.NewUserService(rm, c),
		taskService:       services.NewTaskService(rm),
		shutdownTelemetry: shutdownTelemetry,
	}, nil
}

func newRepositoryManager(ctx context.Context, c *config.Config) (repomanager.RepositoryManager, error) {
	switch c.Storage {
	case config.StorageMemory:
		return repomanager.NewMemoryRepositoryManager(memory.NewStore()), nil
	case config.StoragePostgres:
		db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		m := repomanager.NewPostgresRepositoryManager(db)
		if err := m.RunMigrations(ctx); err != nil {
			_ = m.Close()
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown storage %q", c.Storage)
	}
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Received signal", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// runComponent runs fn and stops the whole app if it fails.
func (app *App) runComponent(ctx context.Context, cancelFunc context.CancelFunc, name string, fn func(context.Context) error, errs chan<- error) {
	if err := fn(ctx); err != nil {
		app.logger.Error(ctx, "component failed", "component", name, "error", err)
		errs <- fmt.Errorf("%s: %w", name, err)
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a termination signal arrives or one of
// the servers fails. It returns the first failure, if any.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "env", string(app.config.Environment), "storage", app.config.Storage)

	app.initSignalHandler(ctx, cancelFunc)

	httpServer := hs.NewHTTPServer(app.config, app.logger, app.userService, app.taskService, app.monitor)
	grpcServer := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.monitor.Server())

	errs := make(chan error, 2)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.monitor.Run(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.runComponent(ctx, cancelFunc, "http", httpServer.Run, errs)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.runComponent(ctx, cancelFunc, "grpc", grpcServer.Run, errs)
	}()

	wg.Wait()
	close(errs)

	app.logger.Info(context.Background(), "Stopping app...")

	if err := app.repomanager.Close(); err != nil {
		app.logger.Error(context.Background(), "error closing storage", "error", err)
	}
	if err := app.shutdownTelemetry(context.Background()); err != nil {
		app.logger.Error(context.Background(), "error flushing traces", "error", err)
	}

	return <-errs
}
