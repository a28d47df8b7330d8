// Package http exposes the JSON API of gophtasks over echo.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/logging"
	"github.com/dmitrijs2005/gophtasks/internal/server/config"
	"github.com/dmitrijs2005/gophtasks/internal/server/models"
	"github.com/dmitrijs2005/gophtasks/internal/server/services"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// UserService is the account side of the API.
type UserService interface {
	Register(ctx context.Context, userName, password string) (*models.User, error)
	Login(ctx context.Context, userName, password string) (*services.LoginResult, error)
	Authenticate(token string) (string, error)
}

// TaskService is the task side of the API. Every call is scoped to userID.
type TaskService interface {
	List(ctx context.Context, userID string) ([]*models.Task, error)
	Create(ctx context.Context, userID, text string) (*models.Task, error)
	Update(ctx context.Context, userID, taskID, text string) (*models.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}

// StatusReporter describes the current storage status for GET /.
type StatusReporter interface {
	DatabaseStatus() string
}

type HTTPServer struct {
	address         string
	shutdownTimeout time.Duration
	echo            *echo.Echo
	logger          logging.Logger
	users           UserService
	tasks           TaskService
	status          StatusReporter
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, us UserService, ts TaskService, st StatusReporter) *HTTPServer {
	s := &HTTPServer{
		address:         cfg.EndpointAddrHTTP,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          l.With("module", "http_server"),
		users:           us,
		tasks:           ts,
		status:          st,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info(c.Request().Context(), "request",
				"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	s.echo = e
	s.routes()

	return s
}

func (s *HTTPServer) routes() {
	s.echo.GET("/", s.getStatus)
	s.echo.POST("/register", s.register)
	s.echo.POST("/login", s.login)

	tasks := s.echo.Group("/tasks", s.authenticate)
	tasks.GET("", s.listTasks)
	tasks.POST("", s.createTask)
	tasks.PUT("/:id", s.updateTask)
	tasks.DELETE("/:id", s.deleteTask)
}

// Handler returns the routed echo instance.
func (s *HTTPServer) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then drains in-flight requests for up to
// the configured shutdown timeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return s.echo.Shutdown(shutdownCtx)
}
