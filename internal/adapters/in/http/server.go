// Package http exposes the process health check over echo.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether the database connection is usable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server answers GET /health. The check succeeds only while the database
// answers a ping.
type Server struct {
	echo *echo.Echo
	db   Pinger
}

func NewServer(db Pinger) *Server {
	s := &Server{
		echo: echo.New(),
		db:   db,
	}
	s.echo.HideBanner = true
	s.echo.GET("/health", s.Health)
	return s
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx.Request().Context(), pingTimeout)
	defer cancel()

	if err := s.db.PingContext(pingCtx); err != nil {
		ctx.Logger().Errorf("health check failed: %v", err)
		return ctx.String(http.StatusServiceUnavailable, "Unhealthy")
	}

	return ctx.String(http.StatusOK, "Healthy")
}

// Start listens on address until Shutdown is called. A clean shutdown
// returns nil.
func (s *Server) Start(address string) error {
	if err := s.echo.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
