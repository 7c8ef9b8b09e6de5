// Package webhook exposes the HTTP endpoint the provider pushes activity
// events to.
package webhook

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"fitsync/internal/domain"
)

// EventHandler processes a validated provider event.
type EventHandler interface {
	Handle(ctx context.Context, event domain.ProviderEvent) error
}

// Server terminates the provider's webhook callbacks: the one-time GET
// subscription handshake and the POST event deliveries.
type Server struct {
	echo        *echo.Echo
	handler     EventHandler
	verifyToken string
	logger      *slog.Logger
}

func New(handler EventHandler, verifyToken string, logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:        e,
		handler:     handler,
		verifyToken: verifyToken,
		logger:      logger,
	}

	e.GET("/webhook", s.validate)
	e.POST("/webhook", s.receive)
	e.GET("/healthz", s.healthz)

	return s
}

func (s *Server) Start(addr string) error {
	s.logger.Info("webhook server listening", "addr", addr)
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// validate answers the subscription handshake. The provider sends a
// challenge and expects it echoed back verbatim when the verify token
// matches.
func (s *Server) validate(c echo.Context) error {
	mode := c.QueryParam("hub.mode")
	token := c.QueryParam("hub.verify_token")
	challenge := c.QueryParam("hub.challenge")

	if mode != "subscribe" || token != s.verifyToken {
		s.logger.Warn("webhook validation rejected", "mode", mode)
		return c.JSON(http.StatusForbidden, map[string]string{"error": "verification failed"})
	}

	return c.JSON(http.StatusOK, map[string]string{"hub.challenge": challenge})
}

// receive accepts one event delivery. The provider retries on non-2xx,
// so processing errors return 500 to get the event redelivered.
func (s *Server) receive(c echo.Context) error {
	var event domain.ProviderEvent
	if err := c.Bind(&event); err != nil {
		s.logger.Warn("malformed webhook payload", "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed payload"})
	}

	s.logger.Info("received provider event",
		"object_type", event.ObjectType,
		"aspect_type", event.AspectType,
		"object_id", event.ObjectID,
		"owner_id", event.OwnerID)

	if err := s.handler.Handle(c.Request().Context(), event); err != nil {
		s.logger.Error("failed to process provider event",
			"object_id", event.ObjectID,
			"error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "processing failed"})
	}

	return c.NoContent(http.StatusOK)
}

func (s *Server) healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
