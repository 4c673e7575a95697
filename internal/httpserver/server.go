package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/PortNumber53/health-service/internal/config"
	"github.com/PortNumber53/health-service/internal/handlers"
	requestlogging "github.com/PortNumber53/health-service/internal/middleware"
)

// Server wraps an http.Server with convenience helpers for startup/shutdown.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// New constructs an HTTP server using the provided configuration and logger.
func New(cfg config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      NewRouter(logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     zap.NewStdLog(logger),
	}

	return &Server{httpServer: srv, logger: logger}
}

// NewRouter returns the router with middleware and routes registered. Unknown
// paths fall through to chi's 404 and non-GET methods on /health get its 405.
func NewRouter(logger *zap.Logger) chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestlogging.RequestLogger(logger))
	router.Use(middleware.Recoverer)

	router.Get("/health", handlers.Health)

	return router
}

// Start begins serving HTTP traffic. It blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("server listening", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.httpServer.Shutdown(ctx)
}

// Addr reports the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Handler exposes the underlying http.Handler for testing.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
