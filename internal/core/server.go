// Package core provides the API chassis for the AtmosAI insights service.
// It creates a chi router and enforces cross-cutting concerns -- security,
// logging, observability, and error handling -- before requests reach the
// domain-specific handlers.
package core

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"atmosai/internal/config"
)

// MetricsCollector defines the interface for recording API telemetry.
type MetricsCollector interface {
	// RecordRequest records request latency and count for one completed
	// request.
	RecordRequest(method, endpoint, status string, duration time.Duration)
}

// Authenticator verifies the bearer credential presented on API requests.
// It decouples the HTTP layer from the specific auth mechanism, allowing for
// easy mocking in tests.
type Authenticator interface {
	// Verify returns nil when the token is valid. On failure it returns a
	// *types.AppError with code auth_token_invalid.
	Verify(ctx context.Context, token string) error
}

// Server encapsulates all dependencies for the insights API, allowing for
// easy injection during testing and distinct configuration for different
// environments.
type Server struct {
	Config        *config.Config
	Logger        *slog.Logger
	Validator     *Validator
	Metrics       MetricsCollector
	Authenticator Authenticator

	// V1RouteRegistrars are invoked by MountRoutes to register domain
	// handler routes under /v1. Populated by the application entry point to
	// avoid import cycles between core and handler packages.
	V1RouteRegistrars []func(chi.Router)

	startedAt time.Time
	router    *chi.Mux
}

// NewServer initializes dependencies, sets up the router, and prepares the
// server for route mounting. The caller is responsible for mounting routes
// (via MountRoutes) after construction; this separation allows tests to
// customize route registration.
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	return &Server{
		Config:    cfg,
		Logger:    logger,
		Validator: NewValidator(logger),
		startedAt: time.Now().UTC(),
		router:    chi.NewRouter(),
	}, nil
}

// Handler returns the http.Handler interface for the router, for use by
// http.ListenAndServe.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Router returns the underlying chi.Mux for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}
