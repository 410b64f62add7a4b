// internal/server/server.go
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mergington-activities/internal/common/config"
	apierrors "mergington-activities/internal/common/errors"
	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/observability"
	"mergington-activities/pkg/registry"
)

// Server maps the three activity operations onto the registry and serves the
// operational endpoints (health, ready, metrics).
type Server struct {
	cfg       config.ServerConfig
	registry  *registry.Registry
	logger    logger.Logger
	obs       *observability.Observability
	responder *apierrors.Responder
	httpSrv   *http.Server
}

func New(cfg config.ServerConfig, reg *registry.Registry, log logger.Logger, obs *observability.Observability) *Server {
	s := &Server{
		cfg:       cfg,
		registry:  reg,
		logger:    log,
		obs:       obs,
		responder: apierrors.NewResponder(log),
	}

	s.httpSrv = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.Handler(),
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Millisecond,
	}
	return s
}

// Handler builds the route table. Activity names are path segments matched
// literally after URL decoding, so names with spaces ("Chess Club") work.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /activities", s.handleListActivities)
	mux.HandleFunc("POST /activities/{activity}/signup", s.handleSignup)
	mux.HandleFunc("DELETE /activities/{activity}/unregister", s.handleUnregister)

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ready", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s.withMiddleware(mux)
}

// Start blocks serving HTTP until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", map[string]interface{}{
		"addr": s.cfg.Addr(),
	})
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}
