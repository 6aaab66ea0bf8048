// Package api serves a read-only HTTP view of a mock library.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gpumock/internal/config"
	"gpumock/internal/logging"
	"gpumock/internal/metrics"
	"gpumock/internal/mocknvml"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the inspection routes and /metrics.
type Server struct {
	lib      *mocknvml.Library
	cfg      config.ServerConfig
	logger   *logging.Logger
	engine   *gin.Engine
	registry *prometheus.Registry
}

// NewServer builds the router. Every /v1 request runs inside its own
// Init/Shutdown pair on lib.
func NewServer(lib *mocknvml.Library, cfg config.ServerConfig, logger *logging.Logger) *Server {
	s := &Server{
		lib:      lib,
		cfg:      cfg,
		logger:   logger.With("api"),
		engine:   gin.New(),
		registry: prometheus.NewRegistry(),
	}

	s.registry.MustRegister(metrics.NewDeviceCollector(mocknvml.NewInterface(lib), s.logger))

	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.engine.GET("/healthz", s.health)
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	v1 := s.engine.Group("/v1")
	v1.GET("/system", s.system)
	v1.GET("/devices", s.devices)
	v1.GET("/devices/:index", s.device)
	v1.GET("/devices/:index/nvlink", s.nvlink)
	v1.GET("/topology", s.topology)

	return s
}

// Handler returns the router for embedding or tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.engine,
		ReadHeaderTimeout: time.Duration(s.cfg.ReadTimeoutSeconds) * time.Second,
		ReadTimeout:       time.Duration(s.cfg.ReadTimeoutSeconds) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api.server.start", "Inspection server listening", map[string]interface{}{
			"listen": s.cfg.Listen,
		})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve on %s: %w", s.cfg.Listen, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	s.logger.Info("api.server.stop", "Inspection server stopped", nil)
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("api.request", "Request served", map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
		})
	}
}
