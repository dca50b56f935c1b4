// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server serves the dashboard over HTTP: an embedded single-page
// frontend plus a JSON API that exposes the computed ViewModel. The server
// holds only the read-only Dataset handle, so request handlers need no
// locking.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pdiddy/scholardash/internal/dataset"
	"github.com/pdiddy/scholardash/pkg/types"
)

// Server is the HTTP dashboard server.
type Server struct {
	ds     *dataset.Dataset
	cfg    types.Config
	log    *zap.Logger
	engine *gin.Engine

	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// New builds a Server around the loaded dataset.
func New(ds *dataset.Dataset, cfg types.Config, log *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		ds:       ds,
		cfg:      cfg,
		log:      log,
		registry: prometheus.NewRegistry(),
	}

	s.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scholardash_http_requests_total",
		Help: "HTTP requests by path and status code.",
	}, []string{"path", "status"})
	s.latency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scholardash_http_request_duration_seconds",
		Help:    "HTTP request latency by path.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})
	s.registry.MustRegister(s.requests, s.latency)

	engine := gin.New()
	engine.Use(s.requestLogger(), gin.Recovery())

	engine.GET("/", s.handleIndex)
	engine.GET("/healthz", s.handleHealth)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	api := engine.Group("/api")
	api.GET("/view", s.handleView)
	api.GET("/filters", s.handleFilters)

	s.engine = engine
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := s.cfg.Server.Addr
	if addr == "" {
		addr = types.DefaultServerAddr
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("dashboard listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
