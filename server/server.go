// SPDX-License-Identifier: MIT
// Package: lvcolor/server
//
// server.go — Server construction, routing and lifecycle.

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server timeouts.
const (
	ReadTimeout     = 10 * time.Second
	WriteTimeout    = 30 * time.Second
	IdleTimeout     = 120 * time.Second
	ShutdownTimeout = 5 * time.Second
)

// Request limits.
const (
	// DefaultMaxBodyBytes caps request bodies.
	DefaultMaxBodyBytes = 1 << 20

	// DefaultMaxVertices caps the vertex list of a POST body.
	DefaultMaxVertices = 1000
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("server: WithLogger(nil)")
	}
	return func(s *Server) { s.log = l }
}

// WithRegistry sets the Prometheus registry the Server registers its
// collectors on and serves from /metrics. Panics on nil.
func WithRegistry(reg *prometheus.Registry) Option {
	if reg == nil {
		panic("server: WithRegistry(nil)")
	}
	return func(s *Server) { s.reg = reg }
}

// WithMaxBodyBytes caps request bodies at n bytes. Panics on n <= 0.
func WithMaxBodyBytes(n int64) Option {
	if n <= 0 {
		panic("server: WithMaxBodyBytes(n<=0)")
	}
	return func(s *Server) { s.maxBody = n }
}

// WithMaxVertices caps POST vertex lists at n. Panics on n <= 0.
func WithMaxVertices(n int) Option {
	if n <= 0 {
		panic("server: WithMaxVertices(n<=0)")
	}
	return func(s *Server) { s.maxVertices = n }
}

// Server is the HTTP front of the coloring engine. It holds no graph state;
// every request carries its own graph.
type Server struct {
	mux     *http.ServeMux
	log     *zap.Logger
	reg     *prometheus.Registry
	metrics *metrics
	maxBody int64

	maxVertices int
}

// New builds a Server with every route registered.
func New(opts ...Option) *Server {
	s := &Server{
		mux:     http.NewServeMux(),
		log:     zap.NewNop(),
		maxBody: DefaultMaxBodyBytes,

		maxVertices: DefaultMaxVertices,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.reg == nil {
		s.reg = prometheus.NewRegistry()
	}
	s.log = s.log.Named("server")
	s.metrics = newMetrics(s.reg)
	s.routes()

	return s
}

func (s *Server) routes() {
	s.handle("GET /healthz", "healthz", s.handleHealth)
	s.handle("GET /api/samples", "samples", s.handleSamples)
	s.handle("GET /api/samples/{size}", "sample", s.handleSample)
	s.handle("GET /api/algorithms", "algorithms", s.handleAlgorithms)
	s.handle("POST /api/color", "color", s.handleColor)
	s.handle("POST /api/compare", "compare", s.handleCompare)
	s.handle("POST /api/trace", "trace", s.handleTrace)
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{Registry: s.reg}))
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		IdleTimeout:  IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
