// Package server exposes the ISBN operations over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Milover/isbnref/internal/metainfo"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ShutdownTimeout bounds the graceful shutdown of the server.
var ShutdownTimeout = 10 * time.Second

// Server serves the ISBN API.
type Server struct {
	// Addr is the listen address.
	Addr string
	// Jobs limits the numbers validated concurrently per batch request.
	Jobs int

	metrics *Metrics
	router  chi.Router
}

// New builds a server and its routes.
func New(addr string, jobs int) *Server {
	s := &Server{
		Addr:    addr,
		Jobs:    jobs,
		metrics: NewMetrics(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	config := huma.DefaultConfig("isbnref", metainfo.Version)
	config.Info.Description = "Validate, convert and split International Standard Book Numbers."
	api := humachi.New(r, config)
	s.setup(api)

	r.Handle("/metrics", s.metrics.Handler())
	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		zap.S().Infow("starting server", "addr", s.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("%w", err)
	case <-ctx.Done():
	}

	zap.S().Infow("shutting down server", "addr", s.Addr)
	sctx, cncl := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cncl()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		zap.S().Infow("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
