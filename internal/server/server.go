// Package server implements the tinct HTTP API.
//
// The API is thin glue over the library packages: requests carry graphs in
// the pkg/graphio wire format, coloring work happens in pkg/color, and
// completed runs are recorded in a pkg/archive store. Endpoints:
//
//	POST /v1/color     color a graph with a named strategy
//	POST /v1/generate  generate a random graph
//	GET  /v1/runs      list recorded runs, newest first
//	GET  /v1/runs/{id} fetch one recorded run
//	GET  /healthz      liveness probe
//
// A negative coloring result ("no coloring within the bound") is a valid
// answer and returns 200 with found=false; only invalid input and exhausted
// budgets are errors.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/tinct/pkg/archive"
	"github.com/matzehuels/tinct/pkg/cache"
)

const (
	defaultAddr            = ":8080"
	defaultCacheTTL        = 24 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
	readHeaderTimeout      = 5 * time.Second
)

// Config holds server settings.
type Config struct {
	// Addr is the listen address. Defaults to ":8080".
	Addr string

	// MaxExpansions caps the search work of a single request. Requests may
	// ask for a lower cap but never a higher one. Zero means unlimited.
	MaxExpansions int

	// CacheTTL is the lifetime of cached coloring results.
	// Defaults to 24 hours.
	CacheTTL time.Duration
}

// Server serves the tinct HTTP API.
type Server struct {
	cfg     Config
	logger  *log.Logger
	runs    archive.Store
	results cache.Cache
	router  chi.Router
}

// New creates a server backed by the given run archive and result cache.
// A nil store falls back to an in-memory archive and a nil cache disables
// result caching.
func New(cfg Config, runs archive.Store, results cache.Cache, logger *log.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if runs == nil {
		runs = archive.NewMemoryStore()
	}
	if results == nil {
		results = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		runs:    runs,
		results: results,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/color", s.handleColor)
		r.Post("/generate", s.handleGenerate)
		r.Get("/runs", s.handleListRuns)
		r.Get("/runs/{id}", s.handleGetRun)
	})

	s.router = r
	return s
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves requests until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		// Capture ListenAndServe errors such as "port already in use".
		// After a graceful Shutdown, ListenAndServe always returns
		// http.ErrServerClosed, which the select below ignores.
		serverErr <- srv.ListenAndServe()
	}()

	s.logger.Infof("Listening on %s", s.cfg.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-serverErr:
		return err
	}
}

// logRequests logs one line per completed request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}
