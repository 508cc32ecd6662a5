// Package server provides the HTTP REST API over the screening core.
package server

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/cv-screener/internal/qa"
	"github.com/jonathan/cv-screener/internal/search"
	"github.com/jonathan/cv-screener/internal/server/ratelimit"
	"github.com/jonathan/cv-screener/internal/types"
)

// Timeouts for the HTTP server
const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Server serves the screening core over HTTP. It holds a fully scored
// snapshot of the corpus; filtering and sorting never see a partially
// scored candidate.
type Server struct {
	httpServer  *http.Server
	log         *zap.Logger
	rateLimiter *ratelimit.Limiter
	searcher    *search.Searcher
	qaRouter    *qa.Router

	scored []types.ScoredCandidate
	job    *types.JobDescription
}

// Config holds server configuration
type Config struct {
	Port       int
	SearchSeed int64
}

// New creates a server over a scored corpus. A zero SearchSeed seeds the
// search jitter from the clock.
func New(cfg Config, scored []types.ScoredCandidate, job *types.JobDescription, log *zap.Logger) *Server {
	seed := cfg.SearchSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	searcher := search.New(rand.NewSource(seed))

	s := &Server{
		log:         log,
		rateLimiter: ratelimit.NewLimiter(ratelimit.DefaultCapacity, ratelimit.DefaultRefillRate),
		searcher:    searcher,
		qaRouter:    qa.NewRouter(searcher),
		scored:      scored,
		job:         job,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /job", s.handleJob)
	mux.HandleFunc("GET /candidates", s.handleCandidates)
	mux.HandleFunc("POST /filter", s.handleFilter)
	mux.HandleFunc("POST /search", s.handleSearch)
	mux.HandleFunc("POST /qa", s.handleQA)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.rateLimiter.Middleware(s.logRequests(mux)),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	return s
}

// Handler exposes the configured handler chain for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until SIGINT/SIGTERM, then shuts down gracefully
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		s.log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// logRequests logs method, path and duration for each request
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
