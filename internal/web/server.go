// Package web provides the HTTP dashboard server.
//
// The server exposes the summary written by the batch processor and runs
// fresh analyses over uploaded extract files. Each analysis is an independent
// run with its own Summary; finished analyses are kept in an in-memory cache
// for a configurable TTL.
package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/patrickmn/go-cache"
	"github.com/rs/cors"

	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/config"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/ingest"
	webmw "github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/web/middleware"
)

// Server is the HTTP server for the enrolment dashboard.
type Server struct {
	pipeline *ingest.Pipeline
	cfg      *config.Config
	analyses *cache.Cache
	limiter  *Limiter
	router   *chi.Mux
	server   *http.Server
}

// NewServer creates a server that runs analyses through pipeline.
func NewServer(pipeline *ingest.Pipeline, cfg *config.Config) *Server {
	s := &Server{
		pipeline: pipeline,
		cfg:      cfg,
		analyses: cache.New(cfg.Cache.TTL, cfg.Cache.CleanupInterval),
		limiter:  NewLimiter(cfg.Upload.MaxConcurrent, cfg.Upload.MaxWaitTime),
		router:   chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(webmw.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(webmw.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	s.router.Use(securityHeaders(s.cfg.Security.EnableCSP))
	s.router.Use(cors.New(cors.Options{
		AllowedOrigins: s.cfg.Security.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "X-API-Key"},
		MaxAge:         300,
	}).Handler)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Pages
	s.router.Get("/", s.handleDashboard)
	s.router.Get("/analyses/{id}", s.handleAnalysisPage)

	// Summary artifact, also at the path the static dashboard fetches
	s.router.Get("/dashboard_data.json", s.handleSummary)
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/summary", s.handleSummary)
		r.Get("/analyses/{id}", s.handleGetAnalysis)

		r.Group(func(r chi.Router) {
			r.Use(webmw.APIKeyAuth(s.cfg.Security.RequireAPIKey, s.cfg.Security.APIKeys))
			if s.cfg.Rate.Enabled {
				r.Use(newRateLimiter(s.cfg.Rate.AnalyzePerMinute, time.Minute).middleware)
			}
			r.Post("/analyze", s.handleAnalyze)
		})
	})
}

// Start begins listening for HTTP requests on the configured address.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	slog.Info("server listening", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown waits for running analyses, then stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if active := s.limiter.ActiveCount(); active > 0 {
		slog.Info("waiting for analyses to complete", "active", active)
		if err := s.limiter.WaitForDrain(ctx); err != nil {
			slog.Warn("analyses did not complete in time", "error", err)
		}
	}

	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds security headers to all responses.
func securityHeaders(enableCSP bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			// The dashboard page inlines its stylesheet and loads nothing else.
			if enableCSP {
				w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:")
			}

			next.ServeHTTP(w, r)
		})
	}
}
