// Package api provides the HTTP API server and handlers for the Lucky Sign service.
package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/listenupapp/luckysign/internal/config"
	"github.com/listenupapp/luckysign/internal/logger"
	"github.com/listenupapp/luckysign/internal/ratelimit"
	"github.com/listenupapp/luckysign/internal/version"
)

// apiPrefix is the path prefix covered by the rate limiter.
const apiPrefix = "/api/"

// Server holds dependencies for HTTP handlers.
type Server struct {
	services *Services
	router   *chi.Mux
	api      huma.API
	logger   *logger.Logger
	limiter  *ratelimit.KeyedRateLimiter
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(services *Services, cfg *config.Config, log *logger.Logger) *Server {
	router := chi.NewRouter()

	// Middleware has to be in place before humachi registers its routes.
	router.Use(requestContext(log))
	router.Use(middleware.RealIP)
	router.Use(accessLog(log))
	router.Use(middleware.Recoverer)
	router.Use(corsHandler(cfg.Server.CORSOrigins))

	var limiter *ratelimit.KeyedRateLimiter
	if cfg.RateLimit.RequestsPerMinute > 0 {
		limiter = ratelimit.PerMinute(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
		router.Use(rateLimit(limiter, apiPrefix, log))
	}

	humaConfig := huma.DefaultConfig("Lucky Sign API", version.Version)
	humaConfig.Info.Description = "Draws lucky signs: a mirrored digit grid painted with colours derived from a birth date and name."
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)

	api := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		services: services,
		router:   router,
		api:      api,
		logger:   log.WithComponent("api"),
		limiter:  limiter,
	}

	s.registerRoutes()

	return s
}

// registerRoutes registers every operation on the huma API.
func (s *Server) registerRoutes() {
	s.registerHealthRoutes()
	s.registerInstanceRoutes()
	s.registerSignRoutes()
	s.registerColorRoutes()
	s.registerGridRoutes()
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// API returns the huma API, used by tests and the OpenAPI dump.
func (s *Server) API() huma.API {
	return s.api
}

// Close stops background work owned by the server.
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}

// HTTPServer wraps the handler in an http.Server using the configured timeouts.
func (s *Server) HTTPServer(cfg *config.Config) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           s,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
}
