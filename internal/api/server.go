// Package api provides the HTTP API server and handlers for the Shelfmark catalog.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/shelfmarkapp/shelfmark-server/internal/auth"
	"github.com/shelfmarkapp/shelfmark-server/internal/config"
	"github.com/shelfmarkapp/shelfmark-server/internal/http/response"
	"github.com/shelfmarkapp/shelfmark-server/internal/service"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	bookService *service.BookService
	tokens      *auth.TokenService
	cfg         *config.Config
	router      *chi.Mux
	logger      *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(bookService *service.BookService, tokens *auth.TokenService, cfg *config.Config, logger *slog.Logger) *Server {
	s := &Server{
		bookService: bookService,
		tokens:      tokens,
		cfg:         cfg,
		router:      chi.NewRouter(),
		logger:      logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(secureHeaders)

	// Cross-origin access is restricted to the one configured client origin.
	allowedHeaders := []string{"Content-Type"}
	if s.cfg.Auth.Enabled {
		allowedHeaders = append(allowedHeaders, "Authorization")
	}
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{s.cfg.Server.ClientOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: allowedHeaders,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	s.router.Route("/api/books", func(r chi.Router) {
		// The bearer-token gate is attached only when explicitly enabled.
		if s.cfg.Auth.Enabled {
			r.Use(s.requireAuth)
		}

		r.Get("/", s.handleListBooks)
		r.Get("/{id}", s.handleGetBook)
		r.Post("/", s.handleCreateBook)
		r.Put("/{id}", s.handleUpdateBook)
		r.Delete("/{id}", s.handleDeleteBook)
	})
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]string{
		"status": "healthy",
	}, s.logger)
}
