package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/me/folio/internal/auth"
	"github.com/me/folio/internal/config"
	"github.com/me/folio/internal/store"
	"github.com/me/folio/internal/ui"
	"github.com/me/folio/internal/upload"
)

// Server is the Folio HTTP server: public site, admin back-office, JSON API.
type Server struct {
	router    chi.Router
	logger    *slog.Logger
	config    config.ServerConfig
	site      config.SiteConfig
	startTime time.Time
	store     store.Store
	uploader  upload.Uploader // optional; nil disables asset uploads
	verifier  *auth.Verifier
	codec     *auth.TokenCodec
	cookies   *auth.CookieStore
	gate      *auth.Gate
	ui        *ui.UI
}

// Option configures optional Server dependencies.
type Option func(*Server)

// WithUploader sets the asset uploader used by the uploads endpoint.
func WithUploader(up upload.Uploader) Option {
	return func(s *Server) {
		s.uploader = up
	}
}

// New creates a Server with all routes registered. It fails when the
// session secret is missing, before any listener is opened.
func New(cfg config.ServerConfig, site config.SiteConfig, st store.Store, logger *slog.Logger, opts ...Option) (*Server, error) {
	codec, err := auth.NewTokenCodec(cfg.SessionSecret)
	if err != nil {
		return nil, fmt.Errorf("session codec: %w", err)
	}

	cookies := auth.NewCookieStore(codec, cfg.Production())
	rules := auth.RouteRules{
		AdminPrefixes:    site.Routes.AdminPrefixes,
		AuthPrefixes:     site.Routes.AuthPrefixes,
		ExcludedPrefixes: site.Routes.ExcludedPrefixes,
	}

	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger.With("component", "server"),
		config:    cfg,
		site:      site,
		startTime: time.Now(),
		store:     st,
		verifier:  auth.NewVerifier(st),
		codec:     codec,
		cookies:   cookies,
		gate:      auth.NewGate(cookies, rules, logger),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.ui = ui.New(st, s.verifier, s.codec, s.cookies, site, logger)

	s.routes()
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))
	r.Use(s.gate.Middleware)

	// Static files (CSS, images, uploaded assets in local mode)
	r.Handle("/static/*", ui.StaticHandler(s.config.StaticDir))

	// HTML routes (public site, auth pages, admin back-office)
	s.ui.RegisterRoutes(r)

	// API routes (JSON)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/", s.handleDiscovery)
		r.Get("/health", s.handleHealth)

		// Public reads
		r.Get("/profile", s.handleGetProfile)
		r.Get("/projects", s.handleListProjects)
		r.Get("/projects/{id}", s.handleGetProject)
		r.Get("/clients", s.handleListClients)
		r.Get("/posts", s.handleListPosts)
		r.Get("/posts/{slug}", s.handleGetPost)
		r.Post("/messages", s.handleCreateMessage)

		// Admin writes; the gate excludes /api from redirects, so these
		// endpoints carry their own session check and answer 401/403.
		r.Group(func(r chi.Router) {
			r.Use(s.gate.RequireSession)
			r.Use(s.requireAdmin)

			r.Put("/profile", s.handleSaveProfile)

			r.Post("/projects", s.handleCreateProject)
			r.Put("/projects/{id}", s.handleUpdateProject)
			r.Delete("/projects/{id}", s.handleDeleteProject)

			r.Post("/clients", s.handleCreateClient)
			r.Put("/clients/{id}", s.handleUpdateClient)
			r.Delete("/clients/{id}", s.handleDeleteClient)

			r.Post("/posts", s.handleCreatePost)
			r.Put("/posts/{id}", s.handleUpdatePost)
			r.Delete("/posts/{id}", s.handleDeletePost)

			r.Get("/messages", s.handleListMessages)
			r.Get("/messages/{id}", s.handleGetMessage)
			r.Put("/messages/{id}/read", s.handleMarkMessageRead)
			r.Delete("/messages/{id}", s.handleDeleteMessage)

			r.Post("/uploads", s.handleUpload)
		})
	})
}
