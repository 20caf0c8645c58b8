// Package server exposes feature extraction over HTTP, mirroring the
// shapes the web frontend expects
package server

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/bioseqlab/seqfeat/internal/config"
	"github.com/bioseqlab/seqfeat/pkg/panel"
	"github.com/bioseqlab/seqfeat/pkg/refset"
)

type Server struct {
	app      *fiber.App
	cfg      *config.Config
	log      *zap.Logger
	registry *panel.Registry
	// reference corpora by name, loaded at startup
	refs map[string]*refset.Set

	validate *validator.Validate
}

func New(cfg *config.Config, log *zap.Logger, registry *panel.Registry, refs map[string]*refset.Set) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	s := &Server{
		app:      app,
		cfg:      cfg,
		log:      log,
		registry: registry,
		refs:     refs,
		validate: validator.New(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.log.Info("server listening", zap.String("port", s.cfg.App.Port))
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) registerRoutes() {
	api := s.app.Group("/api")
	api.Post("/extract-features", s.extractFeatures)
	api.Get("/panels", s.listPanels)

	s.app.Get("/health", s.health)
}
