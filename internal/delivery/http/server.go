package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/geoinsight-service/internal/config"
	"github.com/geoinsight-service/internal/delivery/http/handler"
	"github.com/geoinsight-service/internal/delivery/http/middleware"
)

// Server is the Fiber HTTP server.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	analysisHandler *handler.AnalysisHandler
	locationHandler *handler.LocationHandler
	queryHandler    *handler.QueryHandler
	sceneHandler    *handler.SceneHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	analysisHandler *handler.AnalysisHandler,
	locationHandler *handler.LocationHandler,
	queryHandler *handler.QueryHandler,
	sceneHandler *handler.SceneHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "GeoInsight Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    64 << 20,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		analysisHandler: analysisHandler,
		locationHandler: locationHandler,
		queryHandler:    queryHandler,
		sceneHandler:    sceneHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Metrics pipeline
	api.Post("/analyze", s.analysisHandler.Analyze)

	// Location resolution and registry
	api.Post("/locations/resolve", s.locationHandler.Resolve)
	api.Get("/locations", s.locationHandler.ListLocations)
	api.Post("/locations/refresh", s.locationHandler.RefreshRegistry)

	// Free-text query chain
	api.Post("/query", s.queryHandler.Query)

	// Scenes
	api.Post("/scenes", s.sceneHandler.Upload)
	api.Get("/scenes", s.sceneHandler.List)
	api.Get("/stats", s.sceneHandler.Stats)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
