package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/inspection-planner/internal/config"
	"github.com/inspection-planner/internal/delivery/http/handler"
	"github.com/inspection-planner/internal/delivery/http/middleware"
)

// HealthChecker reports the liveness of a backing service.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server is the Fiber HTTP server for the planning API.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	planHandler *handler.PlanHandler
	db          HealthChecker
	redis       HealthChecker
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	planHandler *handler.PlanHandler,
	db HealthChecker,
	redis HealthChecker,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Inspection Route Planner",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:         app,
		config:      cfg,
		logger:      logger,
		planHandler: planHandler,
		db:          db,
		redis:       redis,
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

	api.Get("/health", s.health)

	// Planning routes
	api.Post("/plans", s.planHandler.CreatePlan)
	api.Post("/plans/preview", s.planHandler.PreviewPlan)
	api.Get("/plans/:id", s.planHandler.GetPlan)

	api.Post("/sites/near", s.planHandler.NearSites)

	// Route evaluation
	api.Post("/routes/evaluate", s.planHandler.EvaluateRoute)
}

func (s *Server) health(c *fiber.Ctx) error {
	status := "healthy"
	checks := fiber.Map{}

	if s.db != nil {
		if err := s.db.Health(c.Context()); err != nil {
			status = "degraded"
			checks["database"] = err.Error()
		} else {
			checks["database"] = "ok"
		}
	}
	if s.redis != nil {
		if err := s.redis.Health(c.Context()); err != nil {
			status = "degraded"
			checks["redis"] = err.Error()
		} else {
			checks["redis"] = "ok"
		}
	}

	return c.JSON(fiber.Map{
		"status": status,
		"checks": checks,
		"time":   time.Now(),
	})
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
