package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/timetable-editor/internal/config"
	"github.com/timetable-editor/internal/delivery/http/handler"
	"github.com/timetable-editor/internal/delivery/http/middleware"
	"github.com/timetable-editor/internal/pkg/errors"
	"github.com/timetable-editor/internal/pkg/utils"
)

// HealthCheck - проверка внешней зависимости (хранилище, Redis)
type HealthCheck func(ctx context.Context) error

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger
	health map[string]HealthCheck

	timetableHandler *handler.TimetableHandler
	rulesHandler     *handler.RulesHandler
	sessionHandler   *handler.SessionHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	health map[string]HealthCheck,
	timetableHandler *handler.TimetableHandler,
	rulesHandler *handler.RulesHandler,
	sessionHandler *handler.SessionHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Timetable Editor",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		health:           health,
		timetableHandler: timetableHandler,
		rulesHandler:     rulesHandler,
		sessionHandler:   sessionHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(!s.config.IsProduction()))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSAllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.healthCheck)

	// Timetable
	api.Get("/stations", s.timetableHandler.ListStations)
	api.Get("/trains", s.timetableHandler.ListTrains)
	api.Get("/trains/:id", s.timetableHandler.GetTrain)
	api.Get("/trains/:id/consistency", s.timetableHandler.Consistency)
	api.Get("/identifiers/:id", s.timetableHandler.AnalyzeIdentifier)
	api.Get("/templates", s.timetableHandler.ListTemplates)

	// Rules
	rules := api.Group("/rules")
	rules.Post("/classify", s.rulesHandler.Classify)
	rules.Post("/autofill", s.rulesHandler.Autofill)
	rules.Post("/validate", s.rulesHandler.Validate)
	rules.Post("/section", s.rulesHandler.ApplySection)

	// Editor sessions
	sessions := api.Group("/sessions")
	sessions.Post("/", s.sessionHandler.Create)
	sessions.Get("/:sid", s.sessionHandler.Get)
	sessions.Post("/:sid/load", s.sessionHandler.Load)
	sessions.Post("/:sid/dirty", s.sessionHandler.MarkDirty)
	sessions.Post("/:sid/save", s.sessionHandler.Save)
	sessions.Delete("/:sid/train", s.sessionHandler.DeleteTrain)
}

// healthCheck godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (s *Server) healthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()

	status := "healthy"
	checks := fiber.Map{}
	for name, check := range s.health {
		if err := check(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			checks[name] = err.Error()
			status = "degraded"
			continue
		}
		checks[name] = "ok"
	}

	code := fiber.StatusOK
	if status != "healthy" {
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"checks": checks,
		"time":   time.Now(),
	})
}

// App - fiber приложение (для тестов)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки fiber (404 маршрута, паника) в общем формате
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

		if code == fiber.StatusNotFound {
			return c.Status(code).JSON(utils.ErrorResponse{
				Error: errors.New("NOT_FOUND", err.Error(), code),
			})
		}
		return c.Status(code).JSON(utils.ErrorResponse{
			Error: errors.ErrInternalServer,
		})
	}
}
