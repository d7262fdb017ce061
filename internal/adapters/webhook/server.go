package webhook

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"factskill/internal/infrastructure/metrics"
	"factskill/internal/ports/input"
)

// Server exposes the skill over HTTP.
type Server struct {
	app           *fiber.App
	skill         input.SkillUseCase
	applicationID string
	logger        *zap.Logger
}

// NewServer builds the fiber app. When applicationID is non-empty, requests
// from any other application are rejected with 403.
func NewServer(skill input.SkillUseCase, applicationID string, logger *zap.Logger) *Server {
	s := &Server{
		skill:         skill,
		applicationID: applicationID,
		logger:        logger,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "factskill",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler:          errorHandler(logger),
	})
	s.app.Use(recover.New())

	s.app.Post("/skill", s.handleSkill)
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	s.app.Get("/metrics", func(c *fiber.Ctx) error {
		metricsHandler(c.Context())
		return nil
	})
	return s
}

// App returns the underlying fiber app, for tests.
func (s *Server) App() *fiber.App { return s.app }

// Listen blocks serving addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.logger.Info("webhook listening", zap.String("addr", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) handleSkill(c *fiber.Ctx) error {
	start := time.Now()
	defer func() {
		metrics.DispatchLatency.WithLabelValues("webhook").Observe(time.Since(start).Seconds())
	}()

	var env RequestEnvelope
	if err := c.BodyParser(&env); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if s.applicationID != "" && env.applicationID() != s.applicationID {
		s.logger.Warn("rejected request from unknown application", zap.String("application_id", env.applicationID()))
		return fiber.NewError(fiber.StatusForbidden, "application not allowed")
	}

	resp := s.skill.Dispatch(c.UserContext(), toDescriptor(&env))
	return c.JSON(render(resp))
}

func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}
		if code == fiber.StatusInternalServerError {
			logger.Error("internal server error", zap.Error(err), zap.String("path", c.Path()))
		}
		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
}
