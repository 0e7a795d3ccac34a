// Package server exposes quiz generation, play and analysis over HTTP.
package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/abhisek/quizai/internal/logger"
	"github.com/abhisek/quizai/internal/service"
)

// Options configures the HTTP server.
type Options struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server is the HTTP API.
type Server struct {
	app *fiber.App
	svc *service.Service
}

// New builds the fiber app and registers all routes.
func New(svc *service.Service, opts Options) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "quizai",
		ReadTimeout:           opts.ReadTimeout,
		WriteTimeout:          opts.WriteTimeout,
		IdleTimeout:           opts.ReadTimeout,
		BodyLimit:             1 << 20,
		ErrorHandler:          ErrorHandler(),
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestLogger())

	s := &Server{app: app, svc: svc}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.app.Group("/api")
	api.Get("/health", s.health)

	api.Post("/quizzes", s.createQuiz)
	api.Get("/quizzes", s.listQuizzes)
	api.Get("/quizzes/:id", s.getQuiz)
	api.Delete("/quizzes/:id", s.deleteQuiz)
	api.Post("/quizzes/:id/attempts", s.submitAttempt)

	api.Get("/attempts", s.listAttempts)

	api.Post("/analysis", s.analyze)
	api.Get("/analysis/latest", s.latestReport)
}

// App returns the underlying fiber app, for tests.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	logger.Get().Info("http server listening", zap.String("addr", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the server, waiting up to timeout for active requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}

// requestLogger logs each request after the error handler has written its
// reply, so failed requests carry their real status.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		logger.Get().Info("http request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)
		return nil
	}
}
