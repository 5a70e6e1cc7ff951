// Package httpapi serves the tracker's JSON API over fiber.
package httpapi

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexanderramin/dsatracker/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const shutdownTimeout = 5 * time.Second

// Services are the use cases the API exposes.
type Services struct {
	Questions service.QuestionService
	Activity  service.ActivityService
	Dashboard service.DashboardService
	Bank      service.QuestionBankService
}

type Options struct {
	CORSOrigins string
	Logger      *slog.Logger
	// Now stamps the health endpoints. Nil means time.Now.
	Now func() time.Time
}

type Server struct {
	app    *fiber.App
	logger *slog.Logger
}

func New(svcs Services, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	origins := opts.CORSOrigins
	if origins == "" {
		origins = "*"
	}

	app := fiber.New(fiber.Config{
		AppName:               "dsatracker",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(RequestLogger(logger))

	h := &handlers{svcs: svcs, now: now}
	registerRoutes(app, h)

	return &Server{app: app, logger: logger}
}

func registerRoutes(app *fiber.App, h *handlers) {
	app.Get("/", h.root)
	app.Get("/health", h.health)

	api := app.Group("/api")
	api.Get("/test", h.apiTest)
	api.Get("/dashboard", h.dashboard)
	api.Get("/stats", h.stats)
	api.Get("/calendar", h.calendar)
	api.Get("/activity", h.activity)
	api.Put("/activity/:date", h.setActivity)
	api.Get("/tags", h.tags)

	questions := api.Group("/questions")
	questions.Get("/", h.searchQuestions)
	questions.Post("/", h.addQuestion)
	questions.Get("/today", h.todayQuestions)
	questions.Get("/:id", h.getQuestion)
	questions.Delete("/:id", h.removeQuestion)
}

// App exposes the fiber app for in-process testing.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- s.app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("http server shutting down")
		return s.app.ShutdownWithTimeout(shutdownTimeout)
	}
}
