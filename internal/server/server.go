package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "stats-dashboard-service/docs"
	"stats-dashboard-service/internal/observability"
	seriesHttp "stats-dashboard-service/internal/series/adapters/http/fiber"
	statsHttp "stats-dashboard-service/internal/stats/adapters/http/fiber"
)

type Handlers struct {
	Series *seriesHttp.SeriesHandler
	Stats  *statsHttp.StatsHandler
}

type Server struct {
	addr     string
	app      *fiber.App
	metrics  *observability.Metrics
	gatherer prometheus.Gatherer
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func NewServer(addr string, h Handlers, metrics *observability.Metrics, gatherer prometheus.Gatherer) *Server {
	s := &Server{
		addr:     addr,
		metrics:  metrics,
		gatherer: gatherer,
	}
	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	s.setUpRoutes(h)
	return s
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := http.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(ErrorResponse{
		Error:   errorCode(code),
		Message: err.Error(),
	})
}

// errorCode turns a status into the snake_case code handlers use, e.g. "not_found".
func errorCode(status int) string {
	return strings.ReplaceAll(strings.ToLower(http.StatusText(status)), " ", "_")
}

func (s *Server) setUpRoutes(h Handlers) {
	app := s.app
	app.Use(recover.New())
	app.Use(RequestId())
	app.Use(Logger())
	app.Use(Metrics(s.metrics))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "ok"})
	})
	if s.gatherer != nil {
		app.Get("/internal/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	v1 := app.Group("/api/v1")

	// series endpoints
	v1.Get("/series/ranges", h.Series.ListRanges)
	v1.Get("/series/:collection", h.Series.GetSeries)

	// stats endpoints
	v1.Get("/overview", h.Stats.GetOverview)
	v1.Get("/users", h.Stats.ListUsers)
	v1.Get("/conversations", h.Stats.ListConversations)
	v1.Get("/notes", h.Stats.ListNotes)
	v1.Get("/education", h.Stats.ListEducation)
}

func (s *Server) App() *fiber.App {
	return s.app
}

// Start blocks serving until Shutdown is called.
func (s *Server) Start() error {
	logrus.Infof("start http server on %s", s.addr)
	return s.app.Listen(s.addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
