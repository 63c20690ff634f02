package server

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"stats-dashboard-service/internal/observability"
	"stats-dashboard-service/pkg/log"
)

// RequestId propagates X-Request-Id, minting one when absent, and stores it
// in the user context so loggers and outbound provider calls carry it.
func RequestId() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestId := c.Get(log.HttpXRequestId)
		if requestId == "" {
			requestId = strings.ReplaceAll(uuid.New().String(), "-", "")
		}
		c.Set(log.HttpXRequestId, requestId)
		c.SetUserContext(log.WithRequestId(c.UserContext(), requestId))
		return c.Next()
	}
}

func Logger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		t := time.Now()
		err := c.Next()
		latency := time.Since(t)

		log.GetLogger(c.UserContext()).WithFields(logrus.Fields{
			"ip":      c.IP(),
			"method":  c.Method(),
			"path":    c.Path(),
			"status":  c.Response().StatusCode(),
			"latency": latency,
		}).Info("request")
		return err
	}
}

// Metrics records request count and latency labelled by the matched route pattern.
func Metrics(m *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		t := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		m.ObserveHTTPRequest(c.Method(), c.Route().Path, status, time.Since(t))
		return err
	}
}
