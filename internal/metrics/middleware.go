package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HTTPMetricsMiddleware collects HTTP request metrics
func HTTPMetricsMiddleware(m *Metrics, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		m.HTTPRequestsInFlight.Inc()
		defer m.HTTPRequestsInFlight.Dec()

		err := c.Next()

		duration := time.Since(start)

		method := c.Method()
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		statusCode := strconv.Itoa(c.Response().StatusCode())

		m.RecordHTTPRequest(method, path, statusCode, duration)

		if duration > time.Second {
			logger.Warn("Slow HTTP request",
				zap.String("method", method),
				zap.String("path", path),
				zap.String("status_code", statusCode),
				zap.Duration("duration", duration),
			)
		}

		return err
	}
}

// HealthCheckMiddleware provides a health check endpoint backed by a
// database ping.
func HealthCheckMiddleware(serviceName string, dbCollector *DatabaseMetricsCollector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/health" {
			status := "healthy"
			httpStatus := fiber.StatusOK
			if err := dbCollector.HealthCheck(); err != nil {
				status = "degraded"
				httpStatus = fiber.StatusServiceUnavailable
			}

			return c.Status(httpStatus).JSON(fiber.Map{
				"status":    status,
				"timestamp": time.Now().Unix(),
				"service":   serviceName,
			})
		}
		return c.Next()
	}
}
