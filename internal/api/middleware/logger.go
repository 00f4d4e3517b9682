// Package middleware holds fiber middleware shared by every route
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/labtrack/labtrack/internal/logger"
)

// Logger returns a middleware that logs HTTP requests
func Logger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Continue chain
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		fields := map[string]interface{}{
			"status":  status,
			"latency": time.Since(start).String(),
			"ip":      c.IP(),
			"method":  c.Method(),
			"path":    c.Path(),
			"handler": c.Route().Name,
		}
		if err != nil {
			fields["error"] = err.Error()
			logger.WarnWithFields("Request", fields)
		} else {
			logger.InfoWithFields("Request", fields)
		}

		return err
	}
}
