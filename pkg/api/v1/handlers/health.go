package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HealthHandler reports whether the server can reach its database
type HealthHandler struct {
	*APIHandler
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(api *APIHandler) *HealthHandler {
	return &HealthHandler{
		APIHandler: api,
	}
}

// Check responds {"status":"healthy"} or 503 when the database is unreachable
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.UserContext())
		}
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unhealthy", "error": ErrMsgDatabaseDown})
		}
	}
	return c.JSON(fiber.Map{"status": "healthy"})
}
