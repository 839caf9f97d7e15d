package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

var startedAt = time.Now()

// Healthz returns the health of the server.
// There is no backing store, so a responding process is a healthy one.
func Healthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"uptime": time.Since(startedAt).Round(time.Second).String(),
	})
}
