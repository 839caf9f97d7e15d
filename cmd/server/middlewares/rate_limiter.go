package middlewares

import (
	"time"

	"reg-form/cmd/server/handlers/httperr"
	"reg-form/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimit returns a per-IP limiter named for logging. It does *nothing*
// when max <= 0 so callers don't need to wrap it in an if-statement.
func RateLimit(name string, max int, expiration time.Duration) fiber.Handler {
	if max <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: expiration,
		LimitReached: func(c *fiber.Ctx) error {
			logger.L().Warn("rate limit reached", "limiter", name, "ip", c.IP(), "path", c.Path())
			return httperr.Fail(httperr.ErrTooManyRequests)
		},
	})
}
