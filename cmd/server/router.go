package main

import (
	"time"

	"reg-form/cmd/server/handlers"
	"reg-form/cmd/server/handlers/httperr"
	regHandlers "reg-form/cmd/server/handlers/registration"
	"reg-form/cmd/server/middlewares"
	"reg-form/internal/config"
	"reg-form/internal/logger"
	"reg-form/internal/services/registration"

	_ "reg-form/docs" // Load swagger docs

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

const (
	RateLimitExpiration = 1 * time.Minute
)

// setupRouter configures and returns a Fiber app with all routes
func setupRouter(cfg config.Config) *fiber.App {
	v := validator.New()
	if err := registration.RegisterValidators(v); err != nil {
		logger.L().Error("failed to register form validators", "err", err)
		panic(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: httperr.Handler,
		Immutable:    true, // make Fiber copy all request-derived strings
	})

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Content-Type",
	}))

	// registration counters live on the same registry as route metrics so one
	// scrape sees both
	registry := middlewares.NewRegistry()
	metrics := registration.NewMetrics(registry)
	if cfg.RouteMetricsEnabled {
		middlewares.AttachMetrics(app, registry)
	}

	// Health check endpoint, outside versioned API to appease scanners and to avoid logging
	app.Get("/healthz", handlers.Healthz)

	app.Get("/docs/*", swagger.HandlerDefault)

	app.Static("/", cfg.WebRoot, fiber.Static{
		Browse: false,
		Index:  "index.html",
	})

	var v1 fiber.Router
	if cfg.RequestLoggingEnabled {
		v1 = app.Group("/api/v1", fiberlogger.New())
		logger.L().Info("request logging enabled")
	} else {
		v1 = app.Group("/api/v1")
		logger.L().Info("request logging disabled")
	}

	regSvc := registration.NewService(registration.NewLogRegistrar(logger.L()), metrics, logger.L())
	regH := regHandlers.NewHandlers(regSvc, v)

	validateLimiter := middlewares.RateLimit("validate", cfg.ValidateRatePerMin, RateLimitExpiration)
	submitLimiter := middlewares.RateLimit("submit", cfg.SubmitRatePerMin, RateLimitExpiration)

	regGrp := v1.Group("/registration")
	regGrp.Post("/validate", validateLimiter, regH.Validate)
	regGrp.Post("/submit", submitLimiter, regH.Submit)
	regGrp.Get("/strength-levels", regH.StrengthLevels)

	// WebSocket routes
	wsHandlers := regHandlers.NewWebSocketHandlers(regSvc, cfg.BannerDuration(), cfg.WSMaxSession())
	app.Get("/ws/registration/live", wsHandlers.WSUpgrade, websocket.New(wsHandlers.WSLiveForm))

	return app
}
