package middlewares

import (
	"reg-form/cmd/server/handlers/httperr"

	"github.com/gofiber/fiber/v2"
)

var errorHandlerForTest fiber.ErrorHandler = httperr.Handler
