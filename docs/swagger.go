// Package docs reg-form API
//
// @title  reg-form API
// @version 0.1.0
// @description Field validation, password strength and submission for the registration form.
// @host      localhost:8080
// @BasePath /api/v1
// @schemes http https
package docs

import (
	_ "reg-form/cmd/server/handlers/httperr"
	_ "reg-form/internal/services/registration"
)
