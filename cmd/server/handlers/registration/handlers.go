package registration

import (
	"context"
	"errors"

	"reg-form/cmd/server/handlers/httperr"
	"reg-form/internal/logger"
	"reg-form/internal/services/form"
	"reg-form/internal/services/registration"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Service defines the interface for the registration service
type Service interface {
	Check(field registration.Field, value, password string) (registration.FieldCheck, error)
	Submit(ctx context.Context, f registration.Form) (*registration.Registration, error)
}

// Handlers contains the registration HTTP handlers
type Handlers struct {
	svc       Service
	validator *validator.Validate
}

// NewHandlers creates new registration handlers
func NewHandlers(svc Service, validator *validator.Validate) *Handlers {
	return &Handlers{
		svc:       svc,
		validator: validator,
	}
}

// CheckRequest asks for one field to be validated.
type CheckRequest struct {
	Field    string `json:"field" validate:"required,formfield" example:"confirmPassword"`
	Value    string `json:"value" validate:"max=1024" example:"Abcdef12"`
	Password string `json:"password,omitempty" validate:"max=1024" example:"Abcdef12"`
}

// SubmitResponse is returned for an accepted form.
type SubmitResponse struct {
	ID      string `json:"id" example:"01JA2Z3Y4X5W6V7T8S9R0Q1P2N"`
	Message string `json:"message" example:"Account created successfully!"`
}

// InvalidFormResponse lists every field result of a rejected form.
type InvalidFormResponse struct {
	Error        string                     `json:"error" example:"registration form is invalid"`
	FirstInvalid registration.Field         `json:"firstInvalid" example:"email"`
	Fields       []registration.FieldResult `json:"fields"`
}

// Validate checks a single field
// @Summary Validate one form field
// @Tags registration
// @Accept json
// @Produce json
// @Param request body CheckRequest true "Field to validate"
// @Success 200 {object} registration.FieldCheck
// @Failure 400 {object} httperr.E
// @Failure 429 {object} httperr.E
// @Router /registration/validate [post]
func (h *Handlers) Validate(c *fiber.Ctx) error {
	var req CheckRequest
	if err := c.BodyParser(&req); err != nil {
		logger.L().Warn("failed to parse validate request body", "handler", "Validate", "error", err)
		return httperr.Fail(httperr.ErrBadRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		logger.L().Warn("validate request envelope rejected", "handler", "Validate", "error", err)
		return httperr.InvalidInput(err)
	}

	check, err := h.svc.Check(registration.Field(req.Field), req.Value, req.Password)
	if err != nil {
		if errors.Is(err, registration.ErrUnknownField) {
			return httperr.Fail(httperr.ErrUnknownField)
		}
		logger.L().Error("field check failed", "handler", "Validate", "field", req.Field, "error", err)
		return httperr.Fail(httperr.ErrInternal)
	}

	return c.JSON(check)
}

// Submit validates the whole form and runs the registration callback
// @Summary Submit the registration form
// @Tags registration
// @Accept json
// @Produce json
// @Param request body registration.Form true "All five fields"
// @Success 201 {object} SubmitResponse
// @Failure 400 {object} httperr.E
// @Failure 422 {object} InvalidFormResponse
// @Failure 429 {object} httperr.E
// @Failure 503 {object} httperr.E
// @Router /registration/submit [post]
func (h *Handlers) Submit(c *fiber.Ctx) error {
	var req registration.Form
	if err := c.BodyParser(&req); err != nil {
		logger.L().Warn("failed to parse submit request body", "handler", "Submit", "error", err)
		return httperr.Fail(httperr.ErrBadRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		logger.L().Warn("submit request envelope rejected", "handler", "Submit", "error", err)
		return httperr.InvalidInput(err)
	}

	reg, err := h.svc.Submit(c.UserContext(), req)
	if err != nil {
		var invalid *registration.InvalidFormError
		if errors.As(err, &invalid) {
			first, _ := invalid.Report.FirstInvalid()
			return c.Status(fiber.StatusUnprocessableEntity).JSON(InvalidFormResponse{
				Error:        registration.ErrInvalidForm.Error(),
				FirstInvalid: first,
				Fields:       invalid.Report.Fields,
			})
		}
		logger.L().Error("submit service failed", "handler", "Submit", "error", err)
		return httperr.Fail(httperr.ErrRegistrationDown)
	}

	return c.Status(fiber.StatusCreated).JSON(SubmitResponse{
		ID:      reg.ID,
		Message: form.BannerText,
	})
}

// StrengthLevels lists the password meter levels
// @Summary Password strength levels
// @Tags registration
// @Produce json
// @Success 200 {array} registration.Level
// @Router /registration/strength-levels [get]
func (h *Handlers) StrengthLevels(c *fiber.Ctx) error {
	return c.JSON(registration.Levels())
}
