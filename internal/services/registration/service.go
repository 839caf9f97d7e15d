package registration

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
)

// Service validates form fields and hands accepted submissions to a Registrar.
type Service struct {
	registrar Registrar
	metrics   *Metrics
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new registration service. metrics may be nil.
func NewService(registrar Registrar, metrics *Metrics, log *slog.Logger) *Service {
	return &Service{
		registrar: registrar,
		metrics:   metrics,
		log:       log,
		now:       time.Now,
	}
}

// FieldCheck is the outcome of validating a single field on input or blur.
// Strength is set whenever a password was scored, including when it failed.
type FieldCheck struct {
	Field    Field  `json:"field" example:"password"`
	Result          // inlined valid/code/message
	Strength *Level `json:"strength,omitempty"`
}

// Check validates value as the current content of field. password is the
// current primary password and is only read for FieldConfirmPassword.
func (s *Service) Check(field Field, value, password string) (FieldCheck, error) {
	if _, err := ParseField(string(field)); err != nil {
		return FieldCheck{}, err
	}

	check := FieldCheck{Field: field}
	if field == FieldPassword {
		pc := EvaluatePassword(value)
		check.Result = pc.Result
		if lvl, ok := pc.Level(); ok {
			check.Strength = &lvl
			s.metrics.observeStrength(pc.Strength)
		}
	} else {
		check.Result = ValidateField(field, value, password)
	}

	s.metrics.observeField(field, check.Result)
	return check, nil
}

// Submit validates the whole form. When any field fails it returns an
// *InvalidFormError and the registrar is not called. Otherwise the registrar
// is called exactly once with the trimmed values.
func (s *Service) Submit(ctx context.Context, form Form) (*Registration, error) {
	report := Validate(form)
	for _, fr := range report.Fields {
		s.metrics.observeField(fr.Field, fr.Result)
	}

	if !report.Valid() {
		s.metrics.observeSubmission(OutcomeRejected)
		first, _ := report.FirstInvalid()
		s.log.DebugContext(ctx, "submission rejected", "first_invalid", first)
		return nil, &InvalidFormError{Report: report}
	}

	now := s.now().UTC()
	reg := Registration{
		ID:          ulid.MustNew(ulid.Timestamp(now), rand.Reader).String(),
		Name:        trimField(form.Name),
		Email:       trimField(form.Email),
		Phone:       trimField(form.Phone),
		Password:    form.Password,
		SubmittedAt: now,
	}

	if err := s.registrar.Registered(ctx, reg); err != nil {
		s.metrics.observeSubmission(OutcomeFailed)
		s.log.ErrorContext(ctx, "registration callback failed", "id", reg.ID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrRegistrar, err)
	}

	s.metrics.observeSubmission(OutcomeAccepted)
	return &reg, nil
}
