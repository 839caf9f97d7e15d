package registration

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned when a field name is not part of the form.
var ErrUnknownField = errors.New("unknown form field")

// ErrInvalidForm is returned when at least one field fails validation on submit.
var ErrInvalidForm = errors.New("registration form is invalid")

// ErrRegistrar is returned when the registration callback fails.
var ErrRegistrar = errors.New("registration callback failed")

// InvalidFormError carries the per-field report of a rejected submission.
type InvalidFormError struct {
	Report Report
}

func (e *InvalidFormError) Error() string {
	if f, ok := e.Report.FirstInvalid(); ok {
		return fmt.Sprintf("%s: first invalid field %q", ErrInvalidForm.Error(), f)
	}
	return ErrInvalidForm.Error()
}

func (e *InvalidFormError) Unwrap() error {
	return ErrInvalidForm
}
