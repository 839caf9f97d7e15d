package registration

import (
	"github.com/go-playground/validator/v10"
)

// FieldTag is the validator tag accepting only known form field names.
const FieldTag = "formfield"

func formFieldRule(fl validator.FieldLevel) bool {
	_, err := ParseField(fl.Field().String())
	return err == nil
}

// RegisterValidators registers the registration tags on v.
// Registering twice on the same validator is not an error.
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation(FieldTag, formFieldRule)
}
