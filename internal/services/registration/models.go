package registration

import (
	"log/slog"
	"strings"
	"time"

	"reg-form/internal/utils/sanitize"
)

// Code classifies why a field failed validation.
type Code string

// Validation failure codes.
const (
	CodeEmpty     Code = "EMPTY"
	CodeTooShort  Code = "TOO_SHORT"
	CodeMalformed Code = "MALFORMED"
	CodeMismatch  Code = "MISMATCH"
	CodeTooWeak   Code = "TOO_WEAK"
)

// Result is the outcome of checking one field value. A valid result never
// carries a code or message; an invalid one always carries both.
type Result struct {
	Valid   bool   `json:"valid" example:"false"`
	Code    Code   `json:"code,omitempty" example:"TOO_SHORT"`
	Message string `json:"message,omitempty" example:"Name must be at least 3 characters"`
}

func pass() Result {
	return Result{Valid: true}
}

func fail(code Code, message string) Result {
	return Result{Code: code, Message: message}
}

// Form is the raw content of the five inputs at submit time.
type Form struct {
	Name            string `json:"name" validate:"max=256" example:"Ana Lima"`
	Email           string `json:"email" validate:"max=320" example:"ana@example.com"`
	Phone           string `json:"phone" validate:"max=64" example:"5551234567"`
	Password        string `json:"password" validate:"max=1024" example:"Abcdef12"`
	ConfirmPassword string `json:"confirmPassword" validate:"max=1024" example:"Abcdef12"`
}

// Value returns the raw value of field f.
func (f Form) Value(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldPhone:
		return f.Phone
	case FieldPassword:
		return f.Password
	case FieldConfirmPassword:
		return f.ConfirmPassword
	}
	return ""
}

// FieldResult pairs a field with its validation result.
type FieldResult struct {
	Field Field `json:"field" example:"name"`
	Result
}

// Report holds one result per form field, in page order.
type Report struct {
	Fields []FieldResult `json:"fields"`
}

// Valid reports whether every field passed.
func (r Report) Valid() bool {
	for _, fr := range r.Fields {
		if !fr.Valid {
			return false
		}
	}
	return len(r.Fields) > 0
}

// FirstInvalid returns the first failing field in page order.
func (r Report) FirstInvalid() (Field, bool) {
	for _, fr := range r.Fields {
		if !fr.Valid {
			return fr.Field, true
		}
	}
	return "", false
}

// Result returns the result recorded for field.
func (r Report) Result(field Field) (Result, bool) {
	for _, fr := range r.Fields {
		if fr.Field == field {
			return fr.Result, true
		}
	}
	return Result{}, false
}

// Registration is what the successful-registration callback receives.
// The password is kept in clear for the callback but never rendered by
// String or LogValue.
type Registration struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Password    string
	SubmittedAt time.Time
}

const redacted = "[REDACTED]"

// LogValue implements slog.LogValuer.
func (r Registration) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", r.ID),
		slog.String("name", sanitize.Clean(r.Name)),
		slog.String("email", sanitize.Clean(r.Email)),
		slog.String("phone", r.Phone),
		slog.String("password", redacted),
		slog.Time("submitted_at", r.SubmittedAt),
	)
}

func (r Registration) String() string {
	var b strings.Builder
	b.WriteString("Registration{id=")
	b.WriteString(r.ID)
	b.WriteString(" name=")
	b.WriteString(sanitize.Clean(r.Name))
	b.WriteString(" email=")
	b.WriteString(sanitize.Clean(r.Email))
	b.WriteString(" phone=")
	b.WriteString(r.Phone)
	b.WriteString(" password=" + redacted + "}")
	return b.String()
}
