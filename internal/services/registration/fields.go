package registration

import "fmt"

// Field names one input of the registration form.
type Field string

// Form fields, in the order they appear on the page.
const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

var fieldOrder = [...]Field{
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldPassword,
	FieldConfirmPassword,
}

// Fields returns the form fields in page order.
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder[:])
	return out
}

// ParseField resolves a field name as sent by the page.
func ParseField(s string) (Field, error) {
	for _, f := range fieldOrder {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

func (f Field) String() string {
	return string(f)
}
