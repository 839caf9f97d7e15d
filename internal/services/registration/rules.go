package registration

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule limits.
const (
	MinNameLength     = 3
	MinPasswordLength = 8
	MinStrength       = 2
)

// Messages shown next to a failing field.
const (
	MsgNameRequired        = "Name is required"
	MsgNameTooShort        = "Name must be at least 3 characters"
	MsgEmailRequired       = "Email is required"
	MsgEmailInvalid        = "Please enter a valid email address"
	MsgPhoneRequired       = "Phone number is required"
	MsgPhoneInvalid        = "Please enter a valid 10-digit phone number"
	MsgPasswordRequired    = "Password is required"
	MsgPasswordTooShort    = "Password must be at least 8 characters"
	MsgPasswordWeak        = "Please choose a stronger password"
	MsgConfirmRequired     = "Please confirm your password"
	MsgPasswordsDoNotMatch = "Passwords do not match"
)

// notSpaceOrAt is any character that is neither '@' nor whitespace as
// browsers define it (ASCII controls, Unicode space separators, line and
// paragraph separators and the BOM).
const notSpaceOrAt = `[^@\t\n\x{000B}\f\r \p{Zs}\x{2028}\x{2029}\x{FEFF}]`

// Deliberately loose: one '@' and a dot somewhere after it. Not RFC 5322.
var (
	reEmail = regexp.MustCompile(`^` + notSpaceOrAt + `+@` + notSpaceOrAt + `+\.` + notSpaceOrAt + `+$`)
	rePhone = regexp.MustCompile(`^[0-9]{10}$`)
)

// isFormSpace reports whether r is whitespace as browsers define it for
// trim() and \s. U+0085 is not.
func isFormSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func trimField(s string) string {
	return strings.TrimFunc(s, isFormSpace)
}

// ValidateName checks the trimmed name.
func ValidateName(name string) Result {
	name = trimField(name)
	if name == "" {
		return fail(CodeEmpty, MsgNameRequired)
	}
	if utf8.RuneCountInString(name) < MinNameLength {
		return fail(CodeTooShort, MsgNameTooShort)
	}
	return pass()
}

// ValidateEmail checks the trimmed email against the permissive pattern.
func ValidateEmail(email string) Result {
	email = trimField(email)
	if email == "" {
		return fail(CodeEmpty, MsgEmailRequired)
	}
	if !reEmail.MatchString(email) {
		return fail(CodeMalformed, MsgEmailInvalid)
	}
	return pass()
}

// ValidatePhone checks that the trimmed phone is exactly ten digits.
func ValidatePhone(phone string) Result {
	phone = trimField(phone)
	if phone == "" {
		return fail(CodeEmpty, MsgPhoneRequired)
	}
	if !rePhone.MatchString(phone) {
		return fail(CodeMalformed, MsgPhoneInvalid)
	}
	return pass()
}

// PasswordCheck is a password result plus the strength it was scored at.
// Scored is false when the rule failed before scoring (empty or too short).
type PasswordCheck struct {
	Result
	Strength int
	Scored   bool
}

// Level returns the meter level when the password was scored.
func (c PasswordCheck) Level() (Level, bool) {
	if !c.Scored {
		return Level{}, false
	}
	return LevelFor(c.Strength), true
}

// EvaluatePassword runs the password rule and keeps the computed strength so
// the meter can be refreshed even when the rule fails.
func EvaluatePassword(password string) PasswordCheck {
	if password == "" {
		return PasswordCheck{Result: fail(CodeEmpty, MsgPasswordRequired)}
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return PasswordCheck{Result: fail(CodeTooShort, MsgPasswordTooShort)}
	}

	strength := Score(password)
	check := PasswordCheck{Strength: strength, Scored: true}
	if strength < MinStrength {
		check.Result = fail(CodeTooWeak, MsgPasswordWeak)
		return check
	}
	check.Result = pass()
	return check
}

// ValidatePassword checks the untrimmed password.
func ValidatePassword(password string) Result {
	return EvaluatePassword(password).Result
}

// ValidateConfirmPassword checks confirm against password by exact equality.
func ValidateConfirmPassword(password, confirm string) Result {
	if confirm == "" {
		return fail(CodeEmpty, MsgConfirmRequired)
	}
	if confirm != password {
		return fail(CodeMismatch, MsgPasswordsDoNotMatch)
	}
	return pass()
}

// Validate runs every field rule against form.
func Validate(form Form) Report {
	fields := make([]FieldResult, 0, len(fieldOrder))
	for _, f := range fieldOrder {
		fields = append(fields, FieldResult{
			Field:  f,
			Result: ValidateField(f, form.Value(f), form.Password),
		})
	}
	return Report{Fields: fields}
}

// ValidateField dispatches value to the rule of field. password is only read
// for FieldConfirmPassword. Unknown fields yield an invalid result.
func ValidateField(field Field, value, password string) Result {
	switch field {
	case FieldName:
		return ValidateName(value)
	case FieldEmail:
		return ValidateEmail(value)
	case FieldPhone:
		return ValidatePhone(value)
	case FieldPassword:
		return ValidatePassword(value)
	case FieldConfirmPassword:
		return ValidateConfirmPassword(password, value)
	}
	return fail(CodeMalformed, ErrUnknownField.Error())
}
