package form

import (
	"reg-form/internal/services/registration"
)

// CSS classes the page toggles on an input group.
const (
	ClassError   = "error"
	ClassSuccess = "success"
)

// Password input types and the eye icon that goes with each.
const (
	InputTypePassword = "password"
	InputTypeText     = "text"
	IconShow          = "fa-eye"
	IconHide          = "fa-eye-slash"
)

// BannerText is shown after an accepted submission.
const BannerText = "Account created successfully!"

// FieldView is how one input group should look.
type FieldView struct {
	Field      registration.Field `json:"field"`
	GroupClass string             `json:"groupClass,omitempty"`
	Message    string             `json:"message,omitempty"`
	ShowError  bool               `json:"showError"`
	Focused    bool               `json:"focused"`
}

// MeterView is how the strength meter should look.
type MeterView struct {
	Width string `json:"width"`
	Color string `json:"color"`
	Label string `json:"label"`
}

// BannerView is the success banner.
type BannerView struct {
	Visible bool   `json:"visible"`
	Text    string `json:"text,omitempty"`
}

// ToggleView is the password visibility toggle.
type ToggleView struct {
	InputType string `json:"inputType"`
	Icon      string `json:"icon"`
}

// RenderField maps a validation result onto its input group.
// A valid result carries no message; the page keeps the last text in place
// and ShowError hides it.
func RenderField(field registration.Field, res registration.Result) FieldView {
	if res.Valid {
		return FieldView{Field: field, GroupClass: ClassSuccess}
	}
	return FieldView{
		Field:      field,
		GroupClass: ClassError,
		Message:    res.Message,
		ShowError:  true,
	}
}

// RenderMeter maps a strength level onto the meter.
func RenderMeter(level registration.Level) MeterView {
	return MeterView{
		Width: level.Width(),
		Color: level.Color,
		Label: level.Label,
	}
}

// InitialMeter is the meter of an untouched form.
func InitialMeter() MeterView {
	return MeterView{Width: "0%", Color: "", Label: "Weak"}
}

func toggleFor(visible bool) ToggleView {
	if visible {
		return ToggleView{InputType: InputTypeText, Icon: IconHide}
	}
	return ToggleView{InputType: InputTypePassword, Icon: IconShow}
}
