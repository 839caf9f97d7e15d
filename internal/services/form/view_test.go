package form

import (
	"testing"

	"reg-form/internal/services/registration"

	"github.com/stretchr/testify/assert"
)

func TestRenderField(t *testing.T) {
	ok := RenderField(registration.FieldName, registration.ValidateName("Ana"))
	assert.Equal(t, FieldView{Field: registration.FieldName, GroupClass: ClassSuccess}, ok)

	bad := RenderField(registration.FieldPhone, registration.ValidatePhone("12345"))
	assert.Equal(t, ClassError, bad.GroupClass)
	assert.True(t, bad.ShowError)
	assert.Equal(t, registration.MsgPhoneInvalid, bad.Message)
}

func TestRenderField_ValidCarriesNoMessage(t *testing.T) {
	fixed := RenderField(registration.FieldPhone, registration.ValidatePhone("1234567890"))
	assert.Empty(t, fixed.Message, "the page keeps the last text; ShowError hides it")
	assert.False(t, fixed.ShowError)
}

func TestRenderMeter(t *testing.T) {
	assert.Equal(t,
		MeterView{Width: "20%", Color: "#e74c3c", Label: "Very Weak"},
		RenderMeter(registration.LevelFor(0)))
	assert.Equal(t,
		MeterView{Width: "80%", Color: "#2ecc71", Label: "Good"},
		RenderMeter(registration.LevelFor(3)))
}
