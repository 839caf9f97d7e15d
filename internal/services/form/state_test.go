package form

import (
	"context"
	"errors"
	"testing"
	"time"

	"reg-form/internal/services/registration"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSubmitter records accepted forms.
type countingSubmitter struct {
	calls int
	forms []registration.Form
	err   error
}

func (c *countingSubmitter) Submit(_ context.Context, f registration.Form) (*registration.Registration, error) {
	c.calls++
	c.forms = append(c.forms, f)
	if c.err != nil {
		return nil, c.err
	}
	return &registration.Registration{ID: "01J00000000000000000000000", Name: f.Name}, nil
}

func fieldView(t *testing.T, snap Snapshot, f registration.Field) FieldView {
	t.Helper()
	for _, v := range snap.Fields {
		if v.Field == f {
			return v
		}
	}
	t.Fatalf("field %s missing from snapshot", f)
	return FieldView{}
}

func fillValid(t *testing.T, s *State) {
	t.Helper()
	require.NoError(t, s.Input(registration.FieldName, "Ana"))
	require.NoError(t, s.Input(registration.FieldEmail, "a@b.com"))
	require.NoError(t, s.Input(registration.FieldPhone, "1234567890"))
	require.NoError(t, s.Input(registration.FieldPassword, "Abcdef12"))
	require.NoError(t, s.Input(registration.FieldConfirmPassword, "Abcdef12"))
}

func TestNewState_Initial(t *testing.T) {
	snap := NewState(0).Snapshot()

	assert.Equal(t, InitialMeter(), snap.Meter)
	assert.False(t, snap.Banner.Visible)
	assert.Equal(t, ToggleView{InputType: InputTypePassword, Icon: IconShow}, snap.Toggle)
	assert.Len(t, snap.Fields, 5)
	for _, v := range snap.Fields {
		assert.Empty(t, v.GroupClass)
		assert.False(t, v.ShowError)
	}
}

func TestState_InputRendersField(t *testing.T) {
	s := NewState(time.Second)

	require.NoError(t, s.Input(registration.FieldName, "Al"))
	v := fieldView(t, s.Snapshot(), registration.FieldName)
	assert.Equal(t, ClassError, v.GroupClass)
	assert.True(t, v.ShowError)
	assert.Equal(t, registration.MsgNameTooShort, v.Message)

	require.NoError(t, s.Input(registration.FieldName, "Ana"))
	v = fieldView(t, s.Snapshot(), registration.FieldName)
	assert.Equal(t, ClassSuccess, v.GroupClass)
	assert.False(t, v.ShowError)
}

func TestState_PasswordMeter(t *testing.T) {
	s := NewState(time.Second)

	require.NoError(t, s.Input(registration.FieldPassword, "abc"))
	assert.Equal(t, InitialMeter(), s.Snapshot().Meter, "too short passwords leave the meter untouched")

	require.NoError(t, s.Input(registration.FieldPassword, "abcdefgh"))
	assert.Equal(t, MeterView{Width: "60%", Color: "#f1c40f", Label: "Fair"}, s.Snapshot().Meter)

	require.NoError(t, s.Input(registration.FieldPassword, "abcDEF12!"))
	assert.Equal(t, MeterView{Width: "100%", Color: "#27ae60", Label: "Strong"}, s.Snapshot().Meter)

	require.NoError(t, s.Input(registration.FieldPassword, "ab"))
	assert.Equal(t, "Strong", s.Snapshot().Meter.Label, "meter keeps the last computed level")
}

func TestState_ConfirmUsesCurrentPassword(t *testing.T) {
	s := NewState(time.Second)
	require.NoError(t, s.Input(registration.FieldPassword, "Abcdef12"))
	require.NoError(t, s.Input(registration.FieldConfirmPassword, "Abcdef12"))
	assert.Equal(t, ClassSuccess, fieldView(t, s.Snapshot(), registration.FieldConfirmPassword).GroupClass)

	require.NoError(t, s.Input(registration.FieldPassword, "Abcdef13"))
	require.NoError(t, s.Blur(registration.FieldConfirmPassword, "Abcdef12"))
	v := fieldView(t, s.Snapshot(), registration.FieldConfirmPassword)
	assert.Equal(t, ClassError, v.GroupClass)
	assert.Equal(t, registration.MsgPasswordsDoNotMatch, v.Message)
}

func TestState_FocusBlur(t *testing.T) {
	s := NewState(time.Second)

	require.NoError(t, s.Focus(registration.FieldEmail))
	v := fieldView(t, s.Snapshot(), registration.FieldEmail)
	assert.True(t, v.Focused)
	assert.Empty(t, v.GroupClass, "focus alone does not validate")

	require.NoError(t, s.Blur(registration.FieldEmail, ""))
	v = fieldView(t, s.Snapshot(), registration.FieldEmail)
	assert.False(t, v.Focused)
	assert.Equal(t, registration.MsgEmailRequired, v.Message)
}

func TestState_UnknownField(t *testing.T) {
	s := NewState(time.Second)
	assert.ErrorIs(t, s.Input("age", "42"), registration.ErrUnknownField)
	assert.ErrorIs(t, s.Focus("age"), registration.ErrUnknownField)
	assert.ErrorIs(t, s.Blur("age", ""), registration.ErrUnknownField)
}

func TestState_TogglePassword(t *testing.T) {
	s := NewState(time.Second)

	s.TogglePassword()
	assert.Equal(t, ToggleView{InputType: InputTypeText, Icon: IconHide}, s.Snapshot().Toggle)

	s.TogglePassword()
	assert.Equal(t, ToggleView{InputType: InputTypePassword, Icon: IconShow}, s.Snapshot().Toggle)
}

func TestState_SubmitInvalidScrollsToFirstError(t *testing.T) {
	s := NewState(time.Second)
	sub := &countingSubmitter{}

	require.NoError(t, s.Input(registration.FieldName, "Ana"))
	require.NoError(t, s.Input(registration.FieldPassword, "abcdefgh"))

	_, err := s.Submit(context.Background(), sub)
	require.ErrorIs(t, err, registration.ErrInvalidForm)
	assert.Zero(t, sub.calls)

	snap := s.Snapshot()
	assert.Equal(t, registration.FieldEmail, snap.ScrollTo)
	assert.False(t, snap.Reset)
	assert.Equal(t, ClassSuccess, fieldView(t, snap, registration.FieldName).GroupClass)
	assert.Equal(t, ClassError, fieldView(t, snap, registration.FieldPhone).GroupClass)
	assert.Equal(t, registration.MsgConfirmRequired, fieldView(t, snap, registration.FieldConfirmPassword).Message)

	// scroll target is a one-shot hint
	assert.Empty(t, s.Snapshot().ScrollTo)
	require.NoError(t, s.Focus(registration.FieldEmail))
	assert.Empty(t, s.Snapshot().ScrollTo)
}

func TestState_SubmitSuccessResetsOnce(t *testing.T) {
	s := NewState(5 * time.Second)
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	sub := &countingSubmitter{}

	fillValid(t, s)
	s.TogglePassword()

	reg, err := s.Submit(context.Background(), sub)
	require.NoError(t, err)
	require.NotNil(t, reg)
	assert.Equal(t, 1, sub.calls)
	assert.Equal(t, "Ana", sub.forms[0].Name)

	snap := s.Snapshot()
	assert.True(t, snap.Reset)
	assert.Equal(t, InitialMeter(), snap.Meter)
	assert.Equal(t, BannerView{Visible: true, Text: BannerText}, snap.Banner)
	for _, f := range registration.Fields() {
		assert.Empty(t, snap.Values[f])
		v := fieldView(t, snap, f)
		assert.Empty(t, v.GroupClass)
		assert.False(t, v.ShowError)
	}
	assert.Equal(t, InputTypeText, snap.Toggle.InputType, "reset does not touch the visibility toggle")

	assert.False(t, s.Snapshot().Reset, "reset is handed out once")

	now = now.Add(6 * time.Second)
	snap = s.Snapshot()
	assert.False(t, snap.Banner.Visible)
	assert.False(t, snap.Reset, "banner expiry does not reset the form again")

	// the reset form is empty again, so a second submit is rejected
	_, err = s.Submit(context.Background(), sub)
	assert.ErrorIs(t, err, registration.ErrInvalidForm)
	assert.Equal(t, 1, sub.calls)
}

func TestState_BannerExpires(t *testing.T) {
	s := NewState(5 * time.Second)
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	fillValid(t, s)
	_, err := s.Submit(context.Background(), &countingSubmitter{})
	require.NoError(t, err)

	until, ok := s.BannerExpiry()
	require.True(t, ok)
	assert.Equal(t, now.Add(5*time.Second), until)

	now = now.Add(4 * time.Second)
	assert.True(t, s.Snapshot().Banner.Visible)

	now = now.Add(time.Second)
	assert.False(t, s.Snapshot().Banner.Visible)
	_, ok = s.BannerExpiry()
	assert.False(t, ok)
}

func TestState_SubmitterError(t *testing.T) {
	s := NewState(time.Second)
	boom := errors.New("boom")
	fillValid(t, s)

	_, err := s.Submit(context.Background(), &countingSubmitter{err: boom})
	assert.ErrorIs(t, err, boom)

	snap := s.Snapshot()
	assert.False(t, snap.Reset)
	assert.False(t, snap.Banner.Visible)
	assert.Equal(t, "Ana", snap.Values[registration.FieldName], "values survive a failed callback")
}
