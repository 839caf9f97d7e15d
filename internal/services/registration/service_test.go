package registration

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var silentLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// MockRegistrar is a mock implementation of Registrar
type MockRegistrar struct {
	mock.Mock
}

func (m *MockRegistrar) Registered(ctx context.Context, reg Registration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func validForm() Form {
	return Form{
		Name:            "  Ana Lima ",
		Email:           " ana@example.com",
		Phone:           "1234567890 ",
		Password:        " Abcdef12",
		ConfirmPassword: " Abcdef12",
	}
}

// fakeForm builds a random form that passes every rule.
func fakeForm(f *gofakeit.Faker) Form {
	pw := f.Password(true, true, true, false, false, 10) + "aA1"
	return Form{
		Name:            f.Name(),
		Email:           f.Email(),
		Phone:           f.Numerify("##########"),
		Password:        pw,
		ConfirmPassword: pw,
	}
}

func TestService_Submit_Success(t *testing.T) {
	reg := new(MockRegistrar)
	svc := NewService(reg, nil, silentLogger)
	fixed := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	reg.On("Registered", mock.Anything, mock.MatchedBy(func(r Registration) bool {
		return r.Name == "Ana Lima" &&
			r.Email == "ana@example.com" &&
			r.Phone == "1234567890" &&
			r.Password == " Abcdef12" &&
			r.SubmittedAt.Equal(fixed) &&
			r.ID != ""
	})).Return(nil).Once()

	out, err := svc.Submit(context.Background(), validForm())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Len(t, out.ID, 26, "ULID string")
	reg.AssertExpectations(t)
	reg.AssertNumberOfCalls(t, "Registered", 1)
}

func TestService_Submit_Invalid(t *testing.T) {
	reg := new(MockRegistrar)
	svc := NewService(reg, nil, silentLogger)

	form := validForm()
	form.Phone = "12345"
	form.ConfirmPassword = "Abcdef13"

	out, err := svc.Submit(context.Background(), form)
	assert.Nil(t, out)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidForm)

	var invalid *InvalidFormError
	require.True(t, errors.As(err, &invalid))
	first, ok := invalid.Report.FirstInvalid()
	assert.True(t, ok)
	assert.Equal(t, FieldPhone, first)
	assert.Contains(t, err.Error(), `"phone"`)

	confirm, _ := invalid.Report.Result(FieldConfirmPassword)
	assert.Equal(t, CodeMismatch, confirm.Code)

	reg.AssertNotCalled(t, "Registered", mock.Anything, mock.Anything)
}

func TestService_Submit_RegistrarError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(RegistrarFunc(func(context.Context, Registration) error { return boom }), nil, silentLogger)

	_, err := svc.Submit(context.Background(), validForm())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRegistrar)
	assert.ErrorIs(t, err, boom)
}

func TestService_Submit_FakeValidFormsRegisterOnce(t *testing.T) {
	faker := gofakeit.New(42)
	for i := 0; i < 50; i++ {
		form := fakeForm(faker)
		calls := 0
		svc := NewService(RegistrarFunc(func(_ context.Context, r Registration) error {
			calls++
			assert.Equal(t, form.Password, r.Password)
			return nil
		}), nil, silentLogger)

		_, err := svc.Submit(context.Background(), form)
		require.NoError(t, err, "form %+v", form)
		assert.Equal(t, 1, calls)
	}
}

func TestService_Check(t *testing.T) {
	svc := NewService(NewLogRegistrar(silentLogger), nil, silentLogger)

	check, err := svc.Check(FieldPassword, "abcDEF12", "")
	require.NoError(t, err)
	assert.True(t, check.Valid)
	require.NotNil(t, check.Strength)
	assert.Equal(t, "Strong", check.Strength.Label)

	check, err = svc.Check(FieldPassword, "short", "")
	require.NoError(t, err)
	assert.Equal(t, CodeTooShort, check.Code)
	assert.Nil(t, check.Strength, "meter is left alone when no score was computed")

	check, err = svc.Check(FieldConfirmPassword, "Abcdef13", "Abcdef12")
	require.NoError(t, err)
	assert.Equal(t, CodeMismatch, check.Code)
	assert.Nil(t, check.Strength)

	_, err = svc.Check(Field("age"), "42", "")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestService_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	svc := NewService(NewLogRegistrar(silentLogger), metrics, silentLogger)

	_, err := svc.Check(FieldName, "Al", "")
	require.NoError(t, err)
	_, err = svc.Check(FieldPassword, "abcDEF12", "")
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.fieldChecks.WithLabelValues("name", "TOO_SHORT")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.fieldChecks.WithLabelValues("password", "OK")))

	_, err = svc.Submit(context.Background(), Form{})
	require.Error(t, err)
	_, err = svc.Submit(context.Background(), validForm())
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.submissions.WithLabelValues(OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.submissions.WithLabelValues(OutcomeAccepted)))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.fieldChecks.WithLabelValues("name", "OK")) +
		testutil.ToFloat64(metrics.fieldChecks.WithLabelValues("name", "EMPTY")))
}

func TestLogRegistrar_NeverLogsPassword(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	r := Registration{
		ID:       "01J00000000000000000000000",
		Name:     "Ana\n<b>Lima</b>",
		Email:    "ana@example.com",
		Phone:    "1234567890",
		Password: "Sup3rSecret!",
	}

	require.NoError(t, NewLogRegistrar(log).Registered(context.Background(), r))

	out := buf.String()
	assert.Contains(t, out, "form submitted successfully")
	assert.Contains(t, out, `"name":"Ana Lima"`)
	assert.Contains(t, out, `"email":"ana@example.com"`)
	assert.Contains(t, out, redacted)
	assert.NotContains(t, out, "Sup3rSecret!")

	assert.NotContains(t, r.String(), "Sup3rSecret!")
	assert.NotContains(t, fmt.Sprintf("%v", r), "Sup3rSecret!")
	assert.NotContains(t, fmt.Sprintf("%+v", r), "Sup3rSecret!")
}
