package form

import (
	"context"
	"errors"
	"time"

	"reg-form/internal/services/registration"
)

// DefaultBannerDuration matches the page's original banner timeout.
const DefaultBannerDuration = 5 * time.Second

// Submitter accepts a complete form; registration.Service satisfies it.
type Submitter interface {
	Submit(ctx context.Context, form registration.Form) (*registration.Registration, error)
}

// Snapshot is the full page state after an event.
type Snapshot struct {
	Values   map[registration.Field]string `json:"values"`
	Fields   []FieldView                   `json:"fields"`
	Meter    MeterView                     `json:"meter"`
	Banner   BannerView                    `json:"banner"`
	Toggle   ToggleView                    `json:"toggle"`
	ScrollTo registration.Field            `json:"scrollTo,omitempty"`
	Reset    bool                          `json:"reset"`
}

// State is the live state of one form on one page. It is not safe for
// concurrent use; each connection owns its own State.
type State struct {
	form            registration.Form
	views           map[registration.Field]FieldView
	focused         map[registration.Field]bool
	meter           MeterView
	passwordVisible bool
	bannerUntil     time.Time
	bannerDuration  time.Duration
	scrollTo        registration.Field
	reset           bool
	now             func() time.Time
}

// NewState returns an untouched form. bannerDuration <= 0 uses the default.
func NewState(bannerDuration time.Duration) *State {
	if bannerDuration <= 0 {
		bannerDuration = DefaultBannerDuration
	}
	s := &State{
		bannerDuration: bannerDuration,
		focused:        make(map[registration.Field]bool),
		now:            time.Now,
	}
	s.clear()
	return s
}

func (s *State) clear() {
	s.form = registration.Form{}
	s.views = make(map[registration.Field]FieldView)
	s.meter = InitialMeter()
	s.scrollTo = ""
}

// Input stores value and re-validates field, as the page does on every keystroke.
func (s *State) Input(field registration.Field, value string) error {
	if err := s.set(field, value); err != nil {
		return err
	}
	s.beginEvent()
	s.validate(field)
	return nil
}

// Focus marks field as focused.
func (s *State) Focus(field registration.Field) error {
	if _, err := registration.ParseField(string(field)); err != nil {
		return err
	}
	s.beginEvent()
	s.focused[field] = true
	return nil
}

// Blur clears focus, stores value and re-validates field.
func (s *State) Blur(field registration.Field, value string) error {
	if err := s.set(field, value); err != nil {
		return err
	}
	s.beginEvent()
	delete(s.focused, field)
	s.validate(field)
	return nil
}

// TogglePassword flips the password between hidden and shown.
func (s *State) TogglePassword() {
	s.beginEvent()
	s.passwordVisible = !s.passwordVisible
}

// Submit validates every field. On failure every field is rendered and the
// first failing one becomes the scroll target. On success sub is called once,
// the form is reset and the banner is shown.
func (s *State) Submit(ctx context.Context, sub Submitter) (*registration.Registration, error) {
	s.beginEvent()

	report := registration.Validate(s.form)
	for _, fr := range report.Fields {
		s.views[fr.Field] = RenderField(fr.Field, fr.Result)
	}
	if pc := registration.EvaluatePassword(s.form.Password); pc.Scored {
		lvl, _ := pc.Level()
		s.meter = RenderMeter(lvl)
	}

	if first, ok := report.FirstInvalid(); ok {
		s.scrollTo = first
		return nil, &registration.InvalidFormError{Report: report}
	}

	reg, err := sub.Submit(ctx, s.form)
	if err != nil {
		var invalid *registration.InvalidFormError
		if errors.As(err, &invalid) {
			s.scrollTo, _ = invalid.Report.FirstInvalid()
		}
		return nil, err
	}

	s.clear()
	s.reset = true
	s.bannerUntil = s.now().Add(s.bannerDuration)
	return reg, nil
}

// BannerExpiry reports when the banner hides, and whether it is showing.
func (s *State) BannerExpiry() (time.Time, bool) {
	if s.bannerUntil.IsZero() || !s.now().Before(s.bannerUntil) {
		return time.Time{}, false
	}
	return s.bannerUntil, true
}

// Snapshot renders the current page state. The reset flag and scroll target
// are one-shot: they are handed out by the first Snapshot after the event
// that set them.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Values:   make(map[registration.Field]string),
		Fields:   make([]FieldView, 0, len(registration.Fields())),
		Meter:    s.meter,
		Toggle:   toggleFor(s.passwordVisible),
		ScrollTo: s.scrollTo,
		Reset:    s.reset,
	}

	for _, f := range registration.Fields() {
		snap.Values[f] = s.form.Value(f)
		v, ok := s.views[f]
		if !ok {
			v = FieldView{Field: f}
		}
		v.Focused = s.focused[f]
		snap.Fields = append(snap.Fields, v)
	}

	if _, ok := s.BannerExpiry(); ok {
		snap.Banner = BannerView{Visible: true, Text: BannerText}
	}
	s.beginEvent()
	return snap
}

// Form returns the current field values.
func (s *State) Form() registration.Form {
	return s.form
}

// beginEvent drops one-shot flags left by the previous event or snapshot.
func (s *State) beginEvent() {
	s.scrollTo = ""
	s.reset = false
}

func (s *State) set(field registration.Field, value string) error {
	switch field {
	case registration.FieldName:
		s.form.Name = value
	case registration.FieldEmail:
		s.form.Email = value
	case registration.FieldPhone:
		s.form.Phone = value
	case registration.FieldPassword:
		s.form.Password = value
	case registration.FieldConfirmPassword:
		s.form.ConfirmPassword = value
	default:
		_, err := registration.ParseField(string(field))
		return err
	}
	return nil
}

func (s *State) validate(field registration.Field) {
	if field == registration.FieldPassword {
		pc := registration.EvaluatePassword(s.form.Password)
		if lvl, ok := pc.Level(); ok {
			s.meter = RenderMeter(lvl)
		}
		s.views[field] = RenderField(field, pc.Result)
		return
	}
	res := registration.ValidateField(field, s.form.Value(field), s.form.Password)
	s.views[field] = RenderField(field, res)
}
