package registration

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Submission outcomes used as metric labels.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

const codeOK = "OK"

// Metrics counts field checks and submissions. A nil *Metrics is a no-op.
type Metrics struct {
	fieldChecks *prometheus.CounterVec
	submissions *prometheus.CounterVec
	strength    prometheus.Histogram
}

// NewMetrics creates the registration collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		fieldChecks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "regform_field_checks_total",
				Help: "Field validations by field and result code",
			},
			[]string{"field", "code"},
		),
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "regform_submissions_total",
				Help: "Form submissions by outcome",
			},
			[]string{"outcome"},
		),
		strength: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "regform_password_strength",
				Help:    "Strength score of scored passwords",
				Buckets: []float64{0, 1, 2, 3, 4},
			},
		),
	}
	reg.MustRegister(m.fieldChecks, m.submissions, m.strength)
	return m
}

func (m *Metrics) observeField(field Field, res Result) {
	if m == nil {
		return
	}
	code := codeOK
	if !res.Valid {
		code = string(res.Code)
	}
	m.fieldChecks.WithLabelValues(string(field), code).Inc()
}

func (m *Metrics) observeStrength(score int) {
	if m == nil {
		return
	}
	m.strength.Observe(float64(score))
}

func (m *Metrics) observeSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
}
