package registration

import (
	"context"
	"log/slog"
)

// Registrar is called once per accepted submission.
type Registrar interface {
	Registered(ctx context.Context, reg Registration) error
}

// RegistrarFunc adapts a function to Registrar.
type RegistrarFunc func(ctx context.Context, reg Registration) error

// Registered calls f.
func (f RegistrarFunc) Registered(ctx context.Context, reg Registration) error {
	return f(ctx, reg)
}

// LogRegistrar records accepted submissions in the log and nowhere else.
type LogRegistrar struct {
	log *slog.Logger
}

// NewLogRegistrar creates a registrar writing to log.
func NewLogRegistrar(log *slog.Logger) *LogRegistrar {
	return &LogRegistrar{log: log}
}

// Registered logs reg with its password redacted.
func (r *LogRegistrar) Registered(ctx context.Context, reg Registration) error {
	r.log.InfoContext(ctx, "form submitted successfully", "registration", reg)
	return nil
}
