package email

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/deepreport/pkg/logger"
	"github.com/dmitrymomot/deepreport/pkg/validator"
)

// Resolver decides whether email delivery is possible.
type Resolver struct {
	load   func() (Settings, error)
	logger *slog.Logger
}

// NewResolver creates a Resolver. A nil load reads the environment through
// LoadSettings; a nil logger falls back to slog.Default().
func NewResolver(load func() (Settings, error), log *slog.Logger) *Resolver {
	if load == nil {
		load = LoadSettings
	}
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{load: load, logger: log.With(logger.Component("email.resolver"))}
}

// Resolve returns the delivery configuration and true, or false when email is
// unavailable. It never fails: missing and malformed settings are logged and
// reported as unavailable.
func (r *Resolver) Resolve(ctx context.Context) (DeliveryConfig, bool) {
	s, err := r.load()
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to load email settings", logger.Error(err))
		return DeliveryConfig{}, false
	}

	cfg, err := NewDeliveryConfig(s)
	switch {
	case err == nil:
		return cfg, true
	case errors.Is(err, ErrNotConfigured):
		r.logger.InfoContext(ctx, "email not configured", logger.Missing(s.Missing()...))
	case validator.IsValidationError(err):
		r.logger.WarnContext(ctx, "invalid email settings",
			slog.Any("fields", validator.ExtractValidationErrors(err).Fields()),
			logger.Error(err),
		)
	default:
		r.logger.WarnContext(ctx, "invalid email settings", logger.Error(err))
	}
	return DeliveryConfig{}, false
}
