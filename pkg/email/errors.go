package email

import "errors"

var (
	ErrFailedToSendEmail = errors.New("mailer.errors.failed_to_send_email")
	ErrInvalidConfig     = errors.New("mailer.errors.invalid_config")
	ErrNotConfigured     = errors.New("mailer.errors.not_configured")
	ErrInvalidParams     = errors.New("mailer.errors.invalid_params")
	ErrNoMessageID       = errors.New("mailer.errors.no_message_id")
)
