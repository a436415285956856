// Package logger builds *slog.Logger instances for the report delivery tools.
//
// New takes functional options that select the output format (text or JSON), the
// minimum level, static attributes and context extractors. WithEnvironment applies
// the preset used by the command line: readable text at debug level in
// development, JSON at info level in staging and production.
//
// Attribute helpers (Error, Component, Provider, Recipient, MessageID, Topic,
// Missing, Duration) keep key names consistent between packages. Error and
// MessageID return an empty attribute for zero values, so they can be passed
// unconditionally:
//
//	log.Warn("send failed", logger.Provider("resend"), logger.Error(err))
//
// WithContextValue copies a context value into every record logged with that
// context:
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "deepreport"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
package logger
