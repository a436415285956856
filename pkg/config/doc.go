// Package config loads typed application settings from the process environment.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv layers one or more .env files into the environment. Values that are
//     already set in the process environment always win, and among the files the
//     last one listed wins.
//   - Load parses the environment into any struct annotated with `env` tags and
//     caches the result per type, so repeated calls are cheap and return the same
//     snapshot for the lifetime of the process.
//   - MustLoadEnv and MustLoad panic instead of returning an error, for start-up
//     code where missing configuration is fatal.
//
// # Usage
//
//	type EmailSettings struct {
//	    APIKey string `env:"RESEND_API_KEY"`
//	    From   string `env:"EMAIL_FROM"`
//	    Name   string `env:"EMAIL_FROM_NAME" envDefault:"Deep Research Bot"`
//	}
//
//	config.MustLoadEnv(".env", ".env.local")
//
//	var s EmailSettings
//	if err := config.Load(&s); err != nil {
//	    return err
//	}
//
// # Concurrency
//
// Each configuration type is parsed under its own sync.Once, so concurrent first
// calls to Load race to a single parse and every caller observes the same value.
// Reads after the first load only take a read lock.
//
// # Testing
//
// ResetCache clears every cached type and ForceReloadConfig re-parses a single one
// after the environment changed.
package config
