// Package environment names the deployment environment (development, staging,
// production).
//
// Parse accepts the APP_ENV spellings used in .env files, including the short
// forms dev, stage and prod. The logger package uses it to pick its output preset.
package environment
