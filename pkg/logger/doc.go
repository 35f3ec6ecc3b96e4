// Package logger builds configured log/slog loggers with text or JSON
// output, a minimum level, and optional static attributes.
package logger
