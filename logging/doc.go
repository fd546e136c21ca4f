// Package logging builds structured log/slog loggers, JSON by default or
// logfmt-style text for interactive commands.
package logging
