// Package logging builds the application's structured logger.
package logging

import (
	"log/slog"
	"os"
)

// New returns a JSON slog logger writing to stdout at Info level.
// Components derive scoped loggers via logger.With("component", ...).
func New() *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(h)
}
