package logger

import (
	"io"
	"log/slog"
	"os"

	"chapel/internal/platform/config"
)

// New returns the process logger: JSON in production, text otherwise.
func New(env config.Environment) *slog.Logger {
	return NewWithWriter(os.Stdout, env)
}

// NewWithWriter is New with an explicit sink, for tests.
func NewWithWriter(w io.Writer, env config.Environment) *slog.Logger {
	var h slog.Handler
	if env == config.EnvProduction {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(h).With("service", "chapel", "env", string(env))
}
