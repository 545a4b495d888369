// Package logging builds the diagnostics logger. Diagnostics are off unless
// debug output is requested through configuration.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w at debug level when debug is set,
// and a logger that discards everything otherwise.
func New(w io.Writer, debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
