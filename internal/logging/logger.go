// Package logging builds the slog loggers handed to the redpoint tree and its hosts.
package logging

import (
	"io"
	"log/slog"

	"redpoint/internal/config"
)

// New returns a text logger writing to w at the named level
// (debug, info, warn, error)
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: config.ParseLevel(level),
	}))
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
