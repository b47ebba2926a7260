package logger

import (
	"io"
	"log/slog"
)

// NewWithWriter creates a JSON-formatted logger writing to w at the given level.
func NewWithWriter(w io.Writer, level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewLogHandlerDecorator(h, extractors...))
}

// NewDebug creates a human-readable text logger at debug level.
// It is meant for progress diagnostics, not for machine consumption.
func NewDebug(w io.Writer, extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewLogHandlerDecorator(h, extractors...))
}
