package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

const defaultFlushTimeout = 2 * time.Second

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	// Output receives the local copy of every record. Defaults to os.Stdout.
	Output      io.Writer
	DSN         string
	Environment string
	Release     string
	// Level is the minimum level written to Output.
	Level slog.Level
	// MinLevel determines which levels are sent to Sentry as logs
	// (slog.LevelWarn sends warnings and errors). Errors always create issues.
	MinLevel slog.Level
}

// NewWithSentry creates a logger that writes JSON records to cfg.Output and
// forwards warnings and errors to Sentry. The returned flush function blocks
// until buffered Sentry events are delivered or the timeout elapses; call it
// before the process exits.
//
// If DSN is empty or Sentry cannot be initialized, only local output is used
// and flush is a no-op.
func NewWithSentry(cfg SentryConfig, extractors ...ContextExtractor) (*slog.Logger, func()) {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	noFlush := func() {}

	if cfg.DSN == "" {
		return NewWithWriter(out, cfg.Level, extractors...), noFlush
	}

	local := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: cfg.Level})

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(local, extractors...)), noFlush
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	remote := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	flush := func() { sentry.Flush(defaultFlushTimeout) }
	return slog.New(NewLogHandlerDecorator(newMultiHandler(local, remote), extractors...)), flush
}
