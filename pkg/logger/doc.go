// Package logger builds the slog loggers used across the module.
//
// Constructors:
//   - NewWithWriter produces JSON output for machines.
//   - NewDebug produces human-readable text at debug level, used for the
//     loader's filesystem diagnostics.
//   - NewNope discards everything.
//   - NewWithSentry writes locally and forwards warnings and errors to Sentry
//     when a DSN is configured.
//
// # Context Extractors
//
// A ContextExtractor turns request- or command-scoped context values into
// log attributes on every *Context logging call:
//
//	log := logger.NewWithWriter(os.Stdout, slog.LevelInfo, logger.CommandExtractor)
//	ctx := logger.WithCommand(context.Background(), "init")
//	log.InfoContext(ctx, "done")
//	// {"level":"INFO","msg":"done","command":"init"}
//
// LogHandlerDecorator applies extractors to any slog.Handler.
package logger
