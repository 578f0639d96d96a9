// Package logging builds the service's slog logger and carries the
// request-scoped logger through context.Context.
//
// Log keys shared across packages have constructors here, so a todo id is
// always "todo_id" whether the service, a handler or the query tracer
// writes it:
//
//	logger.ErrorContext(ctx, "todo operation failed",
//	    logging.Operation("ReplaceTodo"),
//	    logging.TodoID(id),
//	    logging.Err(err),
//	)
//
// Every handler built by New scrubs credentials before a record is written.
package logging

import (
	"context"
	"io"
	"log/slog"
)

// Shared attribute keys.
const (
	KeyOperation = "operation"
	KeyTodoID    = "todo_id"
	KeyError     = "error"
)

type loggerKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn or
// error in any case; anything else logs at info. format "text" selects
// logfmt-style output and every other value JSON. Debug loggers also record
// the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := slog.LevelInfo
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Discard returns a logger that drops every record. Constructors fall back
// to it when handed a nil logger.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// Operation names the use case a record belongs to.
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// TodoID identifies the todo a record is about.
func TodoID(id int64) slog.Attr {
	return slog.Int64(KeyTodoID, id)
}

// Err attaches an error.
func Err(err error) slog.Attr {
	return slog.Any(KeyError, err)
}
