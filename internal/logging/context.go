package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

type loggerKey struct{}

// WithLogger attaches logger to ctx.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger attached to ctx, or the default logger.
func FromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*log.Logger); ok && logger != nil {
			return logger
		}
	}
	return Default()
}

// WithFields attaches a child of the context logger carrying keyvals, so
// everything logged further down the call chain is tagged with them.
func WithFields(ctx context.Context, keyvals ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(keyvals...))
}
