package logger

import (
	"context"

	"go.uber.org/zap"
)

type loggerKey struct{}

// ContextWithLogger returns a context carrying the request-scoped logger.
func ContextWithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the request-scoped logger stored in ctx. The
// boolean reports whether one was stored; callers fall back to their
// own logger when it was not.
func FromContext(ctx context.Context) (*zap.Logger, bool) {
	l, ok := ctx.Value(loggerKey{}).(*zap.Logger)
	return l, ok
}
