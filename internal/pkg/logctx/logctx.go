package logctx

import (
	"context"

	"go.uber.org/zap"
)

type loggerKey struct{}

// With stores the request-scoped logger on the context.
func With(ctx context.Context, logger *zap.Logger) context.Context {
	if ctx == nil || logger == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// From retrieves the request-scoped logger, falling back to zap.L().
func From(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return zap.L()
	}
	if logger, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return zap.L()
}
