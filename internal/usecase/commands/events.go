package commands

import (
	"context"

	"book-courier/internal/pkg/logctx"

	"go.uber.org/zap"
)

// publish is best effort: the state change already committed, so a broker
// failure is logged and swallowed.
func publish(ctx context.Context, publisher EventPublisher, event Event) {
	if err := publisher.Publish(ctx, event); err != nil {
		logctx.From(ctx).Warn("failed to publish event",
			zap.String("type", event.Type),
			zap.String("key", event.Key),
			zap.Error(err))
	}
}
