package events

import (
	"context"

	"book-courier/internal/usecase/commands"

	"go.uber.org/zap"
)

// LogPublisher stands in for Kafka when no brokers are configured.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event commands.Event) error {
	p.logger.Debug("Event not published, no brokers configured",
		zap.String("type", event.Type),
		zap.String("key", event.Key))
	return nil
}
