package bootstrap

import (
	"context"
	"time"

	"book-courier/internal/infra/events"
	"book-courier/internal/infra/lock"
	"book-courier/internal/infra/payment"
	"book-courier/internal/pkg/config"
	"book-courier/internal/pkg/metrics"
	"book-courier/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var IntegrationModule = fx.Module("integration",
	fx.Provide(
		NewPaymentGateway,
		NewConfirmationLocker,
		NewEventPublisher,
		NewMetrics,
		func(m *metrics.Metrics) commands.CheckoutMetrics { return m },
		func(m *metrics.Metrics) commands.PromotionMetrics { return m },
	),
	fx.Invoke(SetupPropagation),
)

func NewPaymentGateway(cfg config.Config) commands.PaymentGateway {
	return payment.NewStripeGateway(cfg.Stripe)
}

// NewConfirmationLocker falls back to a no-op lock when REDIS_ADDR is empty.
func NewConfirmationLocker(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (commands.ConfirmationLocker, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("Redis not configured, confirmation lock disabled")
		return lock.NopLocker{}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	logger.Info("Redis connection established", zap.String("addr", cfg.Redis.Addr))

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return lock.NewRedisLocker(rdb, cfg.Redis.ConfirmLockTTL, logger), nil
}

// NewEventPublisher falls back to logging events when KAFKA_BROKERS is empty.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (commands.EventPublisher, error) {
	if !cfg.Kafka.Enabled() {
		logger.Info("Kafka not configured, events are logged only")
		return events.NewLogPublisher(logger), nil
	}

	producer, err := events.NewSyncProducer(cfg.Kafka)
	if err != nil {
		return nil, err
	}
	logger.Info("Kafka producer initialized", zap.Strings("brokers", cfg.Kafka.Brokers))

	publisher := events.NewKafkaPublisher(producer, cfg.Kafka.Topic, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}

func NewMetrics(cfg config.Config) (*metrics.Metrics, prometheus.Gatherer) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return metrics.New(cfg.Metrics.Namespace, reg), reg
}

// SetupPropagation installs W3C trace context so incoming and outgoing trace ids line up.
func SetupPropagation() {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
}
