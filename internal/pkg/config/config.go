package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, Mongo URI, secrets, etc.)
// - default: Values common across all environments (timeouts, collection names, etc.)
// - optional: Redis and Kafka stay disabled while their addresses are empty
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Mongo   MongoConfig
	Stripe  StripeConfig
	Client  ClientConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Metrics MetricsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"3000"`
}

type MongoConfig struct {
	URI      string        `envconfig:"MONGO_URI" required:"true"`
	Database string        `envconfig:"MONGO_DATABASE" default:"book-courier-db"`
	Timeout  time.Duration `envconfig:"MONGO_TIMEOUT" default:"10s"`
	// Multi-document transactions need a replica set.
	Transactions bool `envconfig:"MONGO_TRANSACTIONS" default:"false"`
}

type StripeConfig struct {
	SecretKey string `envconfig:"STRIPE_SECRET" required:"true"`
	Currency  string `envconfig:"STRIPE_CURRENCY" default:"usd"`
}

type ClientConfig struct {
	Domain string `envconfig:"CLIENT_DOMAIN" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	// json or console; empty picks by gin mode
	Format string `envconfig:"LOG_FORMAT" default:""`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Issuer   string `envconfig:"JWT_ISSUER" default:""`
	Audience string `envconfig:"JWT_AUDIENCE" default:""`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type RedisConfig struct {
	Addr           string        `envconfig:"REDIS_ADDR" default:""`
	Password       string        `envconfig:"REDIS_PASSWORD" default:""`
	DB             int           `envconfig:"REDIS_DB" default:"0"`
	ConfirmLockTTL time.Duration `envconfig:"CONFIRM_LOCK_TTL" default:"30s"`
}

type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS" default:""`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"book-courier.events"`
}

type MetricsConfig struct {
	Namespace string `envconfig:"METRICS_NAMESPACE" default:"book_courier"`
}

func (c *ClientConfig) SuccessURL() string {
	return c.Domain + "/payment-success?session_id={CHECKOUT_SESSION_ID}"
}

func (c *ClientConfig) CancelURL(bookID string) string {
	return c.Domain + "/book/" + bookID
}

func (c *KafkaConfig) Enabled() bool {
	for _, b := range c.Brokers {
		if b != "" {
			return true
		}
	}
	return false
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Mongo: MongoConfig{
			URI:      "mongodb://localhost:27018",
			Database: "book_courier_test",
			Timeout:  5 * time.Second,
		},
		Stripe: StripeConfig{
			SecretKey: "sk_test_dummy",
			Currency:  "usd",
		},
		Client: ClientConfig{
			Domain: "http://localhost:5173",
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-book-courier",
			Duration: "1h",
		},
		Redis: RedisConfig{
			ConfirmLockTTL: 5 * time.Second,
		},
		Kafka: KafkaConfig{
			Topic: "book-courier.events.test",
		},
		Metrics: MetricsConfig{
			Namespace: "book_courier_test",
		},
	}
}
