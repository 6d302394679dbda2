package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPPort              string
	Storage               string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	RedisAddr             string
	IdempotencyTTL        time.Duration
	KafkaBrokers          string
	KafkaOrderEventsTopic string
	OutboxBatchSize       int
}

// LoadConfig reads the configuration from the environment. Values in a .env file
// in the working directory are loaded first if the file exists; variables that
// are already set win.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	ttl, err := time.ParseDuration(env("IDEMPOTENCY_TTL", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("IDEMPOTENCY_TTL: %w", err)
	}

	batch, err := strconv.Atoi(env("OUTBOX_BATCH_SIZE", "100"))
	if err != nil {
		return Config{}, fmt.Errorf("OUTBOX_BATCH_SIZE: %w", err)
	}

	config := Config{
		HTTPPort:              env("HTTP_PORT", "8080"),
		Storage:               env("STORAGE", StoragePostgres),
		DBHost:                env("DB_HOST", "localhost"),
		DBPort:                env("DB_PORT", "5432"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSslMode:             env("DB_SSLMODE", "disable"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		IdempotencyTTL:        ttl,
		KafkaBrokers:          os.Getenv("KAFKA_BROKERS"),
		KafkaOrderEventsTopic: env("KAFKA_ORDER_EVENTS_TOPIC", "order-events"),
		OutboxBatchSize:       batch,
	}

	if config.Storage != StoragePostgres && config.Storage != StorageMemory {
		return Config{}, fmt.Errorf("STORAGE: unknown value %q", config.Storage)
	}
	return config, nil
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
