package kafka_config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the producer side of the Kafka configuration.
// An empty broker list disables event publishing altogether.
type Config struct {
	Brokers []string

	ProducerMaxAttempts  int
	ProducerBatchTimeout time.Duration
	ProducerRequireAcks  int    // -1 = all, 0 = none, 1 = leader only
	ProducerCompression  string // "none", "gzip", "snappy", "lz4", "zstd"
	ProducerAsync        bool
	WriteTimeout         time.Duration
}

// Load creates a Kafka config from environment variables
func Load() *Config {
	return &Config{
		Brokers: splitBrokers(os.Getenv(EnvKafkaBrokers)),

		ProducerMaxAttempts:  getEnvInt(EnvKafkaProducerMaxAttempts, DefaultProducerMaxAttempts),
		ProducerBatchTimeout: getEnvDuration(EnvKafkaProducerBatchTimeout, DefaultProducerBatchTimeout),
		ProducerRequireAcks:  getEnvInt(EnvKafkaProducerRequireAcks, DefaultProducerRequireAcks),
		ProducerCompression:  getEnvStr(EnvKafkaProducerCompression, DefaultProducerCompression),
		ProducerAsync:        getEnvBool(EnvKafkaProducerAsync, DefaultProducerAsync),
		WriteTimeout:         getEnvDuration(EnvKafkaWriteTimeout, DefaultWriteTimeout),
	}
}

func (cfg *Config) Enabled() bool {
	return len(cfg.Brokers) > 0
}

// Validate returns a list of problems; an empty list means the config is usable.
// A disabled config is always valid.
func (cfg *Config) Validate() []string {
	var errors []string
	if !cfg.Enabled() {
		return errors
	}

	for i, broker := range cfg.Brokers {
		if broker == "" {
			errors = append(errors, fmt.Sprintf("Kafka broker %d cannot be empty", i))
		}
	}

	if cfg.ProducerMaxAttempts <= 0 {
		errors = append(errors, fmt.Sprintf("ProducerMaxAttempts must be positive, got: %d", cfg.ProducerMaxAttempts))
	}

	if cfg.ProducerBatchTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ProducerBatchTimeout must be positive, got: %s", cfg.ProducerBatchTimeout))
	}

	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("Kafka WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}

	validCompressions := map[string]bool{
		"none": true, "gzip": true, "snappy": true, "lz4": true, "zstd": true,
	}
	if !validCompressions[cfg.ProducerCompression] {
		errors = append(errors, fmt.Sprintf("ProducerCompression must be one of [none, gzip, snappy, lz4, zstd], got: %s", cfg.ProducerCompression))
	}

	validAcks := map[int]bool{-1: true, 0: true, 1: true}
	if !validAcks[cfg.ProducerRequireAcks] {
		errors = append(errors, fmt.Sprintf("ProducerRequireAcks must be -1, 0, or 1, got: %d", cfg.ProducerRequireAcks))
	}

	return errors
}

func splitBrokers(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	brokers := strings.Split(raw, ",")
	for i, broker := range brokers {
		brokers[i] = strings.TrimSpace(broker)
	}
	return brokers
}

func getEnvStr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
