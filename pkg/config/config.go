package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	kafka_config "classbook/pkg/kafka/config"
	"classbook/pkg/locale"
	"classbook/pkg/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	LogLevel  string
	LogFormat string

	ReferenceTimeZone string
	ReferenceLocation *time.Location
	ClassSeedFile     string

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	BookingEventsTopic string
	Kafka              *kafka_config.Config

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	// A missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	cfg := fromEnv(serviceName)
	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func fromEnv(serviceName string) *Config {
	logLevel := getEnvStr(EnvLogLevel, DefaultLogLevel)
	logFormat := getEnvStr(EnvLogFormat, DefaultLogFormat)

	return &Config{
		Port: getEnvStr(EnvPort, DefaultPort),

		LogLevel:  logLevel,
		LogFormat: logFormat,

		ReferenceTimeZone: getEnvStr(EnvReferenceTimeZone, DefaultReferenceTimeZone),
		ClassSeedFile:     getEnvStr(EnvClassSeedFile, ""),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		BookingEventsTopic: getEnvStr(EnvBookingEventsTopic, DefaultBookingEventsTopic),
		Kafka:              kafka_config.Load(),

		Log: logger.New(logger.Config{
			Level:     logLevel,
			Format:    logFormat,
			AddSource: true,
			Service:   serviceName,
		}),
	}
}

// Validate checks every field and resolves ReferenceLocation. All problems are
// reported together.
func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if loc, err := locale.LoadZone(cfg.ReferenceTimeZone); err != nil {
		errors = append(errors, fmt.Sprintf("ReferenceTimeZone must be a valid IANA time zone, got: %q", cfg.ReferenceTimeZone))
	} else {
		cfg.ReferenceLocation = loc
	}

	if cfg.ClassSeedFile != "" {
		if info, err := os.Stat(cfg.ClassSeedFile); err != nil {
			errors = append(errors, fmt.Sprintf("ClassSeedFile is not readable: %v", err))
		} else if info.IsDir() {
			errors = append(errors, fmt.Sprintf("ClassSeedFile must be a file, got directory: %s", cfg.ClassSeedFile))
		}
	}

	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.RequestTimeout > 0 && cfg.WriteTimeout > 0 && cfg.RequestTimeout >= cfg.WriteTimeout {
		errors = append(errors, fmt.Sprintf("RequestTimeout (%s) must be shorter than WriteTimeout (%s)", cfg.RequestTimeout, cfg.WriteTimeout))
	}
	if cfg.IdempotencyTTL <= 0 {
		errors = append(errors, fmt.Sprintf("IdempotencyTTL must be positive, got: %s", cfg.IdempotencyTTL))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	if cfg.Kafka != nil && cfg.Kafka.Enabled() {
		if cfg.BookingEventsTopic == "" {
			errors = append(errors, "BookingEventsTopic cannot be empty when Kafka is enabled")
		}
		errors = append(errors, cfg.Kafka.Validate()...)
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	kafkaEnabled := cfg.Kafka != nil && cfg.Kafka.Enabled()
	var brokers []string
	if kafkaEnabled {
		brokers = cfg.Kafka.Brokers
	}

	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"reference_timezone", cfg.ReferenceTimeZone,
		"class_seed_file", cfg.ClassSeedFile,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"kafka_enabled", kafkaEnabled,
		"kafka_brokers", brokers,
		"booking_events_topic", cfg.BookingEventsTopic,
	)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
