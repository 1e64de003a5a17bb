package config

import (
	"time"

	"classbook/pkg/locale"
)

const (
	DefaultPort = "8080"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultReferenceTimeZone = locale.DefaultTimezone

	DefaultRequestTimeout = 10 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultBookingEventsTopic = "classbook.bookings"
)
