package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "roomly"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort = "8080"

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Minimum billable stay in hours, used as the validation floor when no
	// room tariff has been selected yet. Rooms carry their own base duration.
	DefaultMinStayHours = 2

	// All facilities currently operate in Vietnam.
	DefaultTimeZone = "Asia/Ho_Chi_Minh"

	// "mongo" reads the catalog from MongoDB; "memory" serves the
	// built-in seed without a database.
	DefaultCatalogDriver = "mongo"

	DefaultBookingsTopic    = "bookings.submitted"
	DefaultBookingsDLQTopic = "bookings.submitted.dlq"
	DefaultNotifierGroupID  = "roomly-notifier"
)
