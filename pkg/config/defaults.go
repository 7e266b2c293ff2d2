package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	// DefaultRoomInventory matches the property's fixed room catalog.
	DefaultRoomInventory = "single:5,double:3,suite:2"

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 10 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 << 20 // 1 MiB

	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 15 * time.Second

	DefaultBookingEventsTopic = "reservations.booking.committed"

	DefaultReservationsBaseURL = "http://localhost:8080"
	DefaultCalendarID          = "primary"
)
