package config

import "errors"

var (
	// ErrNoDatabaseDSN is returned when no configuration source provided a
	// database connection string.
	ErrNoDatabaseDSN = errors.New("database DSN is not configured")

	// ErrNoTokenSignKey is returned when no configuration source provided a
	// JWT signing key.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")
)
