package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// settings are missing or invalid.
var (
	// ErrMissingGRPCAddress indicates that no gRPC listen address was given.
	ErrMissingGRPCAddress = errors.New("gRPC address is not specified")
	// ErrMissingMaxLifetime indicates that no server max lifetime was given.
	ErrMissingMaxLifetime = errors.New("server max lifetime is not specified")
	// ErrNegativeDuration indicates a negative lifetime or grace period.
	ErrNegativeDuration = errors.New("server durations must not be negative")
)
