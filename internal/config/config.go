// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-translator/internal/server"
)

// DefaultShutdownGracePeriod is applied when no source sets
// Server.ShutdownGracePeriod.
const DefaultShutdownGracePeriod = 500 * time.Millisecond

// StructuredConfig is the top-level configuration container for the
// translator server. It is populated by merging defaults, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the version label and log
	// level.
	App App `envPrefix:"APP_"`

	// Server holds the listen address and lifecycle durations of the gRPC
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Dictionary points at an optional file that replaces the built-in
	// translations.
	Dictionary Dictionary `envPrefix:"DICTIONARY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// Version is the version label logged at startup.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel narrows the global log level ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and lifecycle settings for the gRPC server.
type Server struct {
	// GRPCAddress is the TCP address on which the gRPC server listens,
	// in "host:port" format (e.g. "0.0.0.0:9090"). Port 0 picks a free port.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// MaxLifetime is how long the server runs without a shutdown request
	// (e.g. "30s", "10m"). Required.
	// Env: SERVER_MAX_LIFETIME
	MaxLifetime time.Duration `env:"MAX_LIFETIME"`

	// ShutdownGracePeriod is how long in-flight calls may run once shutdown
	// starts. nil means unset and yields [DefaultShutdownGracePeriod]; an
	// explicit 0 terminates outstanding calls immediately.
	// Env: SERVER_SHUTDOWN_GRACE_PERIOD
	ShutdownGracePeriod *time.Duration `env:"SHUTDOWN_GRACE_PERIOD"`

	// EnableReflection registers gRPC server reflection.
	// Env: SERVER_ENABLE_REFLECTION
	EnableReflection bool `env:"ENABLE_REFLECTION"`

	// MetricsAddress is the optional "host:port" of the Prometheus /metrics
	// endpoint. Empty disables it.
	// Env: SERVER_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`
}

// Dictionary holds the location of the translation table.
type Dictionary struct {
	// FilePath is a YAML or JSON word -> translation mapping. Empty means
	// the built-in dictionary.
	// Env: DICTIONARY_FILE_PATH
	FilePath string `env:"FILE_PATH"`
}

// Options converts the server section into the lifecycle options consumed by
// server.Controller.
func (s Server) Options() server.Options {
	return server.Options{
		Address:          s.GRPCAddress,
		MaxLifetime:      s.MaxLifetime,
		GracePeriod:      s.GracePeriod(),
		EnableReflection: s.EnableReflection,
	}
}

// GracePeriod returns the configured shutdown grace period or
// [DefaultShutdownGracePeriod] when none was set.
func (s Server) GracePeriod() time.Duration {
	if s.ShutdownGracePeriod == nil {
		return DefaultShutdownGracePeriod
	}
	return *s.ShutdownGracePeriod
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
