// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration matches every [*ConfigurationError].
	ErrConfiguration = errors.New("invalid lifecycle configuration")

	// ErrAlreadyRunning is returned by Start on a controller that has already
	// been started. The running server is left untouched.
	ErrAlreadyRunning = errors.New("server is already started")

	// ErrStartup matches every [*StartupError].
	ErrStartup = errors.New("failed to start server")

	// ErrTeardown wraps a failure of the serve loop reported during Stop.
	ErrTeardown = errors.New("server terminated with an error")
)

// ConfigurationError names the [Options] field that is missing or invalid.
// Start must not be retried until the configuration is fixed.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrConfiguration, e.Field, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// StartupError reports that the listener could not be bound or launched.
// Start may be retried once the underlying condition (e.g. a port in use) is
// resolved.
type StartupError struct {
	Address string
	Err     error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("%s on %q: %v", ErrStartup, e.Address, e.Err)
}

func (e *StartupError) Unwrap() []error {
	return []error{ErrStartup, e.Err}
}
