package server

import "time"

// Options is the immutable lifecycle configuration handed to Start.
type Options struct {
	// Address is the "host:port" to listen on. Port 0 asks the OS for a free
	// port; Start returns the one actually bound.
	Address string

	// MaxLifetime bounds how long Await blocks without a shutdown request.
	// Required.
	MaxLifetime time.Duration

	// GracePeriod is how long Stop lets in-flight calls finish before
	// terminating them. Zero terminates them immediately.
	GracePeriod time.Duration

	// EnableReflection registers the gRPC server reflection service.
	EnableReflection bool
}

func (o Options) validate() error {
	if o.Address == "" {
		return &ConfigurationError{Field: "address", Reason: "is required"}
	}

	if o.MaxLifetime == 0 {
		return &ConfigurationError{Field: "max_lifetime", Reason: "is required"}
	}

	if o.MaxLifetime < 0 {
		return &ConfigurationError{Field: "max_lifetime", Reason: "must not be negative"}
	}

	if o.GracePeriod < 0 {
		return &ConfigurationError{Field: "grace_period", Reason: "must not be negative"}
	}

	return nil
}
