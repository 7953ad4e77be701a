package server

import (
	"net"
	"time"
)

// Lifecycle is the contract a host drives in order: Start, then Await, then
// Stop. [Controller] implements it.
type Lifecycle interface {
	// Start binds the listener and begins serving asynchronously. It returns
	// the bound address.
	Start(opts Options) (net.Addr, error)

	// Await blocks until a shutdown is requested or maxLifetime elapses.
	Await(maxLifetime time.Duration)

	// Stop drains and terminates the server. Calling it without a running
	// server is a no-op.
	Stop(gracePeriod time.Duration) error

	// RequestShutdown wakes Await from outside the request path and reports
	// whether this call was the first request.
	RequestShutdown() bool
}

var _ Lifecycle = (*Controller)(nil)
