// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"net"
	"sync"
	"time"

	myGRPC "github.com/MKhiriev/go-translator/internal/handler/grpc"
	"github.com/MKhiriev/go-translator/internal/logger"
	"github.com/MKhiriev/go-translator/internal/notify"
)

// Controller owns the running gRPC server and the shutdown notification.
//
// mu guards state and handle and is only held while they are read or
// swapped, never across binding, serving or draining.
type Controller struct {
	mu     sync.Mutex
	state  State
	handle *grpcServer

	handler  *myGRPC.Handler
	shutdown *notify.Notification

	logger *logger.Logger
}

// NewController returns an unstarted Controller serving handler. shutdown is
// the notification the handler raises on a shutdown call; Await wakes on it.
func NewController(handler *myGRPC.Handler, shutdown *notify.Notification, logger *logger.Logger) *Controller {
	logger.Debug().Msg("lifecycle controller created")
	return &Controller{
		state:    StateUninitialized,
		handler:  handler,
		shutdown: shutdown,
		logger:   logger,
	}
}

// Start validates opts, binds the listener and begins serving in the
// background. It returns the bound address, which differs from opts.Address
// when port 0 was requested.
//
// Start fails with a [*ConfigurationError] for invalid opts, with
// [ErrAlreadyRunning] if the controller was ever started, and with a
// [*StartupError] if binding fails. After a StartupError nothing is recorded
// and Start may be called again.
func (c *Controller) Start(opts Options) (net.Addr, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	if err := c.reserve(); err != nil {
		return nil, err
	}

	srv := newGRPCServer(c.handler, opts, c.logger)
	addr, err := srv.listen(opts.Address)
	if err != nil {
		c.setState(StateUninitialized)
		return nil, &StartupError{Address: opts.Address, Err: err}
	}

	go srv.RunServer()

	c.mu.Lock()
	c.handle = srv
	c.state = StateRunning
	c.mu.Unlock()

	c.logger.Info().Str("address", addr.String()).Msg("gRPC server started")

	return addr, nil
}

// Await blocks until a shutdown is requested or maxLifetime elapses,
// whichever comes first. Both outcomes are the normal way to reach Stop, so
// nothing is returned. A non-positive maxLifetime returns immediately.
//
// The wall clock is not trusted for anything but bounding this wait: a clock
// that fires early or late only changes when the server stops.
func (c *Controller) Await(maxLifetime time.Duration) {
	if c.shutdown.Wait(maxLifetime) {
		c.logger.Debug().Msg("shutdown requested")
		return
	}

	c.logger.Debug().Dur("max_lifetime", maxLifetime).Msg("server lifetime elapsed")
}

// Stop shuts the server down, letting in-flight calls run for up to
// gracePeriod before they are terminated. Terminating calls at the deadline
// is the normal outcome of a short grace period and returns nil. Without a
// running server it is a no-op.
//
// The handle is released in every case. A non-nil error ([ErrTeardown]) means
// the serve loop itself failed; the server is gone either way.
func (c *Controller) Stop(gracePeriod time.Duration) error {
	c.mu.Lock()
	srv := c.handle
	if srv == nil {
		c.mu.Unlock()
		return nil
	}
	c.handle = nil
	c.state = StateDraining
	c.mu.Unlock()

	c.logger.Info().Msg("gRPC server shutting down")

	err := srv.Shutdown(gracePeriod)

	c.setState(StateStopped)

	if err != nil {
		c.logger.Warn().Err(err).Msg("gRPC server stopped with errors")
		return err
	}

	c.logger.Info().Msg("gRPC server stopped")
	return nil
}

// RequestShutdown raises the shutdown notification from the host side, e.g.
// on an OS signal. It reports whether this call raised it.
func (c *Controller) RequestShutdown() bool {
	return c.shutdown.Raise()
}

// State returns the current lifecycle phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// reserve moves an unstarted controller to StateStarting so that a
// concurrent Start fails instead of binding a second listener.
func (c *Controller) reserve() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateUninitialized {
		return ErrAlreadyRunning
	}

	c.state = StateStarting
	return nil
}

func (c *Controller) setState(state State) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
}
