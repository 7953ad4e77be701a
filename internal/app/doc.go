// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the translator server from its configuration and
// drives it through a single Start, Await and Stop cycle.
//
// The dependency graph is built bottom-up: dictionary store, services, gRPC
// handler and finally the lifecycle controller. Cancelling the context passed
// to [App.Run] (typically on SIGINT/SIGTERM) is forwarded to the controller as
// a shutdown request, so a signal and the Shutdown RPC take the same path.
package app
