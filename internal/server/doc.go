// Package server runs the translator gRPC server through a three-phase
// lifecycle.
//
// A [Controller] is driven by a single host goroutine:
//
//	addr, err := ctrl.Start(opts)  // bind and begin serving
//	ctrl.Await(opts.MaxLifetime)   // block until shutdown is requested or the lifetime ends
//	err = ctrl.Stop(opts.GracePeriod)
//
// Shutdown requests arrive from concurrently handled calls through a shared
// notify.Notification. A Controller is single-use: once started it can be
// stopped but never started again.
//
// The listener uses insecure transport credentials. Neither the server nor
// its clients are authenticated and no channel is encrypted, so it must not be
// exposed to untrusted networks.
//
// [MetricsServer] is an optional plain-HTTP companion serving Prometheus
// metrics; its lifetime is managed by the caller.
package server
