// Package notify provides a single-fire notification that one goroutine
// raises and any number of goroutines can wait on, optionally with a bound.
//
// A [Notification] is created by whoever owns the shutdown decision and is
// handed by pointer to every component that may raise or observe it, so two
// notifications in the same process never interfere with each other.
package notify
