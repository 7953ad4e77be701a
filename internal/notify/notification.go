// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"sync"
	"time"
)

// Notification is a one-shot event. It starts unset, can be raised any number
// of times from any goroutine, and once raised it never reverts.
//
// The zero value is not usable; construct it with [New].
type Notification struct {
	once sync.Once
	done chan struct{}
}

// New returns an unset Notification.
func New() *Notification {
	return &Notification{
		done: make(chan struct{}),
	}
}

// Raise sets the notification. It reports true only for the call that
// performed the unset->set transition; every later call is a no-op that
// returns false.
func (n *Notification) Raise() bool {
	raised := false
	n.once.Do(func() {
		close(n.done)
		raised = true
	})

	return raised
}

// Raised reports whether the notification has been set.
func (n *Notification) Raised() bool {
	select {
	case <-n.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the notification is raised or timeout elapses and reports
// whether it was raised. A non-positive timeout does not block.
func (n *Notification) Wait(timeout time.Duration) bool {
	if timeout <= 0 {
		return n.Raised()
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-n.done:
		return true
	case <-timer.C:
		// both may be ready at once; a raise always wins
		return n.Raised()
	}
}
