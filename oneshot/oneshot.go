// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package oneshot - bridge callback notifications to an awaitable signal
//
// The storage engine reports completion through callbacks, and several
// mutually exclusive callbacks can be registered for one operation
// (complete/abort/error).  Exactly one of them fires.  A Signal lets the
// same handler be registered on all of them and resolves exactly once,
// whichever fires first.
package oneshot

import (
	"context"
	"sync"
)

// Signal - a one-shot completion signal
//
// the zero value is not usable, always create with New
type Signal struct {
	once sync.Once
	done chan struct{}
}

// New - create an unresolved signal
func New() *Signal {
	return &Signal{
		done: make(chan struct{}),
	}
}

// Resolve - mark the signal as complete
//
// safe to call any number of times from any goroutine, only the first
// call has any effect
func (s *Signal) Resolve() {
	s.once.Do(func() {
		close(s.done)
	})
}

// Handler - a callback that resolves the signal
//
// register the returned function on every notification channel that can
// terminate the operation
func (s *Signal) Handler() func() {
	return s.Resolve
}

// Done - channel closed on resolution
func (s *Signal) Done() <-chan struct{} {
	return s.done
}

// Wait - suspend until the signal resolves or the context is cancelled
//
// a cancelled wait abandons the caller only; the signal can still
// resolve later and other waiters are unaffected
func (s *Signal) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
