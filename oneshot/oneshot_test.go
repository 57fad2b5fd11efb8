// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package oneshot_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/meridianchain/lightdb/oneshot"
)

func TestResolveOnce(t *testing.T) {
	s := oneshot.New()

	select {
	case <-s.Done():
		t.Fatal("signal resolved before Resolve")
	default:
	}

	s.Resolve()
	s.Resolve() // second resolution must be harmless

	select {
	case <-s.Done():
	default:
		t.Fatal("signal not resolved after Resolve")
	}
}

// the same handler registered on several notification channels must be
// safe no matter how many of them fire
func TestSharedHandler(t *testing.T) {
	s := oneshot.New()

	onComplete := s.Handler()
	onAbort := s.Handler()
	onError := s.Handler()

	go onComplete()
	go onAbort()
	go onError()

	err := s.Wait(context.Background())
	assert.Nil(t, err, "wait returned error")
}

func TestWaitCancelled(t *testing.T) {
	s := oneshot.New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Wait(ctx)
	assert.Equal(t, context.Canceled, err, "expected context cancellation")

	// a cancelled wait must not block later resolution
	s.Resolve()
	err = s.Wait(context.Background())
	assert.Nil(t, err, "wait after resolve returned error")
}

func TestWaitResolvedLater(t *testing.T) {
	s := oneshot.New()

	go func() {
		time.Sleep(10 * time.Millisecond)
		s.Resolve()
	}()

	err := s.Wait(context.Background())
	assert.Nil(t, err, "wait returned error")
}
