// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"sync"
)

// reusable request implementations for engine backends
//
// callbacks registered after completion run immediately on the
// registering goroutine; exactly one of success or error ever runs

// PendingOpen - OpenRequest implementation settled by Complete
type PendingOpen struct {
	sync.Mutex

	settled bool
	conn    Connection
	err     error

	onSuccess []func()
	onError   []func()
}

// NewPendingOpen - an unsettled open request
func NewPendingOpen() *PendingOpen {
	return &PendingOpen{}
}

func (r *PendingOpen) OnSuccess(f func()) {
	r.Lock()
	if r.settled {
		failed := nil != r.err
		r.Unlock()
		if !failed {
			f()
		}
		return
	}
	r.onSuccess = append(r.onSuccess, f)
	r.Unlock()
}

func (r *PendingOpen) OnError(f func()) {
	r.Lock()
	if r.settled {
		failed := nil != r.err
		r.Unlock()
		if failed {
			f()
		}
		return
	}
	r.onError = append(r.onError, f)
	r.Unlock()
}

// Result - the connection, or the error that ended the request
func (r *PendingOpen) Result() (Connection, error) {
	r.Lock()
	defer r.Unlock()
	return r.conn, r.err
}

// Complete - settle the request; later calls are ignored
func (r *PendingOpen) Complete(conn Connection, err error) {
	r.Lock()
	if r.settled {
		r.Unlock()
		return
	}
	r.settled = true
	r.conn = conn
	r.err = err

	callbacks := r.onSuccess
	if nil != err {
		callbacks = r.onError
	}
	r.onSuccess = nil
	r.onError = nil
	r.Unlock()

	for _, f := range callbacks {
		f()
	}
}

// PendingGet - Request implementation settled by Complete
type PendingGet struct {
	sync.Mutex

	settled bool
	value   Value
	found   bool
	err     error

	onSuccess []func()
	onError   []func()
}

// NewPendingGet - an unsettled read request
func NewPendingGet() *PendingGet {
	return &PendingGet{}
}

func (r *PendingGet) OnSuccess(f func()) {
	r.Lock()
	if r.settled {
		failed := nil != r.err
		r.Unlock()
		if !failed {
			f()
		}
		return
	}
	r.onSuccess = append(r.onSuccess, f)
	r.Unlock()
}

func (r *PendingGet) OnError(f func()) {
	r.Lock()
	if r.settled {
		failed := nil != r.err
		r.Unlock()
		if failed {
			f()
		}
		return
	}
	r.onError = append(r.onError, f)
	r.Unlock()
}

// Result - value, presence and the error that ended the request
func (r *PendingGet) Result() (Value, bool, error) {
	r.Lock()
	defer r.Unlock()
	return r.value, r.found, r.err
}

// Complete - settle the request; later calls are ignored
func (r *PendingGet) Complete(value Value, found bool, err error) {
	r.Lock()
	if r.settled {
		r.Unlock()
		return
	}
	r.settled = true
	r.value = value
	r.found = found
	r.err = err

	callbacks := r.onSuccess
	if nil != err {
		callbacks = r.onError
	}
	r.onSuccess = nil
	r.onError = nil
	r.Unlock()

	for _, f := range callbacks {
		f()
	}
}
