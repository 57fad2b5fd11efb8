// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"

	"github.com/meridianchain/lightdb/engine"
)

// transaction - a batch of operations applied atomically
//
// operations accumulate in a LevelDB batch; nothing touches the
// database until Commit schedules settlement on the connection's
// notifier goroutine
type transaction struct {
	sync.Mutex

	conn  *connection
	mode  engine.Mode
	scope map[string]byte // collection name -> table prefix

	batch   *leveldb.Batch
	pending map[string][]byte // encoded key -> encoded value, uncommitted

	settled bool
	aborted bool
	err     error

	onComplete []func()
	onAbort    []func()
	onError    []func()
}

// Collection - access one collection in the transaction's scope
func (t *transaction) Collection(name string) engine.Collection {
	prefix, ok := t.scope[name]
	if !ok {
		logger.Panicf("transaction.Collection: %q is not in scope", name)
	}
	return &collectionHandle{
		trx:    t,
		prefix: prefix,
	}
}

func (t *transaction) OnComplete(f func()) {
	t.Lock()
	t.onComplete = append(t.onComplete, f)
	t.Unlock()
}

func (t *transaction) OnAbort(f func()) {
	t.Lock()
	t.onAbort = append(t.onAbort, f)
	t.Unlock()
}

func (t *transaction) OnError(f func()) {
	t.Lock()
	t.onError = append(t.onError, f)
	t.Unlock()
}

// Commit - no further operations, settle asynchronously
//
// exactly one terminal notification fires from the notifier goroutine
func (t *transaction) Commit() {
	t.Lock()
	if t.settled {
		t.Unlock()
		logger.Panic("transaction.Commit: already settled")
	}
	t.settled = true
	t.Unlock()

	t.conn.dispatch(t.settle)
}

// Abort - discard all issued operations
func (t *transaction) Abort() {
	t.Lock()
	if t.settled {
		t.Unlock()
		logger.Panic("transaction.Abort: already settled")
	}
	t.settled = true
	t.aborted = true
	t.err = engine.NewError(engine.AbortError, "transaction aborted")
	t.batch.Reset()
	t.Unlock()

	t.conn.dispatch(t.settle)
}

// Err - the terminal error, nil after a clean commit
func (t *transaction) Err() error {
	t.Lock()
	defer t.Unlock()
	return t.err
}

// runs on the notifier goroutine
func (t *transaction) settle() {
	t.Lock()

	if t.aborted {
		callbacks := t.onAbort
		t.Unlock()
		runAll(callbacks)
		return
	}

	var err error
	if t.batch.Len() > 0 {
		err = t.conn.db.Write(t.batch, nil)
	}

	if nil != err {
		t.conn.log.Errorf("transaction settle: %s", err)
		t.err = engine.NewError(engine.UnknownError, err.Error())
		callbacks := t.onError
		t.Unlock()
		runAll(callbacks)
		return
	}

	callbacks := t.onComplete
	t.Unlock()
	runAll(callbacks)
}

func runAll(callbacks []func()) {
	for _, f := range callbacks {
		f()
	}
}
