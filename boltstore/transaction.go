// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package boltstore

import (
	"fmt"
	"sync"

	bolt "go.etcd.io/bbolt"

	"github.com/bitmark-inc/logger"

	"github.com/meridianchain/lightdb/engine"
)

// one buffered write, applied at settlement
type writeOp struct {
	bucket string
	key    []byte
	value  []byte
	add    bool // re-check uniqueness inside the bolt update
}

// transaction - a batch of operations applied in one bolt update
type transaction struct {
	sync.Mutex

	conn  *connection
	mode  engine.Mode
	scope map[string]bool

	ops     []writeOp
	pending map[string][]byte // bucket + key -> value, uncommitted

	settled bool
	aborted bool
	err     error

	onComplete []func()
	onAbort    []func()
	onError    []func()
}

func pendingKey(bucket string, key []byte) string {
	return bucket + "\x1f" + string(key)
}

// Collection - access one collection in the transaction's scope
func (t *transaction) Collection(name string) engine.Collection {
	if !t.scope[name] {
		logger.Panicf("transaction.Collection: %q is not in scope", name)
	}
	return &collectionHandle{
		trx:    t,
		bucket: name,
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
	t.ops = nil
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
	if len(t.ops) > 0 {
		err = t.conn.db.Update(func(tx *bolt.Tx) error {
			for _, op := range t.ops {
				bucket := tx.Bucket([]byte(op.bucket))
				if nil == bucket {
					return engine.NewError(engine.UnknownError,
						fmt.Sprintf("collection vanished: %q", op.bucket))
				}
				// key written by a transaction that settled after
				// the operation-time check in Add; surfaces through
				// the error callback, not as an Add failure
				if op.add && nil != bucket.Get(op.key) {
					return engine.NewError(engine.ConstraintError,
						fmt.Sprintf("key already exists: %x", op.key))
				}
				if err := bucket.Put(op.key, op.value); nil != err {
					return err
				}
			}
			return nil
		})
	}

	if nil != err {
		t.conn.log.Errorf("transaction settle: %s", err)
		if _, ok := err.(*engine.Error); !ok {
			err = engine.NewError(engine.UnknownError, err.Error())
		}
		t.err = err
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

// collectionHandle - per-collection operations bound to one transaction
type collectionHandle struct {
	trx    *transaction
	bucket string
}

// Add - insert-if-absent
//
// a key already present in the database or in this transaction's
// uncommitted writes fails with ConstraintError
func (c *collectionHandle) Add(value engine.Value, key engine.Key) error {
	encodedKey, encodedValue, err := c.prepareWrite(value, key)
	if nil != err {
		return err
	}

	c.trx.Lock()
	defer c.trx.Unlock()

	if _, ok := c.trx.pending[pendingKey(c.bucket, encodedKey)]; ok {
		return engine.NewError(engine.ConstraintError,
			fmt.Sprintf("key already exists: %x", encodedKey))
	}

	exists := false
	err = c.trx.conn.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(c.bucket))
		exists = nil != bucket && nil != bucket.Get(encodedKey)
		return nil
	})
	if nil != err {
		return engine.NewError(engine.UnknownError, err.Error())
	}
	if exists {
		return engine.NewError(engine.ConstraintError,
			fmt.Sprintf("key already exists: %x", encodedKey))
	}

	c.trx.ops = append(c.trx.ops, writeOp{
		bucket: c.bucket,
		key:    encodedKey,
		value:  encodedValue,
		add:    true,
	})
	c.trx.pending[pendingKey(c.bucket, encodedKey)] = encodedValue
	return nil
}

// Put - upsert
func (c *collectionHandle) Put(value engine.Value, key engine.Key) error {
	encodedKey, encodedValue, err := c.prepareWrite(value, key)
	if nil != err {
		return err
	}

	c.trx.Lock()
	defer c.trx.Unlock()

	c.trx.ops = append(c.trx.ops, writeOp{
		bucket: c.bucket,
		key:    encodedKey,
		value:  encodedValue,
	})
	c.trx.pending[pendingKey(c.bucket, encodedKey)] = encodedValue
	return nil
}

func (c *collectionHandle) prepareWrite(value engine.Value, key engine.Key) ([]byte, []byte, error) {
	if engine.ReadWrite != c.trx.mode {
		return nil, nil, engine.NewError(engine.ReadOnlyError,
			"write issued in a read-only transaction")
	}

	encodedKey, err := key.Encode()
	if nil != err {
		return nil, nil, err
	}
	encodedValue, err := value.Encode()
	if nil != err {
		return nil, nil, err
	}
	return encodedKey, encodedValue, nil
}

// Get - issue an asynchronous single-key read
func (c *collectionHandle) Get(key engine.Key) (engine.Request, error) {
	encodedKey, err := key.Encode()
	if nil != err {
		return nil, err
	}

	trx := c.trx
	bucketName := c.bucket
	r := engine.NewPendingGet()

	trx.conn.dispatch(func() {
		trx.Lock()
		pendingValue, pendingFound := trx.pending[pendingKey(bucketName, encodedKey)]
		trx.Unlock()

		if pendingFound {
			r.Complete(engine.DecodeValue(pendingValue), true, nil)
			return
		}

		var raw []byte
		err := trx.conn.db.View(func(tx *bolt.Tx) error {
			bucket := tx.Bucket([]byte(bucketName))
			if nil == bucket {
				return nil
			}
			if value := bucket.Get(encodedKey); nil != value {
				raw = make([]byte, len(value))
				copy(raw, value)
			}
			return nil
		})
		if nil != err {
			r.Complete(engine.Value{}, false,
				engine.NewError(engine.UnknownError, err.Error()))
			return
		}
		if nil == raw {
			r.Complete(engine.Value{}, false, nil)
			return
		}
		r.Complete(engine.DecodeValue(raw), true, nil)
	})

	return r, nil
}
