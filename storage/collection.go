// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/meridianchain/lightdb/engine"
)

// collectionHandle - per-collection operations bound to one transaction
type collectionHandle struct {
	trx    *transaction
	prefix byte
}

// prepend the table prefix onto the canonical key encoding
func (c *collectionHandle) encodeKey(key engine.Key) ([]byte, error) {
	encoded, err := key.Encode()
	if nil != err {
		return nil, err
	}
	prefixedKey := make([]byte, 1, len(encoded)+1)
	prefixedKey[0] = c.prefix
	return append(prefixedKey, encoded...), nil
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

	if _, ok := c.trx.pending[string(encodedKey)]; ok {
		return engine.NewError(engine.ConstraintError,
			fmt.Sprintf("key already exists: %x", encodedKey))
	}

	exists, err := c.trx.conn.db.Has(encodedKey, nil)
	if nil != err {
		return engine.NewError(engine.UnknownError, err.Error())
	}
	if exists {
		return engine.NewError(engine.ConstraintError,
			fmt.Sprintf("key already exists: %x", encodedKey))
	}

	c.trx.batch.Put(encodedKey, encodedValue)
	c.trx.pending[string(encodedKey)] = encodedValue
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

	c.trx.batch.Put(encodedKey, encodedValue)
	c.trx.pending[string(encodedKey)] = encodedValue
	return nil
}

func (c *collectionHandle) prepareWrite(value engine.Value, key engine.Key) ([]byte, []byte, error) {
	if engine.ReadWrite != c.trx.mode {
		return nil, nil, engine.NewError(engine.ReadOnlyError,
			"write issued in a read-only transaction")
	}

	encodedKey, err := c.encodeKey(key)
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
//
// the result is delivered through the request callbacks from the
// notifier goroutine; uncommitted writes of this transaction are
// visible to the read
func (c *collectionHandle) Get(key engine.Key) (engine.Request, error) {
	encodedKey, err := c.encodeKey(key)
	if nil != err {
		return nil, err
	}

	trx := c.trx
	r := engine.NewPendingGet()

	trx.conn.dispatch(func() {
		trx.Lock()
		pendingValue, pendingFound := trx.pending[string(encodedKey)]
		trx.Unlock()

		if pendingFound {
			r.Complete(engine.DecodeValue(pendingValue), true, nil)
			return
		}

		raw, err := trx.conn.db.Get(encodedKey, nil)
		if leveldb.ErrNotFound == err {
			r.Complete(engine.Value{}, false, nil)
			return
		}
		if nil != err {
			r.Complete(engine.Value{}, false,
				engine.NewError(engine.UnknownError, err.Error()))
			return
		}
		r.Complete(engine.DecodeValue(raw), true, nil)
	})

	return r, nil
}
