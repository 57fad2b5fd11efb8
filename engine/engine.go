// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

// UpgradeFunc - schema upgrade callback
//
// runs synchronously inside the open protocol, before the open request
// completes; oldVersion is the version currently persisted (zero for a
// fresh store); the connection accepts CreateCollection only while this
// callback is running
type UpgradeFunc func(conn Connection, oldVersion uint32)

// Factory - entry point to the host engine
type Factory interface {
	// Supported - whether the engine capability is available
	Supported() bool

	// Open - issue an asynchronous open request for the named store
	// at the given schema version
	Open(name string, version uint32, upgrade UpgradeFunc) OpenRequest
}

// OpenRequest - an in-flight open request
//
// exactly one of the success or error callbacks fires, after which
// Result returns the outcome
type OpenRequest interface {
	OnSuccess(func())
	OnError(func())

	// Result - the connection, or the error that ended the request
	Result() (Connection, error)
}

// Connection - one open connection to a store
type Connection interface {
	// CreateCollection - create a named collection
	//
	// legal only inside an upgrade callback; panics if the name
	// already exists since that indicates version bookkeeping gone
	// wrong
	CreateCollection(name string)

	// HasCollection - whether a named collection exists
	HasCollection(name string) bool

	// Collections - names of all collections, sorted
	Collections() []string

	// Version - the schema version persisted in the store
	Version() uint32

	// Transaction - open a transaction scoped to the named
	// collections; panics if any name does not exist
	Transaction(collections []string, mode Mode) Transaction

	// Close - release the connection; idempotent, waits for
	// in-flight transactions to settle
	Close() error
}

// Transaction - an atomic unit of work
//
// operations are issued synchronously, then Commit schedules
// asynchronous settlement; exactly one terminal callback fires from the
// engine's notifier goroutine
type Transaction interface {
	// Collection - access a collection in the transaction's scope;
	// panics if the name was not listed when the transaction was
	// opened
	Collection(name string) Collection

	// terminal notification callbacks; register before Commit
	OnComplete(func())
	OnAbort(func())
	OnError(func())

	// Commit - no more operations will be issued, settle the
	// transaction and fire the terminal notification
	Commit()

	// Abort - discard all issued operations and fire the abort
	// notification
	Abort()

	// Err - terminal error, nil after a clean commit; only valid
	// once a terminal callback has fired
	Err() error
}

// Collection - per-collection operations within a transaction
type Collection interface {
	// Add - insert-if-absent; a duplicate key fails with
	// ConstraintError; note the argument order is value then key
	Add(value Value, key Key) error

	// Put - upsert; note the argument order is value then key
	Put(value Value, key Key) error

	// Get - issue an asynchronous single-key read; an unusable key
	// fails immediately with DataError
	Get(key Key) (Request, error)
}

// Request - an in-flight single operation
//
// exactly one of the success or error callbacks fires, after which
// Result returns the outcome; found is false when the key is absent
type Request interface {
	OnSuccess(func())
	OnError(func())

	Result() (value Value, found bool, err error)
}
