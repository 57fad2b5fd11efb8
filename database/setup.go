// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import (
	"context"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/meridianchain/lightdb/engine"
	"github.com/meridianchain/lightdb/fault"
	"github.com/meridianchain/lightdb/oneshot"
)

// schema version expected by this code
const currentSchemaVersion = 1

// the collections of schema version 1
const (
	blockHeadersCollection = "block-headers"
	bestChainCollection    = "best-chain"
)

// Database - an open light-client store
type Database struct {
	sync.RWMutex

	log    *logger.L
	conn   engine.Connection
	closed bool
}

// Open - open the named store, upgrading its schema when required
//
// suspends until the engine's open request completes; the schema
// upgrade runs inside the open protocol when the stored version is
// behind currentSchemaVersion
func Open(ctx context.Context, factory engine.Factory, name string) (*Database, error) {
	if nil == factory {
		return nil, fault.ErrNoEnvironment
	}
	if !factory.Supported() {
		return nil, fault.ErrEngineNotSupported
	}

	request := factory.Open(name, currentSchemaVersion, createSchema)

	// one signal fires on either overall success or overall error of
	// the open request, not on the upgrade sub-step
	signal := oneshot.New()
	request.OnSuccess(signal.Handler())
	request.OnError(signal.Handler())

	if err := signal.Wait(ctx); nil != err {
		// the engine settles the request regardless of the abandoned
		// wait; close the orphaned connection or the store stays
		// locked for the life of the process
		request.OnSuccess(func() {
			if conn, e := request.Result(); nil == e {
				conn.Close()
			}
		})
		return nil, err
	}

	conn, err := request.Result()
	if nil != err {
		return nil, fault.OpenFailure{Err: err}
	}

	log := logger.New("database")
	log.Infof("opened store: %q at schema version: %d", name, conn.Version())

	return &Database{
		log:  log,
		conn: conn,
	}, nil
}

// createSchema - update a store to the latest schema version
//
// called from inside the open protocol; only ever creates collections,
// never deletes or mutates existing ones
func createSchema(conn engine.Connection, oldVersion uint32) {
	if oldVersion <= 0 {
		// keys are hex-encoded header digests, values are
		// hex-encoded packed headers
		conn.CreateCollection(blockHeadersCollection)

		// keys are block numbers, values are hex-encoded header
		// digests
		conn.CreateCollection(bestChainCollection)
	}

	// Note: add new versions with something like:
	// if oldVersion <= N {
	//     conn.CreateCollection("...")
	// }
}

// Close - release the connection
//
// idempotent; the connection is closed exactly once for the lifetime of
// the handle
func (d *Database) Close() error {
	d.Lock()
	defer d.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	d.log.Info("closing store")
	return d.conn.Close()
}

// Collections - the collection names present in the store
func (d *Database) Collections() []string {
	return d.conn.Collections()
}

// Version - the schema version persisted in the store
func (d *Database) Version() uint32 {
	return d.conn.Version()
}
