// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import (
	"context"
	"encoding/hex"

	"github.com/meridianchain/lightdb/blockdigest"
	"github.com/meridianchain/lightdb/blockrecord"
	"github.com/meridianchain/lightdb/engine"
	"github.com/meridianchain/lightdb/fault"
)

// InsertHeader - insert a packed header and update the best-chain index
//
// both writes are applied atomically; re-inserting an already stored
// header is a silent success with no side effects at all, the
// best-chain entry is left untouched
func (d *Database) InsertHeader(ctx context.Context, packedHeader []byte) error {
	d.RLock()
	defer d.RUnlock()

	if d.closed {
		return fault.ErrDatabaseClosed
	}

	header, err := blockrecord.Decode(packedHeader)
	if nil != err {
		return err
	}

	key := blockdigest.NewDigest(packedHeader).String()
	value := hex.EncodeToString(packedHeader)

	trx := d.conn.Transaction(
		[]string{blockHeadersCollection, bestChainCollection},
		engine.ReadWrite,
	)

	// note the argument order is indeed value then key
	err = trx.Collection(blockHeadersCollection).Add(
		engine.StringValue(value),
		engine.StringKey(key),
	)
	if nil != err {
		if engine.IsConstraintError(err) {
			// entry already exists in the database; nothing was
			// committed, so the best-chain update is skipped too
			return nil
		}
		return fault.TransactionError{Err: err}
	}

	// TODO: don't insert if not best; this needs brainstorming because of reorgs
	err = trx.Collection(bestChainCollection).Put(
		engine.StringValue(key),
		engine.NumberKey(header.Number),
	)
	if nil != err {
		return fault.TransactionError{Err: err}
	}

	err = waitTransaction(ctx, trx)
	switch err.(type) {
	case nil:
		return nil
	case *engine.Error:
		return fault.TransactionError{Err: err}
	default:
		return err
	}
}

// Header - the stored hex-encoded header for a hex digest, if present
func (d *Database) Header(ctx context.Context, hash string) (string, bool, error) {
	return d.get(ctx, blockHeadersCollection, engine.StringKey(hash))
}

// BestHash - the hex digest currently recorded for a block number, if present
func (d *Database) BestHash(ctx context.Context, number uint64) (string, bool, error) {
	return d.get(ctx, bestChainCollection, engine.NumberKey(number))
}

// get - read one value at the given key
//
// an unknown collection name is a programming error and panics; an
// unusable key and an absent key both read as not found; a stored value
// that is not text signals corruption, not absence
func (d *Database) get(ctx context.Context, collection string, key engine.Key) (string, bool, error) {
	d.RLock()
	defer d.RUnlock()

	if d.closed {
		return "", false, fault.ErrDatabaseClosed
	}

	trx := d.conn.Transaction([]string{collection}, engine.ReadOnly)

	request, err := trx.Collection(collection).Get(key)
	if nil != err {
		if engine.IsDataError(err) {
			return "", false, nil
		}
		return "", false, fault.TransactionError{Err: err}
	}

	value, found, err := waitRequest(ctx, request)
	if nil != err {
		if _, ok := err.(*engine.Error); ok {
			return "", false, fault.TransactionError{Err: err}
		}
		return "", false, err
	}
	if !found {
		return "", false, nil
	}

	if engine.ValueTyString != value.Ty {
		return "", false, fault.ErrUnexpectedValueType
	}
	return value.Str, true, nil
}
