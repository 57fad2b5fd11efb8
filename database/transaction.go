// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import (
	"context"

	"github.com/meridianchain/lightdb/engine"
	"github.com/meridianchain/lightdb/oneshot"
)

// waitTransaction - commit and await the terminal notification
//
// exactly one of complete, abort or error fires per transaction, so the
// same handler is registered on all three; whichever fires resolves the
// signal and the terminal error field decides the outcome
func waitTransaction(ctx context.Context, trx engine.Transaction) error {
	signal := oneshot.New()

	trx.OnComplete(signal.Handler())
	trx.OnAbort(signal.Handler())
	trx.OnError(signal.Handler())

	trx.Commit()

	if err := signal.Wait(ctx); nil != err {
		return err
	}
	return trx.Err()
}

// waitRequest - await a single operation's own completion
//
// success and error route to the same signal since exactly one fires
func waitRequest(ctx context.Context, request engine.Request) (engine.Value, bool, error) {
	signal := oneshot.New()

	request.OnSuccess(signal.Handler())
	request.OnError(signal.Handler())

	if err := signal.Wait(ctx); nil != err {
		return engine.Value{}, false, err
	}
	return request.Result()
}
