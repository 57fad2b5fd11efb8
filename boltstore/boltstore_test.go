// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package boltstore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/meridianchain/lightdb/boltstore"
	"github.com/meridianchain/lightdb/engine"
	"github.com/meridianchain/lightdb/oneshot"
)

const (
	testingDirName  = "testing"
	databaseDirName = "testing/db"

	headersCollection = "block-headers"
	bestCollection    = "best-chain"
)

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func TestMain(m *testing.M) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()
	removeFiles()
	os.Exit(rc)
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func createTestSchema(conn engine.Connection, oldVersion uint32) {
	if oldVersion <= 0 {
		conn.CreateCollection(headersCollection)
		conn.CreateCollection(bestCollection)
	}
}

func openStore(t *testing.T, name string, version uint32, upgrade engine.UpgradeFunc) (engine.Connection, error) {
	factory := boltstore.NewFactory(databaseDirName)
	if !factory.Supported() {
		t.Fatal("factory is not supported")
	}

	request := factory.Open(name, version, upgrade)

	signal := oneshot.New()
	request.OnSuccess(signal.Handler())
	request.OnError(signal.Handler())
	if err := signal.Wait(testContext(t)); nil != err {
		t.Fatalf("open wait error: %s", err)
	}

	return request.Result()
}

func commit(t *testing.T, trx engine.Transaction) error {
	signal := oneshot.New()
	trx.OnComplete(signal.Handler())
	trx.OnAbort(signal.Handler())
	trx.OnError(signal.Handler())
	trx.Commit()
	if err := signal.Wait(testContext(t)); nil != err {
		t.Fatalf("commit wait error: %s", err)
	}
	return trx.Err()
}

func read(t *testing.T, trx engine.Transaction, collection string, key engine.Key) (engine.Value, bool, error) {
	request, err := trx.Collection(collection).Get(key)
	if nil != err {
		return engine.Value{}, false, err
	}
	signal := oneshot.New()
	request.OnSuccess(signal.Handler())
	request.OnError(signal.Handler())
	if err := signal.Wait(testContext(t)); nil != err {
		t.Fatalf("read wait error: %s", err)
	}
	return request.Result()
}

func TestOpenUpgradeAndReopen(t *testing.T) {
	conn, err := openStore(t, "fresh", 1, createTestSchema)
	assert.Nil(t, err, "open error")
	assert.Equal(t, uint32(1), conn.Version(), "version")
	assert.Equal(t, []string{bestCollection, headersCollection}, conn.Collections(), "collections")
	conn.Close()

	conn, err = openStore(t, "fresh", 1, func(conn engine.Connection, oldVersion uint32) {
		t.Fatal("upgrade ran on an up-to-date store")
	})
	assert.Nil(t, err, "reopen error")
	defer conn.Close()
	assert.Equal(t, []string{bestCollection, headersCollection}, conn.Collections(), "collections after reopen")
}

func TestDowngradeRejected(t *testing.T) {
	conn, err := openStore(t, "downgrade", 2, createTestSchema)
	assert.Nil(t, err, "open at version 2 error")
	conn.Close()

	_, err = openStore(t, "downgrade", 1, nil)
	assert.True(t, engine.IsVersionError(err), "expected VersionError, got: %v", err)
}

func TestWriteCommitRead(t *testing.T) {
	conn, err := openStore(t, "write-read", 1, createTestSchema)
	assert.Nil(t, err, "open error")
	defer conn.Close()

	trx := conn.Transaction([]string{headersCollection, bestCollection}, engine.ReadWrite)
	assert.Nil(t, trx.Collection(headersCollection).Add(
		engine.StringValue("header"), engine.StringKey("hash")), "add error")
	assert.Nil(t, trx.Collection(bestCollection).Put(
		engine.StringValue("hash"), engine.NumberKey(7)), "put error")
	assert.Nil(t, commit(t, trx), "commit error")

	trx = conn.Transaction([]string{headersCollection, bestCollection}, engine.ReadOnly)
	value, found, err := read(t, trx, headersCollection, engine.StringKey("hash"))
	assert.Nil(t, err, "get error")
	assert.True(t, found, "header missing")
	assert.Equal(t, "header", value.Str, "header value")

	value, found, err = read(t, trx, bestCollection, engine.NumberKey(7))
	assert.Nil(t, err, "get error")
	assert.True(t, found, "best entry missing")
	assert.Equal(t, "hash", value.Str, "best value")
}

func TestAddDuplicate(t *testing.T) {
	conn, err := openStore(t, "duplicate", 1, createTestSchema)
	assert.Nil(t, err, "open error")
	defer conn.Close()

	trx := conn.Transaction([]string{headersCollection}, engine.ReadWrite)
	assert.Nil(t, trx.Collection(headersCollection).Add(
		engine.StringValue("v"), engine.StringKey("k")), "first add")
	assert.Nil(t, commit(t, trx), "commit error")

	trx = conn.Transaction([]string{headersCollection}, engine.ReadWrite)
	err = trx.Collection(headersCollection).Add(engine.StringValue("v2"), engine.StringKey("k"))
	assert.True(t, engine.IsConstraintError(err), "expected ConstraintError, got: %v", err)
}

func TestReadOnlyRejectsWrites(t *testing.T) {
	conn, err := openStore(t, "read-only", 1, createTestSchema)
	assert.Nil(t, err, "open error")
	defer conn.Close()

	trx := conn.Transaction([]string{headersCollection}, engine.ReadOnly)
	err = trx.Collection(headersCollection).Put(engine.StringValue("v"), engine.StringKey("k"))
	ee, ok := err.(*engine.Error)
	assert.True(t, ok, "expected engine error, got: %v", err)
	assert.Equal(t, engine.ReadOnlyError, ee.Name, "error name")
}

func TestAbortDiscardsWrites(t *testing.T) {
	conn, err := openStore(t, "abort", 1, createTestSchema)
	assert.Nil(t, err, "open error")
	defer conn.Close()

	trx := conn.Transaction([]string{headersCollection}, engine.ReadWrite)
	assert.Nil(t, trx.Collection(headersCollection).Put(
		engine.StringValue("v"), engine.StringKey("k")), "put error")

	signal := oneshot.New()
	trx.OnComplete(signal.Handler())
	trx.OnAbort(signal.Handler())
	trx.OnError(signal.Handler())
	trx.Abort()
	assert.Nil(t, signal.Wait(testContext(t)), "abort wait error")
	assert.True(t, engine.IsAbortError(trx.Err()), "expected AbortError, got: %v", trx.Err())

	trx = conn.Transaction([]string{headersCollection}, engine.ReadOnly)
	_, found, err := read(t, trx, headersCollection, engine.StringKey("k"))
	assert.Nil(t, err, "get error")
	assert.False(t, found, "aborted write became durable")
}

func TestCloseIdempotent(t *testing.T) {
	conn, err := openStore(t, "close", 1, createTestSchema)
	assert.Nil(t, err, "open error")

	assert.Nil(t, conn.Close(), "first close")
	assert.Nil(t, conn.Close(), "second close")
}
