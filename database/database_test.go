// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database_test

import (
	"context"
	"encoding/hex"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/meridianchain/lightdb/blockdigest"
	"github.com/meridianchain/lightdb/blockrecord"
	"github.com/meridianchain/lightdb/database"
	"github.com/meridianchain/lightdb/engine"
	"github.com/meridianchain/lightdb/fault"
	"github.com/meridianchain/lightdb/oneshot"
	"github.com/meridianchain/lightdb/storage"
)

const (
	testingDirName  = "testing"
	databaseDirName = "testing/db"
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

func openDatabase(t *testing.T, name string) *database.Database {
	db, err := database.Open(testContext(t), storage.NewFactory(databaseDirName), name)
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// a valid packed header with a distinguishing block number and state
// root byte
func packHeader(number uint64, tag byte) []byte {
	header := blockrecord.Header{
		Version:       blockrecord.Version,
		Number:        number,
		PreviousBlock: blockdigest.Digest{tag},
		StateRoot:     blockdigest.Digest{tag, tag},
		Timestamp:     1560000000,
	}
	packed := header.Pack()
	return packed[:]
}

func TestOpenCreatesSchema(t *testing.T) {
	db := openDatabase(t, "schema")

	assert.Equal(t, uint32(1), db.Version(), "schema version")
	assert.Equal(t, []string{"best-chain", "block-headers"}, db.Collections(), "collections")
}

func TestReopenKeepsSchema(t *testing.T) {
	db := openDatabase(t, "reopen")
	assert.Nil(t, db.Close(), "close error")

	db = openDatabase(t, "reopen")
	assert.Equal(t, uint32(1), db.Version(), "schema version after reopen")
	assert.Equal(t, []string{"best-chain", "block-headers"}, db.Collections(), "collections after reopen")
}

func TestNilFactory(t *testing.T) {
	_, err := database.Open(testContext(t), nil, "none")
	assert.Equal(t, fault.ErrNoEnvironment, err, "expected no environment error")
}

func TestInsertAndReadBack(t *testing.T) {
	db := openDatabase(t, "chain-db")
	ctx := testContext(t)

	packed := packHeader(42, 0x11)
	assert.Nil(t, db.InsertHeader(ctx, packed), "insert error")

	hash := blockdigest.NewDigest(packed).String()

	stored, found, err := db.Header(ctx, hash)
	assert.Nil(t, err, "header error")
	assert.True(t, found, "header missing")
	assert.Equal(t, hex.EncodeToString(packed), stored, "stored header")

	best, found, err := db.BestHash(ctx, 42)
	assert.Nil(t, err, "best hash error")
	assert.True(t, found, "best entry missing")
	assert.Equal(t, hash, best, "best hash")
}

func TestInsertDuplicate(t *testing.T) {
	db := openDatabase(t, "duplicate")
	ctx := testContext(t)

	packed := packHeader(7, 0x22)
	assert.Nil(t, db.InsertHeader(ctx, packed), "first insert error")

	// move the best-chain entry for number 7 elsewhere, then re-insert
	// the first header; the duplicate must not touch the index
	other := packHeader(7, 0x33)
	assert.Nil(t, db.InsertHeader(ctx, other), "second insert error")

	assert.Nil(t, db.InsertHeader(ctx, packed), "duplicate insert error")

	best, found, err := db.BestHash(ctx, 7)
	assert.Nil(t, err, "best hash error")
	assert.True(t, found, "best entry missing")
	assert.Equal(t, blockdigest.NewDigest(other).String(), best, "duplicate insert moved the best-chain entry")

	stored, found, err := db.Header(ctx, blockdigest.NewDigest(packed).String())
	assert.Nil(t, err, "header error")
	assert.True(t, found, "first header missing")
	assert.Equal(t, hex.EncodeToString(packed), stored, "first header value")
}

func TestBestChainOverwrite(t *testing.T) {
	db := openDatabase(t, "overwrite")
	ctx := testContext(t)

	first := packHeader(100, 0x44)
	second := packHeader(100, 0x55)

	assert.Nil(t, db.InsertHeader(ctx, first), "first insert error")
	assert.Nil(t, db.InsertHeader(ctx, second), "second insert error")

	best, found, err := db.BestHash(ctx, 100)
	assert.Nil(t, err, "best hash error")
	assert.True(t, found, "best entry missing")
	assert.Equal(t, blockdigest.NewDigest(second).String(), best, "latest insert must win")

	// both headers stay retrievable
	_, found, err = db.Header(ctx, blockdigest.NewDigest(first).String())
	assert.Nil(t, err, "header error")
	assert.True(t, found, "displaced header missing")
}

func TestInsertInvalidHeader(t *testing.T) {
	db := openDatabase(t, "invalid")
	ctx := testContext(t)

	err := db.InsertHeader(ctx, []byte{0x01, 0x02, 0x03})
	assert.Equal(t, fault.ErrInvalidHeaderSize, err, "expected invalid size error")

	bad := packHeader(1, 0x66)
	bad[0] = 0 // version zero is below the minimum
	bad[1] = 0
	err = db.InsertHeader(ctx, bad)
	assert.Equal(t, fault.ErrInvalidHeader, err, "expected invalid header error")
}

func TestGetAbsent(t *testing.T) {
	db := openDatabase(t, "absent")
	ctx := testContext(t)

	_, found, err := db.Header(ctx, "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff")
	assert.Nil(t, err, "absent header must not error")
	assert.False(t, found, "absent header reported present")

	_, found, err = db.BestHash(ctx, 999999)
	assert.Nil(t, err, "absent number must not error")
	assert.False(t, found, "absent number reported present")
}

func TestGetCorruptedValue(t *testing.T) {
	db := openDatabase(t, "corrupted")
	ctx := testContext(t)
	assert.Nil(t, db.Close(), "close error")

	// plant a non-text record underneath the store
	conn := rawConnection(t, "corrupted")
	trx := conn.Transaction([]string{"block-headers"}, engine.ReadWrite)
	assert.Nil(t, trx.Collection("block-headers").Put(
		engine.BinaryValue([]byte{0xde, 0xad}),
		engine.StringKey("planted"),
	), "raw put error")

	signal := oneshot.New()
	trx.OnComplete(signal.Handler())
	trx.OnAbort(signal.Handler())
	trx.OnError(signal.Handler())
	trx.Commit()
	assert.Nil(t, signal.Wait(ctx), "raw commit wait error")
	assert.Nil(t, trx.Err(), "raw commit error")
	assert.Nil(t, conn.Close(), "raw close error")

	db = openDatabase(t, "corrupted")
	_, _, err := db.Header(ctx, "planted")
	assert.Equal(t, fault.ErrUnexpectedValueType, err, "expected corruption error")
	assert.True(t, fault.IsErrCorrupted(err), "corruption class")
}

// an engine-level connection to the same store files
//
// the store under test must be closed while this connection is live
func rawConnection(t *testing.T, name string) engine.Connection {
	request := storage.NewFactory(databaseDirName).Open(name, 1, nil)
	signal := oneshot.New()
	request.OnSuccess(signal.Handler())
	request.OnError(signal.Handler())
	if err := signal.Wait(testContext(t)); nil != err {
		t.Fatalf("raw open wait error: %s", err)
	}
	conn, err := request.Result()
	if nil != err {
		t.Fatalf("raw open error: %s", err)
	}
	return conn
}

func TestAbandonedOpenReleasesStore(t *testing.T) {
	db := openDatabase(t, "abandoned")
	assert.Nil(t, db.Close(), "close error")

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := database.Open(cancelled, storage.NewFactory(databaseDirName), "abandoned")
	assert.Equal(t, context.Canceled, err, "expected cancellation")

	// the engine's open still completes in the background; its
	// connection must be released so the store can be reopened
	deadline := time.Now().Add(5 * time.Second)
	for {
		db, err = database.Open(testContext(t), storage.NewFactory(databaseDirName), "abandoned")
		if nil == err {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("reopen error: %s", err)
		}
		time.Sleep(10 * time.Millisecond)
	}
	defer db.Close()
	assert.Equal(t, uint32(1), db.Version(), "version after reopen")
}

func TestCloseIdempotent(t *testing.T) {
	db := openDatabase(t, "close")

	assert.Nil(t, db.Close(), "first close")
	assert.Nil(t, db.Close(), "second close")

	err := db.InsertHeader(testContext(t), packHeader(1, 0x77))
	assert.Equal(t, fault.ErrDatabaseClosed, err, "insert after close")

	_, _, err = db.Header(testContext(t), "00")
	assert.Equal(t, fault.ErrDatabaseClosed, err, "read after close")
}
