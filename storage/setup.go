// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"

	"github.com/meridianchain/lightdb/engine"
)

// for database version
var versionKey = []byte{metaPrefix, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

// meta record layout
const (
	metaPrefix         = 0x00
	manifestTag        = 'C'
	firstTablePrefix   = 0x01
	databaseFileSuffix = ".leveldb"
)

// NewFactory - an engine factory storing each named store as a LevelDB
// database under dir
func NewFactory(dir string) engine.Factory {
	return &ldbFactory{
		dir: dir,
		log: logger.New("storage"),
	}
}

type ldbFactory struct {
	dir string
	log *logger.L
}

// Supported - the capability is available when the base directory is usable
func (f *ldbFactory) Supported() bool {
	if err := os.MkdirAll(f.dir, 0700); nil != err {
		return false
	}
	info, err := os.Stat(f.dir)
	return nil == err && info.IsDir()
}

// Open - issue an asynchronous open request
//
// the request settles on its own goroutine; the upgrade callback runs
// synchronously inside the open protocol before the request completes
func (f *ldbFactory) Open(name string, version uint32, upgrade engine.UpgradeFunc) engine.OpenRequest {
	r := engine.NewPendingOpen()
	go func() {
		conn, err := f.open(name, version, upgrade)
		r.Complete(conn, err)
	}()
	return r
}

func (f *ldbFactory) open(name string, version uint32, upgrade engine.UpgradeFunc) (engine.Connection, error) {
	database := filepath.Join(f.dir, name+databaseFileSuffix)

	db, storedVersion, err := getDB(database)
	if nil != err {
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	// ensure no database downgrade
	if storedVersion > version {
		f.log.Criticalf("database version: %d > requested version: %d", storedVersion, version)
		return nil, engine.NewError(engine.VersionError,
			fmt.Sprintf("stored version: %d > requested version: %d", storedVersion, version))
	}

	conn := &connection{
		log:      f.log,
		db:       db,
		name:     name,
		version:  storedVersion,
		notifier: make(chan func(), notifierBacklog),
		done:     make(chan struct{}),
	}
	if err := conn.loadManifest(); nil != err {
		return nil, err
	}

	if storedVersion < version {
		conn.upgrading = true
		if nil != upgrade {
			upgrade(conn, storedVersion)
		}
		conn.upgrading = false

		if err := putVersion(db, version); nil != err {
			return nil, err
		}
		conn.version = version
	}

	go conn.notifierLoop()

	ok = true // prevent db close
	return conn, nil
}

// buffered so that issuing a settlement never blocks the caller
const notifierBacklog = 16

// connection - one open LevelDB store
//
// exclusive-use: the notifier goroutine delivers all completion
// callbacks, callers must not share a connection across independent
// owners without external synchronisation
type connection struct {
	sync.Mutex

	log     *logger.L
	db      *leveldb.DB
	name    string
	version uint32

	collections map[string]byte // name -> table prefix
	nextPrefix  byte

	upgrading bool
	closed    bool

	notifier chan func()
	done     chan struct{}
	pending  sync.WaitGroup
}

func (c *connection) notifierLoop() {
	for f := range c.notifier {
		f()
	}
	close(c.done)
}

// dispatch - run a callback on the notifier goroutine
//
// must not be called after Close
func (c *connection) dispatch(f func()) {
	c.pending.Add(1)
	c.notifier <- func() {
		f()
		c.pending.Done()
	}
}

// read the collection manifest from the meta records
func (c *connection) loadManifest() error {
	c.collections = map[string]byte{}
	c.nextPrefix = firstTablePrefix

	manifestRange := ldb_util.Range{
		Start: []byte{metaPrefix, manifestTag},
		Limit: []byte{metaPrefix, manifestTag + 1},
	}

	iter := c.db.NewIterator(&manifestRange, nil)
	for iter.Next() {
		key := iter.Key()
		value := iter.Value()
		if len(key) <= 2 || 1 != len(value) {
			iter.Release()
			return engine.NewError(engine.UnknownError,
				fmt.Sprintf("corrupt manifest record: %x", key))
		}
		name := string(key[2:])
		prefix := value[0]
		c.collections[name] = prefix
		if prefix >= c.nextPrefix {
			c.nextPrefix = prefix + 1
		}
	}
	iter.Release()
	return iter.Error()
}

// CreateCollection - create a named collection
//
// only legal from inside an upgrade callback
func (c *connection) CreateCollection(name string) {
	c.Lock()
	defer c.Unlock()

	if !c.upgrading {
		logger.Panicf("CreateCollection: %q outside of an upgrade", name)
	}
	if _, ok := c.collections[name]; ok {
		logger.Panicf("CreateCollection: %q already exists", name)
	}
	if metaPrefix == c.nextPrefix {
		logger.Panic("CreateCollection: table prefixes exhausted")
	}

	prefix := c.nextPrefix
	c.nextPrefix += 1

	manifestKey := append([]byte{metaPrefix, manifestTag}, name...)
	err := c.db.Put(manifestKey, []byte{prefix}, nil)
	if nil != err {
		logger.Panicf("CreateCollection: %q write error: %s", name, err)
	}
	c.collections[name] = prefix
}

// HasCollection - whether a named collection exists
func (c *connection) HasCollection(name string) bool {
	c.Lock()
	defer c.Unlock()
	_, ok := c.collections[name]
	return ok
}

// Collections - sorted collection names
func (c *connection) Collections() []string {
	c.Lock()
	defer c.Unlock()
	names := make([]string, 0, len(c.collections))
	for name := range c.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Version - the schema version persisted in the store
func (c *connection) Version() uint32 {
	return c.version
}

// Transaction - open a transaction scoped to the named collections
//
// an unknown collection name is a programming error and panics
func (c *connection) Transaction(collections []string, mode engine.Mode) engine.Transaction {
	c.Lock()
	defer c.Unlock()

	if c.closed {
		logger.Panic("Transaction: connection is closed")
	}

	scope := make(map[string]byte, len(collections))
	for _, name := range collections {
		prefix, ok := c.collections[name]
		if !ok {
			logger.Panicf("Transaction: unknown collection: %q", name)
		}
		scope[name] = prefix
	}

	return &transaction{
		conn:    c,
		mode:    mode,
		scope:   scope,
		batch:   new(leveldb.Batch),
		pending: map[string][]byte{},
	}
}

// Close - wait for in-flight settlements, then release the connection
//
// idempotent
func (c *connection) Close() error {
	c.Lock()
	if c.closed {
		c.Unlock()
		return nil
	}
	c.closed = true
	c.Unlock()

	c.pending.Wait()
	close(c.notifier)
	<-c.done

	return c.db.Close()
}

// return:
//   database handle
//   version number
func getDB(name string) (*leveldb.DB, uint32, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return db, binary.BigEndian.Uint32(versionValue), nil
}

func putVersion(db *leveldb.DB, version uint32) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, version)

	return db.Put(versionKey, currentVersion, nil)
}
