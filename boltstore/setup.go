// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// bbolt implementation of the engine contract
//
// one bbolt file per store name; collections map one to one onto
// buckets, the schema version lives in a reserved meta bucket; all
// notifications are delivered from one notifier goroutine per
// connection, as in the LevelDB backend
package boltstore

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/bitmark-inc/logger"

	"github.com/meridianchain/lightdb/engine"
)

// meta bucket layout
var (
	metaBucket = []byte{0x00, 'm', 'e', 't', 'a'}
	versionKey = []byte("VERSION")
)

const databaseFileSuffix = ".bolt"

// buffered so that issuing a settlement never blocks the caller
const notifierBacklog = 16

// NewFactory - an engine factory storing each named store as a bbolt
// file under dir
func NewFactory(dir string) engine.Factory {
	return &boltFactory{
		dir: dir,
		log: logger.New("boltstore"),
	}
}

type boltFactory struct {
	dir string
	log *logger.L
}

// Supported - the capability is available when the base directory is usable
func (f *boltFactory) Supported() bool {
	if err := os.MkdirAll(f.dir, 0700); nil != err {
		return false
	}
	info, err := os.Stat(f.dir)
	return nil == err && info.IsDir()
}

// Open - issue an asynchronous open request
func (f *boltFactory) Open(name string, version uint32, upgrade engine.UpgradeFunc) engine.OpenRequest {
	r := engine.NewPendingOpen()
	go func() {
		conn, err := f.open(name, version, upgrade)
		r.Complete(conn, err)
	}()
	return r
}

func (f *boltFactory) open(name string, version uint32, upgrade engine.UpgradeFunc) (engine.Connection, error) {
	path := filepath.Join(f.dir, name+databaseFileSuffix)

	opts := &bolt.Options{Timeout: 10 * time.Second}
	db, err := bolt.Open(path, 0600, opts)
	if nil != err {
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	storedVersion, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if storedVersion > version {
		f.log.Criticalf("database version: %d > requested version: %d", storedVersion, version)
		return nil, engine.NewError(engine.VersionError,
			fmt.Sprintf("stored version: %d > requested version: %d", storedVersion, version))
	}

	conn := &connection{
		log:      f.log,
		db:       db,
		version:  storedVersion,
		notifier: make(chan func(), notifierBacklog),
		done:     make(chan struct{}),
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

func getVersion(db *bolt.DB) (uint32, error) {
	version := uint32(0)
	err := db.View(func(tx *bolt.Tx) error {
		meta := tx.Bucket(metaBucket)
		if nil == meta {
			return nil
		}
		versionValue := meta.Get(versionKey)
		if nil == versionValue {
			return nil
		}
		if 4 != len(versionValue) {
			return fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
		}
		version = binary.BigEndian.Uint32(versionValue)
		return nil
	})
	return version, err
}

func putVersion(db *bolt.DB, version uint32) error {
	return db.Update(func(tx *bolt.Tx) error {
		meta, err := tx.CreateBucketIfNotExists(metaBucket)
		if nil != err {
			return err
		}
		currentVersion := make([]byte, 4)
		binary.BigEndian.PutUint32(currentVersion, version)
		return meta.Put(versionKey, currentVersion)
	})
}

// connection - one open bbolt store
type connection struct {
	sync.Mutex

	log     *logger.L
	db      *bolt.DB
	version uint32

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

// CreateCollection - create a named collection
//
// only legal from inside an upgrade callback
func (c *connection) CreateCollection(name string) {
	c.Lock()
	defer c.Unlock()

	if !c.upgrading {
		logger.Panicf("CreateCollection: %q outside of an upgrade", name)
	}
	if "" == name || string(metaBucket) == name {
		logger.Panicf("CreateCollection: invalid name: %q", name)
	}

	err := c.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucket([]byte(name))
		return err
	})
	if bolt.ErrBucketExists == err {
		logger.Panicf("CreateCollection: %q already exists", name)
	}
	if nil != err {
		logger.Panicf("CreateCollection: %q write error: %s", name, err)
	}
}

// HasCollection - whether a named collection exists
func (c *connection) HasCollection(name string) bool {
	found := false
	_ = c.db.View(func(tx *bolt.Tx) error {
		found = nil != tx.Bucket([]byte(name))
		return nil
	})
	return found && string(metaBucket) != name
}

// Collections - sorted collection names
func (c *connection) Collections() []string {
	names := []string{}
	_ = c.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			if string(metaBucket) != string(name) {
				names = append(names, string(name))
			}
			return nil
		})
	})
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

	scope := make(map[string]bool, len(collections))
	for _, name := range collections {
		if !c.HasCollection(name) {
			logger.Panicf("Transaction: unknown collection: %q", name)
		}
		scope[name] = true
	}

	return &transaction{
		conn:    c,
		mode:    mode,
		scope:   scope,
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
