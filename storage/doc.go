// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk data store
//
//
// LevelDB implementation of the engine contract
//
// This maintains one LevelDB database per store name, split into a
// series of collections.  Each collection is assigned a single byte
// prefix when it is created, recorded in an on-disk manifest so that
// assignments survive reopening.
//
//
// Notes:
// 1. each collection has a single byte prefix (to spread the keys in LevelDB)
// 2. ++             = concatenation of byte data
// 3. prefix 0x00    = reserved for meta records
// 4. string key     = 's' ++ bytes of the string
// 5. number key     = 'n' ++ big endian uint64 (8 bytes)
// 6. string value   = 's' ++ bytes of the string
// 7. binary value   = 'b' ++ raw bytes
//
// Meta records:
//
//   0x00 ++ "VERSION"          - schema version
//                                data: big endian uint32 (4 bytes)
//   0x00 ++ 'C' ++ name        - collection manifest entry
//                                data: prefix (1 byte)
//
// Collections:
//
//   prefix ++ encoded key      - one record per key
//                                data: encoded value
//
// All terminal notifications (transaction settlement, single reads) are
// delivered from one notifier goroutine per connection, which stands in
// for the host event loop and serialises callback delivery.
package storage
