// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package database - persistent storage for light-client data
//
// Stores block headers and a best-chain index in two collections of an
// asynchronous transactional key-value engine, at schema version 1:
//
//   block-headers:
//     key:   lowercase hex of the 32 byte header digest
//     value: lowercase hex of the packed binary header
//
//   best-chain:
//     key:   block number
//     value: lowercase hex of the 32 byte header digest
//
// The best-chain index receives an unconditional overwrite per inserted
// header and is therefore not reorganisation-aware: after a chain
// reorganisation it may keep hashes from an abandoned fork until the
// replacing headers are inserted.
//
// A Database owns one connection and is exclusive-use: concurrent use
// from independent owners needs external synchronisation.
package database
