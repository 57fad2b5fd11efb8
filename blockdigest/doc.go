// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockdigest - header identity digest
//
// a block header is identified by the BLAKE2b-256 digest of its packed
// binary form; the hex rendering of this digest is the key under which
// the header is stored
package blockdigest
