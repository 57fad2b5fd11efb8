// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package engine - contract for the asynchronous transactional key-value engine
//
// The engine owns named collections of key-value records and applies
// operations in atomic, isolated transactions scoped to an explicit list
// of collections and an access mode.  All completion is reported through
// callbacks fired from the engine's own notifier goroutine; callers
// bridge these to awaitable signals.
//
// Notes:
//  1. collections are created only through the upgrade callback of an
//     open request, never at run time
//  2. keys are typed: string or non-negative integer
//  3. values are typed: string or raw binary
//  4. out-of-scope collection access is a programming error and panics
package engine
