// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdigest

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/meridianchain/lightdb/fault"
)

// number of bytes in the digest
const Length = 32

// type for a digest
//
// stored and displayed as big endian lowercase hex
type Digest [Length]byte

// NewDigest - create a digest from a byte slice
//
// BLAKE2b-256 of the packed header bytes
func NewDigest(record []byte) Digest {
	return Digest(blake2b.Sum256(record))
}

// String - convert a binary digest to a hex string for use by the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// GoString - convert a binary digest to a hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<BLAKE2b-256:" + hex.EncodeToString(digest[:]) + ">"
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(digest)))
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if hex.EncodedLen(Length) != len(s) {
		return fault.ErrNotLink
	}
	buffer := make([]byte, hex.DecodedLen(len(s)))
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	copy(digest[:], buffer)
	return nil
}

// DigestFromBytes - convert and validate a binary byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrNotLink
	}
	copy(digest[:], buffer)
	return nil
}
