// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/binary"

	"github.com/meridianchain/lightdb/blockdigest"
	"github.com/meridianchain/lightdb/fault"
)

// use fix size array to simplify validation
type PackedHeader [TotalHeaderSize]byte

// currently supported header version
const (
	Version        = 1
	MinimumVersion = 1
)

// byte sizes for various fields
const (
	VersionSize       = 2                  // header version number
	NumberSize        = 8                  // this block's number
	PreviousBlockSize = blockdigest.Length // 256-bit digest of the previous block header
	StateRootSize     = blockdigest.Length // 256-bit state trie root
	TimestampSize     = 8                  // seconds since 1970-01-01T00:00 UTC
)

// offsets of the fields
const (
	versionOffset       = 0
	numberOffset        = versionOffset + VersionSize
	previousBlockOffset = numberOffset + NumberSize
	stateRootOffset     = previousBlockOffset + PreviousBlockSize
	timestampOffset     = stateRootOffset + StateRootSize

	// to set size of header array
	TotalHeaderSize = timestampOffset + TimestampSize // total bytes in the header
)

// the unpacked header structure
type Header struct {
	Version       uint16             `json:"version"`
	Number        uint64             `json:"number,string"`
	PreviousBlock blockdigest.Digest `json:"previousBlock"`
	StateRoot     blockdigest.Digest `json:"stateRoot"`
	Timestamp     uint64             `json:"timestamp,string"`
}

// Decode - unpack a header from a byte slice
//
// the slice must be exactly one packed header
func Decode(buffer []byte) (*Header, error) {
	if TotalHeaderSize != len(buffer) {
		return nil, fault.ErrInvalidHeaderSize
	}
	packedHeader := PackedHeader{}
	copy(packedHeader[:], buffer)
	return packedHeader.Unpack()
}

// Unpack - turn a byte array into a header
func (record PackedHeader) Unpack() (*Header, error) {

	header := &Header{}

	header.Version = binary.LittleEndian.Uint16(record[versionOffset:])
	if header.Version < MinimumVersion {
		return nil, fault.ErrInvalidHeader
	}

	header.Number = binary.LittleEndian.Uint64(record[numberOffset:])

	err := blockdigest.DigestFromBytes(&header.PreviousBlock, record[previousBlockOffset:stateRootOffset])
	if nil != err {
		return nil, err
	}

	err = blockdigest.DigestFromBytes(&header.StateRoot, record[stateRootOffset:timestampOffset])
	if nil != err {
		return nil, err
	}

	header.Timestamp = binary.LittleEndian.Uint64(record[timestampOffset:])

	return header, nil
}

// Pack - turn a header into a byte array
func (header *Header) Pack() PackedHeader {
	record := PackedHeader{}

	binary.LittleEndian.PutUint16(record[versionOffset:], header.Version)
	binary.LittleEndian.PutUint64(record[numberOffset:], header.Number)
	copy(record[previousBlockOffset:], header.PreviousBlock[:])
	copy(record[stateRootOffset:], header.StateRoot[:])
	binary.LittleEndian.PutUint64(record[timestampOffset:], header.Timestamp)

	return record
}

// Digest - the identity digest of a packed header
func (record PackedHeader) Digest() blockdigest.Digest {
	return blockdigest.NewDigest(record[:])
}
