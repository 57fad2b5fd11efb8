// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridianchain/lightdb/blockdigest"
	"github.com/meridianchain/lightdb/blockrecord"
	"github.com/meridianchain/lightdb/fault"
)

func testHeader(number uint64) *blockrecord.Header {
	return &blockrecord.Header{
		Version:       blockrecord.Version,
		Number:        number,
		PreviousBlock: blockdigest.NewDigest([]byte("previous")),
		StateRoot:     blockdigest.NewDigest([]byte("state")),
		Timestamp:     0x5e0be100,
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	header := testHeader(42)

	packed := header.Pack()
	assert.Equal(t, blockrecord.TotalHeaderSize, len(packed), "packed size")

	unpacked, err := packed.Unpack()
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, header, unpacked, "unpack mismatch")
}

func TestDecode(t *testing.T) {
	header := testHeader(7)
	packed := header.Pack()

	decoded, err := blockrecord.Decode(packed[:])
	assert.Nil(t, err, "decode error")
	assert.Equal(t, uint64(7), decoded.Number, "number")
}

func TestDecodeRejectsWrongSize(t *testing.T) {
	_, err := blockrecord.Decode(make([]byte, blockrecord.TotalHeaderSize-1))
	assert.Equal(t, fault.ErrInvalidHeaderSize, err, "short buffer")

	_, err = blockrecord.Decode(make([]byte, blockrecord.TotalHeaderSize+1))
	assert.Equal(t, fault.ErrInvalidHeaderSize, err, "long buffer")
}

func TestDecodeRejectsBadVersion(t *testing.T) {
	header := testHeader(1)
	header.Version = 0
	packed := header.Pack()

	_, err := blockrecord.Decode(packed[:])
	assert.Equal(t, fault.ErrInvalidHeader, err, "zero version")
}

func TestDigestChangesWithContent(t *testing.T) {
	one := testHeader(1).Pack()
	two := testHeader(2).Pack()

	assert.NotEqual(t, one.Digest(), two.Digest(), "distinct headers share a digest")
	assert.Equal(t, one.Digest(), one.Digest(), "digest not deterministic")
}
