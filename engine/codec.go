// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"encoding/binary"
	"fmt"
)

// canonical binary encoding of typed keys and values, shared by the
// engine backends so that stores written by one backend read as the
// same types everywhere
//
// layout: one type tag byte then the payload
//   's' ++ bytes of the string
//   'n' ++ big endian uint64 (numbers sort naturally)
//   'b' ++ raw bytes

const (
	tagString = 's'
	tagNumber = 'n'
	tagBinary = 'b'
)

// Encode - canonical binary form of the key
//
// an invalid key fails with DataError
func (k Key) Encode() ([]byte, error) {
	switch k.Ty {
	case KeyTyString:
		encoded := make([]byte, 1, len(k.Str)+1)
		encoded[0] = tagString
		return append(encoded, k.Str...), nil

	case KeyTyNumber:
		encoded := make([]byte, 9)
		encoded[0] = tagNumber
		binary.BigEndian.PutUint64(encoded[1:], k.Num)
		return encoded, nil

	default:
		return nil, NewError(DataError,
			fmt.Sprintf("key cannot be used for lookup: %v", k))
	}
}

// Encode - canonical binary form of the value
func (v Value) Encode() ([]byte, error) {
	switch v.Ty {
	case ValueTyString:
		encoded := make([]byte, 1, len(v.Str)+1)
		encoded[0] = tagString
		return append(encoded, v.Str...), nil

	case ValueTyBinary:
		encoded := make([]byte, 1, len(v.Raw)+1)
		encoded[0] = tagBinary
		return append(encoded, v.Raw...), nil

	default:
		return nil, NewError(DataError,
			fmt.Sprintf("value cannot be stored: %v", v))
	}
}

// DecodeValue - recover a typed value from its canonical form
//
// unknown tags surface as binary so the caller can flag corruption
func DecodeValue(raw []byte) Value {
	if len(raw) >= 1 && tagString == raw[0] {
		return StringValue(string(raw[1:]))
	}
	if len(raw) >= 1 && tagBinary == raw[0] {
		return BinaryValue(raw[1:])
	}
	return BinaryValue(raw)
}
