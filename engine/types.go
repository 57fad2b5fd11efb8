// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

// Mode - transaction access mode
type Mode int

// available access modes
const (
	ReadOnly Mode = iota
	ReadWrite
)

func (m Mode) String() string {
	switch m {
	case ReadOnly:
		return "read-only"
	case ReadWrite:
		return "read-write"
	default:
		return "unknown"
	}
}

// KeyTy - the type of a record key
type KeyTy int

// available key types
const (
	KeyTyInvalid KeyTy = iota
	KeyTyString
	KeyTyNumber
)

// Key - a typed record key
//
// string keys sort lexicographically, number keys numerically
type Key struct {
	Ty  KeyTy
	Str string
	Num uint64
}

// StringKey - make a string key
func StringKey(s string) Key {
	return Key{Ty: KeyTyString, Str: s}
}

// NumberKey - make a numeric key
func NumberKey(n uint64) Key {
	return Key{Ty: KeyTyNumber, Num: n}
}

// Valid - check the key can be used for lookup or storage
func (k Key) Valid() bool {
	return KeyTyString == k.Ty || KeyTyNumber == k.Ty
}

// ValueTy - the type of a stored value
type ValueTy int

// available value types
const (
	ValueTyInvalid ValueTy = iota
	ValueTyString
	ValueTyBinary
)

// Value - a typed stored value
type Value struct {
	Ty  ValueTy
	Str string
	Raw []byte
}

// StringValue - make a text value
func StringValue(s string) Value {
	return Value{Ty: ValueTyString, Str: s}
}

// BinaryValue - make a raw binary value
func BinaryValue(b []byte) Value {
	return Value{Ty: ValueTyBinary, Raw: b}
}
