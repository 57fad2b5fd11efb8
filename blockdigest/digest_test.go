// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdigest_test

import (
	"bytes"
	"testing"

	"github.com/meridianchain/lightdb/blockdigest"
	"github.com/meridianchain/lightdb/fault"
)

func TestDigestDeterministic(t *testing.T) {
	record := []byte("test record")

	d1 := blockdigest.NewDigest(record)
	d2 := blockdigest.NewDigest(record)
	if d1 != d2 {
		t.Fatalf("digest is not deterministic: %v != %v", d1, d2)
	}

	d3 := blockdigest.NewDigest([]byte("test record 2"))
	if d1 == d3 {
		t.Fatal("distinct records produced the same digest")
	}
}

func TestDigestTextRoundTrip(t *testing.T) {
	d := blockdigest.NewDigest([]byte("round trip"))

	text, err := d.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	if 2*blockdigest.Length != len(text) {
		t.Fatalf("hex length: expected: %d  actual: %d", 2*blockdigest.Length, len(text))
	}
	if d.String() != string(text) {
		t.Fatalf("String and MarshalText disagree: %q != %q", d.String(), text)
	}

	var restored blockdigest.Digest
	err = restored.UnmarshalText(text)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if d != restored {
		t.Fatalf("round trip mismatch: %v != %v", d, restored)
	}
}

func TestDigestHexIsLowercase(t *testing.T) {
	d := blockdigest.NewDigest([]byte("case check"))
	if bytes.ContainsAny([]byte(d.String()), "ABCDEF") {
		t.Fatalf("digest hex must be lowercase: %q", d.String())
	}
}

func TestDigestFromBytes(t *testing.T) {
	var d blockdigest.Digest

	err := blockdigest.DigestFromBytes(&d, make([]byte, blockdigest.Length-1))
	if fault.ErrNotLink != err {
		t.Fatalf("short buffer: expected: %v  actual: %v", fault.ErrNotLink, err)
	}

	buffer := make([]byte, blockdigest.Length)
	for i := range buffer {
		buffer[i] = byte(i)
	}
	err = blockdigest.DigestFromBytes(&d, buffer)
	if nil != err {
		t.Fatalf("from bytes error: %s", err)
	}
	if !bytes.Equal(buffer, d[:]) {
		t.Fatal("from bytes mismatch")
	}
}
