// Copyright 2019 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gzip

import (
	"bytes"
	stdgzip "compress/gzip"
	"testing"
)

func TestParseMemberExtraField(t *testing.T) {
	var buf bytes.Buffer
	w, err := stdgzip.NewWriterLevel(&buf, stdgzip.DefaultCompression)
	if err != nil {
		t.Fatalf("NewWriterLevel: %v", err)
	}
	w.Extra = []byte{0xDE, 0xAD, 0xBE, 0xEF}
	if _, err := w.Write([]byte("payload")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	m, err := parseMember(buf.Bytes())
	if err != nil {
		t.Fatalf("parseMember: %v", err)
	}
	if !bytes.Equal(m.Extra, []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Fatalf("Extra: got %v, want %v", m.Extra, []byte{0xDE, 0xAD, 0xBE, 0xEF})
	}
}

func TestParseMemberUnsupportedMethod(t *testing.T) {
	hdr := []byte{magic1, magic2, 0x09 /* not deflate */, 0, 0, 0, 0, 0, 0, 0}
	if _, err := parseMember(hdr); err != ErrUnsupportedMethod {
		t.Fatalf("got %v, want ErrUnsupportedMethod", err)
	}
}

func TestParseMemberReservedFlagBitsRejected(t *testing.T) {
	hdr := []byte{magic1, magic2, deflate, 0x20 /* reserved bit 5 */, 0, 0, 0, 0, 0, 0}
	if _, err := parseMember(hdr); err != ErrBadFlags {
		t.Fatalf("got %v, want ErrBadFlags", err)
	}
}

func TestParseMemberTooShort(t *testing.T) {
	if _, err := parseMember([]byte{magic1, magic2, deflate}); err != ErrTruncatedInput {
		t.Fatalf("got %v, want ErrTruncatedInput", err)
	}
}

func TestBindTrailerTooShort(t *testing.T) {
	m := member{payloadStart: 2}
	if err := m.bindTrailer(make([]byte, 10), 10); err != nil {
		t.Fatalf("bindTrailer: %v", err)
	}
	if err := m.bindTrailer(make([]byte, 10), 9); err != ErrTruncatedInput {
		t.Fatalf("got %v, want ErrTruncatedInput", err)
	}
}
