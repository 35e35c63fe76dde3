// Copyright 2019 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gzip

import (
	"bytes"
	stdgzip "compress/gzip"
	"testing"
	"time"
)

// buildMember compresses data into a single gzip member using the
// standard library's writer, configured with a Header so tests can
// verify the parser recovers the same metadata.
func buildMember(t *testing.T, data []byte, hdr *stdgzip.Header) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := stdgzip.NewWriterLevel(&buf, stdgzip.BestCompression)
	if err != nil {
		t.Fatalf("NewWriterLevel: %v", err)
	}
	if hdr != nil {
		w.Header = *hdr
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return buf.Bytes()
}

func TestDecompressMemberRoundTrip(t *testing.T) {
	want := []byte("the quick brown fox jumps over the lazy dog\n")
	compressed := buildMember(t, want, &stdgzip.Header{Name: "fox.txt", Comment: "a test file"})

	got, hdr, err := DecompressMember(compressed)
	if err != nil {
		t.Fatalf("DecompressMember: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	if hdr.Name != "fox.txt" {
		t.Fatalf("Name: got %q, want %q", hdr.Name, "fox.txt")
	}
	if hdr.Comment != "a test file" {
		t.Fatalf("Comment: got %q, want %q", hdr.Comment, "a test file")
	}
}

func TestDecompressMemberEmpty(t *testing.T) {
	compressed := buildMember(t, nil, nil)
	got, _, err := DecompressMember(compressed)
	if err != nil {
		t.Fatalf("DecompressMember: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d bytes, want 0", len(got))
	}
}

func TestDecompressMemberBadMagic(t *testing.T) {
	data := []byte{0x00, 0x00, 0x08, 0x00, 0, 0, 0, 0, 0, 0}
	if _, _, err := DecompressMember(data); err != ErrBadMagic {
		t.Fatalf("got %v, want ErrBadMagic", err)
	}
}

func TestDecompressMemberTruncated(t *testing.T) {
	compressed := buildMember(t, []byte("hello"), nil)
	if _, _, err := DecompressMember(compressed[:len(compressed)-1]); err == nil {
		t.Fatal("expected an error on a truncated member")
	}
}

func TestDecompressMemberCorruptTrailerFailsChecksum(t *testing.T) {
	compressed := buildMember(t, []byte("hello, world"), nil)
	// The trailer is the last 8 bytes (CRC-32 then ISIZE); flip a byte
	// inside the CRC-32 field specifically, since flipping the ISIZE
	// field instead would surface as ErrSizeMismatch.
	compressed[len(compressed)-8] ^= 0xFF
	if _, _, err := DecompressMember(compressed); err != ErrChecksumMismatch {
		t.Fatalf("got %v, want ErrChecksumMismatch", err)
	}
}

func TestDecompressMemberModTime(t *testing.T) {
	mt := time.Date(2019, time.March, 1, 0, 0, 0, 0, time.UTC)
	compressed := buildMember(t, []byte("x"), &stdgzip.Header{ModTime: mt})
	_, hdr, err := DecompressMember(compressed)
	if err != nil {
		t.Fatalf("DecompressMember: %v", err)
	}
	if !hdr.ModTime.Equal(mt) {
		t.Fatalf("ModTime: got %v, want %v", hdr.ModTime, mt)
	}
}
