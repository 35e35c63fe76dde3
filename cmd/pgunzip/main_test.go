// Copyright 2020 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main_test

import (
	"bytes"
	"compress/gzip"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// writeGzipFile writes data to filename+".gz" using the standard
// library's gzip writer, as the independent reference encoder for the
// CLI's round-trip fixtures.
func writeGzipFile(t *testing.T, filename string, data []byte) {
	t.Helper()
	f, err := os.Create(filename + ".gz")
	if err != nil {
		t.Fatal(err)
	}
	w := gzip.NewWriter(f)
	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

func pgunzipCmd(filename string) ([]byte, string, error) {
	ifile := filename + ".gz"
	ofile := filename + ".test"
	cmd := exec.Command("go", "run", ".", "unzip",
		"--output="+ofile, "--progress=false", ifile,
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, string(output), err
	}
	data, err := os.ReadFile(ofile)
	return data, string(output), err
}

func TestCmd(t *testing.T) {
	tmpdir := t.TempDir()
	for _, tc := range []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"hello", []byte("hello, pgunzip\n")},
		{"900KB", bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 20000)},
	} {
		filename := filepath.Join(tmpdir, tc.name)
		writeGzipFile(t, filename, tc.data)
		data, out, err := pgunzipCmd(filename)
		if err != nil {
			t.Fatalf("%v: %v: %v", tc.name, out, err)
		}
		if got, want := data, tc.data; !bytes.Equal(got, want) {
			t.Errorf("%v: got %d bytes, want %d bytes", tc.name, len(got), len(want))
		}
	}
}

func TestErrors(t *testing.T) {
	tmpdir := t.TempDir()

	empty := filepath.Join(tmpdir, "empty")
	if err := os.WriteFile(empty+".gz", nil, 0600); err != nil {
		t.Fatal(err)
	}
	_, out, err := pgunzipCmd(empty)
	if err == nil || !strings.Contains(out, "truncated input") {
		t.Fatalf("missing or wrong error message: %v: %v", out, err)
	}

	hello := filepath.Join(tmpdir, "hello")
	writeGzipFile(t, hello, []byte("hello world\n"))

	data, err := os.ReadFile(hello + ".gz")
	if err != nil {
		t.Fatal(err)
	}
	// Flip a byte inside the trailer's CRC-32 field: decoding still
	// succeeds, but the checksum comparison against the corrupted
	// trailer must fail.
	data[len(data)-8] ^= 0xFF

	corrupt := hello + "-corrupt"
	if err := os.WriteFile(corrupt+".gz", data, 0600); err != nil {
		t.Fatal(err)
	}

	_, out, err = pgunzipCmd(corrupt)
	if err == nil || !strings.Contains(out, "checksum mismatch") {
		t.Fatalf("missing or wrong error message: %v: %v", out, err)
	}
}
