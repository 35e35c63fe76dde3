// Copyright 2019 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pgunzip decompresses gzip data. It wraps internal/gzip (the
// container parser bound to internal/deflate's DEFLATE decoder) with a
// public API, an io.Reader adapter, and a concurrent front end for
// decompressing many independent files at once.
package pgunzip

import (
	"github.com/cosnicolaou/pgunzip/internal/gzip"
)

// Header is the metadata recorded in a gzip member: modification time,
// originating OS, and the optional name/comment/extra fields.
type Header = gzip.Header

// Decompress decompresses a buffer holding one or more concatenated gzip
// members (RFC 1952 §2.2) and returns the concatenation of their
// payloads along with the first member's Header.
func Decompress(compressed []byte) ([]byte, Header, error) {
	return gzip.DecompressStream(compressed)
}

// Members decompresses each gzip member in compressed separately,
// returning one Header and one payload per member. Use this instead of
// Decompress when a concatenated stream's members should not be merged
// into a single buffer.
func Members(compressed []byte) ([]Header, [][]byte, error) {
	return gzip.Members(compressed)
}
