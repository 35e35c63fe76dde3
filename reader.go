// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pgunzip

import (
	"bytes"
	"io"
	"log"
)

// NewReader reads all of rd and returns an io.Reader serving the
// decompressed bytes, along with the first member's Header.
//
// NewReader decompresses eagerly rather than overlapping the read of rd
// with decompression: the DEFLATE core operates on a single complete
// in-memory buffer by design (there is no incremental/streaming entry
// point into it), so there is no decompression work left to overlap
// with the caller's reads by the time NewReader returns.
func NewReader(rd io.Reader, opts ...Option) (io.Reader, Header, error) {
	o := newBatchOpts(opts...)

	compressed, err := io.ReadAll(rd)
	if err != nil {
		return nil, Header{}, err
	}
	if o.verbose {
		log.Printf("pgunzip: read %d compressed bytes", len(compressed))
	}

	out, hdr, err := Decompress(compressed)
	if err != nil {
		return nil, Header{}, err
	}
	if o.verbose {
		log.Printf("pgunzip: decompressed to %d bytes", len(out))
	}
	return bytes.NewReader(out), hdr, nil
}
