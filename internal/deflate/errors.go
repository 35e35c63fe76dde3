// Copyright 2019 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package deflate implements a decoder for the DEFLATE bitstream format
// (RFC 1951): a bit-level reader, canonical Huffman tree construction,
// block dispatch and a sliding-window back-reference copier. It has no
// knowledge of any container format; internal/gzip binds it to gzip.
package deflate

// A StructuralError is returned when the DEFLATE bitstream is found to be
// syntactically invalid or otherwise cannot be decoded.
type StructuralError string

func (s StructuralError) Error() string {
	return "deflate: " + string(s)
}

// Sentinel errors a caller can match against with errors.Is, one per
// discriminable failure kind from the decoder's design.
var (
	ErrTruncatedInput       = StructuralError("truncated input")
	ErrUnsupportedBlock     = StructuralError("unsupported or reserved block type")
	ErrMalformedHuffman     = StructuralError("malformed Huffman code table")
	ErrInvalidSymbol        = StructuralError("invalid literal/length or distance symbol")
	ErrBadBackReference     = StructuralError("back-reference out of range")
	ErrStoredLengthMismatch = StructuralError("stored block LEN/NLEN mismatch")
)

// Is allows errors.Is(err, ErrXxx) to match any StructuralError with the
// same message, since StructuralError values are created as constants
// above rather than wrapped.
func (s StructuralError) Is(target error) bool {
	t, ok := target.(StructuralError)
	return ok && s == t
}
