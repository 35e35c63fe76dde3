// Copyright 2019 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gzip

import inflate "github.com/cosnicolaou/pgunzip/internal/deflate"

// DecompressMember is the top-level driver for a single gzip member
// occupying all of input: parse the header, hand the DEFLATE payload to
// the inflater, then verify the output against the trailer's CRC and
// size. It returns the decompressed bytes, the parsed Header (for callers
// that want to inspect it, e.g. the inspect CLI subcommand) and any
// error.
func DecompressMember(input []byte) ([]byte, Header, error) {
	m, err := parseMember(input)
	if err != nil {
		return nil, Header{}, err
	}
	if err := m.bindTrailer(input, len(input)); err != nil {
		return nil, Header{}, err
	}

	out, err := inflate.Inflate(input[m.payloadStart:m.payloadEnd], m.expectedSize)
	if err != nil {
		return nil, m.Header, err
	}

	var c crc
	c.update(out)
	if c.sum() != m.expectedCRC {
		return nil, m.Header, ErrChecksumMismatch
	}
	if uint32(len(out)) != m.expectedSize { //#nosec G115 -- compared against a mod-2^32 trailer field
		return nil, m.Header, ErrSizeMismatch
	}
	return out, m.Header, nil
}

// decodedMember is the result of decoding one member out of a stream that
// may hold several concatenated together (RFC 1952 §2.2): the decoded
// bytes, its header, and how many input bytes it occupied end to end,
// since nothing in a gzip member's header records its own compressed
// length - the only way to find the next member's start is to decode
// this one.
type decodedMember struct {
	data   []byte
	header Header
	length int // total bytes this member occupies in the stream, including header/trailer
}

func decodeOneMember(input []byte) (decodedMember, error) {
	m, err := parseMember(input)
	if err != nil {
		return decodedMember{}, err
	}

	// Nothing in the header records where the DEFLATE payload ends, and
	// decoding against successively larger slices would be wasteful;
	// instead inflate against the rest of the buffer and use deflate's own
	// consumed-byte accounting to find the end. internal/deflate exposes
	// this via InflateWithConsumed for exactly this reason.
	out, consumed, err := inflate.InflateWithConsumed(input[m.payloadStart:], m.expectedSize)
	if err != nil {
		return decodedMember{}, err
	}
	payloadEnd := m.payloadStart + consumed
	if err := m.bindTrailer(input, payloadEnd+8); err != nil {
		return decodedMember{}, err
	}

	var c crc
	c.update(out)
	if c.sum() != m.expectedCRC {
		return decodedMember{}, ErrChecksumMismatch
	}
	if uint32(len(out)) != m.expectedSize { //#nosec G115 -- compared against a mod-2^32 trailer field
		return decodedMember{}, ErrSizeMismatch
	}

	return decodedMember{data: out, header: m.Header, length: payloadEnd + 8}, nil
}
