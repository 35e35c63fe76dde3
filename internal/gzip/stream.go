// Copyright 2019 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gzip

// DecompressStream decodes every gzip member in input, in order, and
// concatenates their decompressed payloads, per RFC 1952 §2.2's
// concatenated-members convention (the same convention compress/gzip's
// Reader follows when Multistream is enabled). It returns the combined
// bytes and the Header of the first member, since a concatenated stream
// carries one header per member but callers inspecting "the" header
// almost always mean the first one.
func DecompressStream(input []byte) ([]byte, Header, error) {
	var (
		out       []byte
		first     Header
		haveFirst bool
	)
	for len(input) > 0 {
		dm, err := decodeOneMember(input)
		if err != nil {
			return nil, Header{}, err
		}
		if !haveFirst {
			first = dm.header
			haveFirst = true
		}
		out = append(out, dm.data...)
		input = input[dm.length:]
	}
	if !haveFirst {
		return nil, Header{}, ErrTruncatedInput
	}
	return out, first, nil
}

// Members decodes every gzip member in input and returns each one's
// Header and decompressed payload individually, for callers (such as the
// inspect CLI subcommand) that want to report on a multi-member stream
// member by member rather than as one concatenated blob.
func Members(input []byte) ([]Header, [][]byte, error) {
	var (
		headers  []Header
		payloads [][]byte
	)
	for len(input) > 0 {
		dm, err := decodeOneMember(input)
		if err != nil {
			return nil, nil, err
		}
		headers = append(headers, dm.header)
		payloads = append(payloads, dm.data)
		input = input[dm.length:]
	}
	return headers, payloads, nil
}
