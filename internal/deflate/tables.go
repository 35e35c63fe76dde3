// Copyright 2019 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package deflate

// codeLengthOrder is the fixed permutation in which the 19 code-length
// alphabet's lengths are transmitted in a dynamic block header
// (RFC 1951 §3.2.7).
var codeLengthOrder = [19]int{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// lengthBase and lengthExtraBits give, for literal/length symbols
// 257..285 (index 0..28), the base length and number of extra bits to add
// to it, per RFC 1951 §3.2.5.
var lengthBase = [29]int{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13,
	15, 17, 19, 23, 27, 31, 35, 43, 51, 59,
	67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lengthExtraBits = [29]uint{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1,
	1, 1, 2, 2, 2, 2, 3, 3, 3, 3,
	4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// distBase and distExtraBits give, for distance symbols 0..29, the base
// distance and number of extra bits, per RFC 1951 §3.2.5.
var distBase = [30]int{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25,
	33, 49, 65, 97, 129, 193, 257, 385, 513, 769,
	1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

var distExtraBits = [30]uint{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3,
	4, 4, 5, 5, 6, 6, 7, 7, 8, 8,
	9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// fixedLitLenLengths builds the code-length table for the fixed
// literal/length alphabet (RFC 1951 §3.2.6): 288 symbols, 0..143 at
// length 8, 144..255 at length 9, 256..279 at length 7, 280..287 at
// length 8.
func fixedLitLenLengths() []uint8 {
	lengths := make([]uint8, 288)
	for i := 0; i < 144; i++ {
		lengths[i] = 8
	}
	for i := 144; i < 256; i++ {
		lengths[i] = 9
	}
	for i := 256; i < 280; i++ {
		lengths[i] = 7
	}
	for i := 280; i < 288; i++ {
		lengths[i] = 8
	}
	return lengths
}

// fixedDistLengths builds the code-length table for the fixed distance
// alphabet. RFC 1951 §3.2.6 fixes every fixed-mode distance code at
// length 5, which is numerically identical to reading 5 raw bits most
// significant first. inflateBlock takes that shortcut for fixed blocks and
// does not walk this tree; it is still built so that fixed and dynamic
// blocks hand inflateBlock the same set of trees.
func fixedDistLengths() []uint8 {
	lengths := make([]uint8, 32)
	for i := range lengths {
		lengths[i] = 5
	}
	return lengths
}
