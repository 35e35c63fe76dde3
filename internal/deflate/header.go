// Copyright 2019 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package deflate

// readDynamicTrees decodes a dynamic block's header (RFC 1951 §3.2.7) and
// returns the literal/length and distance Huffman trees it describes. The
// overall shape - read small bitfields, build a Huffman tree, then run a
// decode loop that expands repeat codes into a flat symbol array - mirrors
// how a bzip2 reader builds its move-to-front code-length tables from a
// transmitted, run-length-friendly encoding.
func readDynamicTrees(br *bitReader) (litLen, dist huffmanTree, err error) {
	hlit := int(br.ReadBits(5)) + 257
	hdist := int(br.ReadBits(5)) + 1
	hclen := int(br.ReadBits(4)) + 4
	if br.err != nil {
		return huffmanTree{}, huffmanTree{}, br.err
	}

	var clLengths [19]uint8
	for i := 0; i < hclen; i++ {
		clLengths[codeLengthOrder[i]] = uint8(br.ReadBits(3))
	}
	if br.err != nil {
		return huffmanTree{}, huffmanTree{}, br.err
	}

	clTree, err := newHuffmanTree(clLengths[:])
	if err != nil {
		return huffmanTree{}, huffmanTree{}, err
	}

	alphabet, err := expandCodeLengths(br, &clTree, hlit+hdist)
	if err != nil {
		return huffmanTree{}, huffmanTree{}, err
	}

	litLen, err = newHuffmanTree(alphabet[:hlit])
	if err != nil {
		return huffmanTree{}, huffmanTree{}, err
	}
	dist, err = newHuffmanTree(alphabet[hlit:])
	if err != nil {
		return huffmanTree{}, huffmanTree{}, err
	}
	return litLen, dist, nil
}

// expandCodeLengths decodes exactly total code-length values using clTree,
// expanding the repeat codes 16/17/18 per RFC 1951 §3.2.7. code 16
// repeats the previously emitted length (3+extra times, 2 extra bits);
// 17 and 18 repeat a length of 0 (3+extra with 3 extra bits, and 11+extra
// with 7 extra bits, respectively).
func expandCodeLengths(br *bitReader, clTree *huffmanTree, total int) ([]uint8, error) {
	alphabet := make([]uint8, 0, total)
	var prevLength uint8
	for len(alphabet) < total {
		sym, err := clTree.decode(br)
		if err != nil {
			return nil, err
		}
		switch {
		case sym <= 15:
			alphabet = append(alphabet, uint8(sym))
			prevLength = uint8(sym)
		case sym == 16:
			if len(alphabet) == 0 {
				return nil, ErrMalformedHuffman
			}
			extra := int(br.ReadBits(2))
			for i := 0; i < 3+extra; i++ {
				alphabet = append(alphabet, prevLength)
			}
		case sym == 17:
			extra := int(br.ReadBits(3))
			for i := 0; i < 3+extra; i++ {
				alphabet = append(alphabet, 0)
			}
			prevLength = 0
		case sym == 18:
			extra := int(br.ReadBits(7))
			for i := 0; i < 11+extra; i++ {
				alphabet = append(alphabet, 0)
			}
			prevLength = 0
		default:
			return nil, ErrInvalidSymbol
		}
		if br.err != nil {
			return nil, br.err
		}
		if len(alphabet) > total {
			return nil, ErrMalformedHuffman
		}
	}
	return alphabet, nil
}
