// Copyright 2019 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package deflate

// A huffmanTree is a binary tree which is navigated, bit-by-bit, to reach a
// symbol. It plays a similar structural role to a bzip2 huffmanTree (an
// arena of nodes, walked by Decode), but is built by the canonical
// RFC 1951 §3.2.2 algorithm rather than a sort-and-split construction,
// since a DEFLATE decoder must match the canonical code assignment
// exactly for interoperability with any encoder.
type huffmanTree struct {
	nodes []huffmanNode
}

// childKind distinguishes a child slot that has not been visited during
// construction from one that terminates in a leaf or continues to another
// internal node.
type childKind uint8

const (
	childUnset childKind = iota
	childLeaf
	childNode
)

type huffmanChild struct {
	kind childKind
	node uint16 // valid when kind == childNode
	sym  uint16 // valid when kind == childLeaf
}

// huffmanNode is an internal node: children[0] is the subtree reached on
// a 0 bit, children[1] on a 1 bit.
type huffmanNode struct {
	children [2]huffmanChild
}

// newHuffmanTree builds a canonical Huffman decode tree from a table of
// per-symbol code lengths, following RFC 1951 §3.2.2:
//
//  1. bl_count[L] = number of symbols with bit_length exactly L.
//  2. next_code[L] = first codeword assigned to length-L symbols.
//  3. walk symbols in label order, assigning next_code[L] and incrementing.
//  4. insert each (symbol, code, length) MSB-first into the tree.
//
// Symbols with length 0 are unused and skipped. An alphabet with no used
// symbols at all is a malformed-Huffman error.
func newHuffmanTree(lengths []uint8) (huffmanTree, error) {
	var maxLen uint8
	for _, l := range lengths {
		if l > maxLen {
			maxLen = l
		}
	}
	if maxLen == 0 {
		return huffmanTree{}, ErrMalformedHuffman
	}

	blCount := make([]int, maxLen+1)
	for _, l := range lengths {
		if l > 0 {
			blCount[l]++
		}
	}

	nextCode := make([]uint32, maxLen+1)
	code := uint32(0)
	for l := uint8(1); l <= maxLen; l++ {
		code = (code + uint32(blCount[l-1])) << 1
		nextCode[l] = code
	}

	t := huffmanTree{nodes: []huffmanNode{{}}} // nodes[0] is the root
	for sym, l := range lengths {
		if l == 0 {
			continue
		}
		c := nextCode[l]
		nextCode[l]++
		if err := t.insert(uint16(sym), c, l); err != nil { //#nosec G115 -- sym < len(lengths) <= 288
			return huffmanTree{}, err
		}
	}
	return t, nil
}

// insert walks code's bits MSB-first (the most significant of the l code
// bits chooses the root's child), allocating internal nodes as needed,
// and records sym at the resulting leaf.
func (t *huffmanTree) insert(sym uint16, code uint32, l uint8) error {
	nodeIdx := uint16(0)
	for bitPos := int(l) - 1; bitPos >= 0; bitPos-- {
		bit := (code >> uint(bitPos)) & 1
		last := bitPos == 0

		// Re-index t.nodes[nodeIdx] by position rather than holding a
		// pointer across the append below: append can reallocate the
		// backing array, and a pointer taken before that call would
		// keep pointing at the abandoned array.
		switch t.nodes[nodeIdx].children[bit].kind {
		case childUnset:
			if last {
				t.nodes[nodeIdx].children[bit] = huffmanChild{kind: childLeaf, sym: sym}
				return nil
			}
			t.nodes = append(t.nodes, huffmanNode{})
			newIdx := uint16(len(t.nodes) - 1) //#nosec G115 -- tree has at most 1+288*15 nodes
			t.nodes[nodeIdx].children[bit] = huffmanChild{kind: childNode, node: newIdx}
			nodeIdx = newIdx
		case childLeaf:
			// A code path tries to pass through an existing leaf:
			// either a duplicate code or an over-subscribed tree.
			return ErrMalformedHuffman
		case childNode:
			if last {
				// This code is a prefix of an already-inserted
				// longer code: an under-full/over-subscribed tree.
				return ErrMalformedHuffman
			}
			nodeIdx = t.nodes[nodeIdx].children[bit].node
		}
	}
	return nil
}

// decode walks the tree one bit at a time via br until a leaf is reached,
// returning its symbol. Fails with ErrMalformedHuffman if the bitstream
// steers into an unset child, which can only happen for a tree built from
// an inconsistent (under-full) length table.
func (t *huffmanTree) decode(br *bitReader) (uint16, error) {
	nodeIdx := uint16(0)
	for {
		bit := br.ReadBit()
		if br.err != nil {
			return 0, br.err
		}
		child := &t.nodes[nodeIdx].children[bit]
		switch child.kind {
		case childLeaf:
			return child.sym, nil
		case childNode:
			nodeIdx = child.node
		default:
			return 0, ErrMalformedHuffman
		}
	}
}
