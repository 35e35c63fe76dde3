// Copyright 2019 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package deflate

// Inflate decodes a complete DEFLATE bitstream held entirely in memory
// and returns the decompressed bytes. sizeHint is an advisory initial
// capacity for the output buffer, typically the gzip trailer's ISIZE
// field.
//
// The block loop below plays a similar role to a bzip2 reader's
// readBlock: read a small bitfield header, build the Huffman tree(s) the
// block needs, then run a decode loop that emits output until an end
// marker is reached.
func Inflate(payload []byte, sizeHint uint32) ([]byte, error) {
	out, _, err := InflateWithConsumed(payload, sizeHint)
	return out, err
}

// InflateWithConsumed behaves like Inflate but additionally reports how
// many bytes of payload were consumed by the DEFLATE stream. A gzip
// member's trailer begins exactly there: DEFLATE carries no explicit
// compressed-length field, so a container that must support concatenated
// members (RFC 1952 §2.2) needs this to find the next member's start.
func InflateWithConsumed(payload []byte, sizeHint uint32) ([]byte, int, error) {
	br := newBitReader(payload)
	out := newOutputBuffer(sizeHint)

	fixedLitLen, err := newHuffmanTree(fixedLitLenLengths())
	if err != nil {
		return nil, 0, err
	}
	fixedDist, err := newHuffmanTree(fixedDistLengths())
	if err != nil {
		return nil, 0, err
	}

	for {
		bfinal := br.ReadBit()
		btype := br.ReadBits(2)
		if br.err != nil {
			return nil, 0, br.err
		}

		switch btype {
		case 0: // stored
			if err := inflateStored(&br, out); err != nil {
				return nil, 0, err
			}
		case 1: // fixed
			if err := inflateBlock(&br, out, &fixedLitLen, &fixedDist, true); err != nil {
				return nil, 0, err
			}
		case 2: // dynamic
			litLen, dist, err := readDynamicTrees(&br)
			if err != nil {
				return nil, 0, err
			}
			if err := inflateBlock(&br, out, &litLen, &dist, false); err != nil {
				return nil, 0, err
			}
		default:
			return nil, 0, ErrUnsupportedBlock
		}

		if bfinal != 0 {
			break
		}
	}
	return out.bytes(), br.pos, nil
}

// inflateStored implements BTYPE==00 (RFC 1951 §3.2.4): align to a byte
// boundary, read LEN/NLEN, verify them, and copy LEN raw bytes straight
// through to the output.
func inflateStored(br *bitReader, out *outputBuffer) error {
	br.AlignToByte()
	hdr := br.ReadRawBytes(4)
	if br.err != nil {
		return br.err
	}
	length := int(hdr[0]) | int(hdr[1])<<8
	nlength := int(hdr[2]) | int(hdr[3])<<8
	if length != (^nlength & 0xffff) {
		return ErrStoredLengthMismatch
	}
	data := br.ReadRawBytes(length)
	if br.err != nil {
		return br.err
	}
	for _, b := range data {
		out.append(b)
	}
	return nil
}

// inflateBlock decodes one fixed or dynamic block's symbol stream
// (RFC 1951 §3.2.3): literals are appended directly, length/distance
// pairs drive a sliding-window copy, and code 256 ends the block.
// fixedDistance selects the fixed-mode shortcut of reading distance as 5
// raw bits, most significant first, instead of walking a distance tree; the tree is still built
// for fixed mode (see tables.go) but inflateBlock bypasses it when
// fixedDistance is set, since the two are numerically identical.
func inflateBlock(br *bitReader, out *outputBuffer, litLen, dist *huffmanTree, fixedDistance bool) error {
	for {
		sym, err := litLen.decode(br)
		if err != nil {
			return err
		}

		switch {
		case sym < 256:
			out.append(byte(sym))
		case sym == 256:
			return nil
		case sym <= 285:
			length, err := decodeLength(br, sym)
			if err != nil {
				return err
			}
			var distSym uint16
			if fixedDistance {
				// Huffman codes are packed most-significant bit first,
				// the opposite of ReadBits' assembly order.
				for i := 0; i < 5; i++ {
					distSym = distSym<<1 | uint16(br.ReadBit())
				}
				if br.err != nil {
					return br.err
				}
			} else {
				distSym, err = dist.decode(br)
				if err != nil {
					return err
				}
			}
			distance, err := decodeDistance(br, distSym)
			if err != nil {
				return err
			}
			if err := out.copyBack(distance, length); err != nil {
				return err
			}
		default:
			return ErrInvalidSymbol
		}
	}
}

// decodeLength implements the RFC 1951 §3.2.5 length table for
// literal/length symbols 257..285.
func decodeLength(br *bitReader, sym uint16) (int, error) {
	if sym < 257 || sym > 285 {
		return 0, ErrInvalidSymbol
	}
	idx := int(sym) - 257
	extra := lengthExtraBits[idx]
	base := lengthBase[idx]
	length := base + int(br.ReadBits(extra))
	if br.err != nil {
		return 0, br.err
	}
	if length < 3 || length > 258 {
		return 0, ErrBadBackReference
	}
	return length, nil
}

// decodeDistance implements the RFC 1951 §3.2.5 distance table for
// distance symbols 0..29.
func decodeDistance(br *bitReader, sym uint16) (int, error) {
	if int(sym) >= len(distBase) {
		return 0, ErrInvalidSymbol
	}
	extra := distExtraBits[sym]
	base := distBase[sym]
	distance := base + int(br.ReadBits(extra))
	if br.err != nil {
		return 0, br.err
	}
	if distance < 1 || distance > 32768 {
		return 0, ErrBadBackReference
	}
	return distance, nil
}
