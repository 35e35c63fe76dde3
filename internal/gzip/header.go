// Copyright 2019 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gzip

import (
	"bytes"
	"encoding/binary"
	"time"
)

const (
	magic1            = 0x1F
	magic2            = 0x8B
	deflate           = 0x08
	flagText          = 1 << 0
	flagHCRC          = 1 << 1
	flagExtra         = 1 << 2
	flagName          = 1 << 3
	flagComment       = 1 << 4
	reservedFlagsMask = 0xE0
)

// Header is the metadata snapshot exposed to callers that want to inspect
// a gzip member without decompressing it, mirroring the public surface of
// the standard library's compress/gzip.Header.
type Header struct {
	ModTime time.Time
	OS      byte
	XFL     byte
	Name    string
	Comment string
	Extra   []byte
	Text    bool
}

// member is the internal view of one gzip member: payload bounds and the
// trailer fields decoding needs, plus the Header for callers that want it.
type member struct {
	Header
	payloadStart int
	payloadEnd   int // exclusive; input[payloadEnd:payloadEnd+8] is the trailer
	expectedCRC  uint32
	expectedSize uint32
}

// parseMember validates and parses one gzip member's header starting at
// the beginning of input, per RFC 1952 §2.3. The returned member's
// payloadEnd and trailer fields are filled in separately by bindTrailer,
// once the caller knows where this member ends.
func parseMember(input []byte) (member, error) {
	if len(input) < 10 {
		return member{}, ErrTruncatedInput
	}
	if input[0] != magic1 || input[1] != magic2 {
		return member{}, ErrBadMagic
	}
	if input[2] != deflate {
		return member{}, ErrUnsupportedMethod
	}
	flg := input[3]
	if flg&reservedFlagsMask != 0 {
		return member{}, ErrBadFlags
	}

	mtime := binary.LittleEndian.Uint32(input[4:8])
	xfl := input[8]
	os := input[9]

	m := member{
		Header: Header{
			ModTime: time.Unix(int64(mtime), 0),
			OS:      os,
			XFL:     xfl,
			Text:    flg&flagText != 0,
		},
	}

	pos := 10
	if flg&flagExtra != 0 {
		if pos+2 > len(input) {
			return member{}, ErrTruncatedInput
		}
		n := int(binary.LittleEndian.Uint16(input[pos : pos+2]))
		pos += 2
		if pos+n > len(input) {
			return member{}, ErrTruncatedInput
		}
		m.Extra = append([]byte(nil), input[pos:pos+n]...)
		pos += n
	}
	if flg&flagName != 0 {
		end := bytes.IndexByte(input[pos:], 0)
		if end < 0 {
			return member{}, ErrTruncatedInput
		}
		m.Name = string(input[pos : pos+end])
		pos += end + 1
	}
	if flg&flagComment != 0 {
		end := bytes.IndexByte(input[pos:], 0)
		if end < 0 {
			return member{}, ErrTruncatedInput
		}
		m.Comment = string(input[pos : pos+end])
		pos += end + 1
	}
	if flg&flagHCRC != 0 {
		if pos+2 > len(input) {
			return member{}, ErrTruncatedInput
		}
		pos += 2
	}

	m.payloadStart = pos
	return m, nil
}

// bindTrailer fills in payloadEnd/expectedCRC/expectedSize once the caller
// knows where this member ends within input: the trailer is the 8 bytes
// immediately preceding memberEnd (RFC 1952 §2.3).
func (m *member) bindTrailer(input []byte, memberEnd int) error {
	if memberEnd > len(input) || memberEnd-m.payloadStart < 8 {
		return ErrTruncatedInput
	}
	m.payloadEnd = memberEnd - 8
	trailer := input[m.payloadEnd:memberEnd]
	m.expectedCRC = binary.LittleEndian.Uint32(trailer[0:4])
	m.expectedSize = binary.LittleEndian.Uint32(trailer[4:8])
	return nil
}
