// Copyright 2019 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gzip

import "hash/crc32"

// crc accumulates the IEEE CRC-32 over decoded output. It plays a similar
// role to a bzip2 crc type, but gzip's trailer already stores the standard
// reflected IEEE CRC-32, so - unlike bzip2, which XORs block CRCs together
// in a custom way - this is a direct, single-pass accumulation via the
// standard library's IEEE table.
type crc struct {
	h uint32
}

func (c *crc) update(b []byte) {
	c.h = crc32.Update(c.h, crc32.IEEETable, b)
}

func (c *crc) sum() uint32 {
	return c.h
}
