// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitfield implements arrays of small unsigned fields packed into a
// byte slice. A field is 1, 2, 4 or 8 bits wide; fields never straddle a byte
// boundary. The caller owns the buffer and is responsible for keeping indexes
// within the number of fields it was sized for.
package bitfield

import "fmt"

// Alignment is the granularity, in bytes, to which Size rounds up.
const Alignment = 8

const byteBits = 8

// Size returns the number of bytes needed to hold n fields of the given
// width, rounded up to a multiple of Alignment.
func Size(n int, width uint) int {
	mustWidth(width)
	nbytes := (n*int(width) + byteBits - 1) / byteBits
	return (nbytes + Alignment - 1) / Alignment * Alignment
}

// Init zeroes buf, setting every field to 0.
func Init(buf []byte) {
	clear(buf)
}

// Test returns the value of field i.
func Test(buf []byte, width uint, i int) uint8 {
	idx, shift := locate(width, i)
	return buf[idx] >> shift & mask(width)
}

// Set stores v, truncated to width bits, in field i.
func Set(buf []byte, width uint, i int, v uint8) {
	idx, shift := locate(width, i)
	m := mask(width) << shift
	buf[idx] = buf[idx]&^m | v<<shift&m
}

func locate(width uint, i int) (int, uint) {
	mustWidth(width)
	perByte := byteBits / int(width)
	return i / perByte, uint(i%perByte) * width
}

func mask(width uint) uint8 {
	return uint8(1)<<width - 1
}

func mustWidth(width uint) {
	switch width {
	case 1, 2, 4, 8:
	default:
		panic(fmt.Sprintf("bitfield: unsupported field width %d", width))
	}
}
