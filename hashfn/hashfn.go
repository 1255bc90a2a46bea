// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hashfn provides hash strategies for fixed-width values stored as
// raw bytes. A strategy only has to be consistent with byte equality: equal
// blobs must hash equally. Containers compare full blobs after a hash match,
// so collisions cost probes, never correctness.
//
// Integers and floats are read little-endian, matching how the set package
// encodes them.
package hashfn

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Func hashes a blob of known size.
type Func func(p []byte) uint64

const (
	seedPrime = 17
	stepPrime = 23
	wordSize  = 8
)

// Int hashes a 1, 2, 4 or 8 byte two's complement integer by its absolute
// value.
func Int(p []byte) uint64 {
	var v int64
	switch len(p) {
	case 1:
		v = int64(int8(p[0]))
	case 2:
		v = int64(int16(binary.LittleEndian.Uint16(p)))
	case 4:
		v = int64(int32(binary.LittleEndian.Uint32(p)))
	case 8:
		v = int64(binary.LittleEndian.Uint64(p))
	default:
		panic(fmt.Sprintf("hashfn: %d bytes is not an integer width", len(p)))
	}
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

// Uint hashes a 1, 2, 4 or 8 byte unsigned integer by its value.
func Uint(p []byte) uint64 {
	switch len(p) {
	case 1:
		return uint64(p[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(p))
	case 4:
		return uint64(binary.LittleEndian.Uint32(p))
	case 8:
		return binary.LittleEndian.Uint64(p)
	}
	panic(fmt.Sprintf("hashfn: %d bytes is not an integer width", len(p)))
}

// Float hashes a 4 or 8 byte IEEE 754 value by its bit pattern.
func Float(p []byte) uint64 {
	if len(p) != 4 && len(p) != 8 {
		panic(fmt.Sprintf("hashfn: %d bytes is not a float width", len(p)))
	}
	return Uint(p)
}

// Complex hashes an 8 or 16 byte value as two halves, low + 17*high.
func Complex(p []byte) uint64 {
	if len(p) != 8 && len(p) != 16 {
		panic(fmt.Sprintf("hashfn: %d bytes is not a complex width", len(p)))
	}
	half := len(p) / 2
	return Uint(p[:half]) + seedPrime*Uint(p[half:])
}

// String hashes the bytes of p up to the first zero byte with a rolling
// multiplicative accumulator. It suits zero-padded fixed-width strings.
func String(p []byte) uint64 {
	code := uint64(seedPrime)
	for _, c := range p {
		if c == 0 {
			break
		}
		code = (code + uint64(c)) * stepPrime
	}
	return code
}

// Bytes hashes p eight bytes at a time, then the remaining tail one byte at a
// time, with the same accumulator as String.
func Bytes(p []byte) uint64 {
	code := uint64(seedPrime)
	i := 0
	for ; i+wordSize <= len(p); i += wordSize {
		code = (code + binary.LittleEndian.Uint64(p[i:])) * stepPrime
	}
	for ; i < len(p); i++ {
		code = (code + uint64(p[i])) * stepPrime
	}
	return code
}

// XXHash hashes p with xxHash64.
func XXHash(p []byte) uint64 {
	return xxhash.Sum64(p)
}

// Integer hashes v by its absolute value; it agrees with Int and Uint on the
// little-endian encoding of v.
func Integer[T constraints.Integer](v T) uint64 {
	if v < 0 {
		return uint64(-int64(v))
	}
	return uint64(v)
}

// Floating hashes v by the bit pattern of its own width; it agrees with Float
// on the little-endian encoding of v.
func Floating[T constraints.Float](v T) uint64 {
	if unsafe.Sizeof(v) == 4 {
		return uint64(math.Float32bits(float32(v)))
	}
	return math.Float64bits(float64(v))
}
