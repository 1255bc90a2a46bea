// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package set

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/google/uuid"
	"golang.org/x/exp/constraints"

	"v.io/x/hashset/hashfn"
)

var (
	// ErrTooLong is returned when a string does not fit its codec's width.
	ErrTooLong = errors.New("set: string too long")
	// ErrNUL is returned for a string containing a zero byte, which the
	// fixed-width encoding uses as padding.
	ErrNUL = errors.New("set: string contains a NUL byte")
)

// Codec maps values of type T to and from blobs of Size bytes.
type Codec[T any] interface {
	// Size returns the encoded width in bytes.
	Size() int
	// Encode writes v into dst, which is Size bytes long, overwriting every
	// byte of it.
	Encode(dst []byte, v T) error
	// Decode reads a value written by Encode.
	Decode(src []byte) T
	// Hash returns the hash strategy for encoded values.
	Hash() hashfn.Func
}

type integer[T constraints.Integer] struct {
	size   int
	signed bool
}

// Integer returns the little-endian codec for T.
func Integer[T constraints.Integer]() Codec[T] {
	var zero T
	return integer[T]{size: int(unsafe.Sizeof(zero)), signed: ^zero < 0}
}

func (c integer[T]) Size() int { return c.size }

func (c integer[T]) Encode(dst []byte, v T) error {
	switch c.size {
	case 1:
		dst[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(dst, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(dst, uint32(v))
	default:
		binary.LittleEndian.PutUint64(dst, uint64(v))
	}
	return nil
}

func (c integer[T]) Decode(src []byte) T {
	switch c.size {
	case 1:
		if c.signed {
			return T(int8(src[0]))
		}
		return T(src[0])
	case 2:
		u := binary.LittleEndian.Uint16(src)
		if c.signed {
			return T(int16(u))
		}
		return T(u)
	case 4:
		u := binary.LittleEndian.Uint32(src)
		if c.signed {
			return T(int32(u))
		}
		return T(u)
	}
	u := binary.LittleEndian.Uint64(src)
	if c.signed {
		return T(int64(u))
	}
	return T(u)
}

func (c integer[T]) Hash() hashfn.Func {
	if c.signed {
		return hashfn.Int
	}
	return hashfn.Uint
}

type floating[T constraints.Float] struct{ size int }

// Float returns the codec storing T by its IEEE 754 bit pattern.
func Float[T constraints.Float]() Codec[T] {
	var zero T
	return floating[T]{size: int(unsafe.Sizeof(zero))}
}

func (c floating[T]) Size() int { return c.size }

func (c floating[T]) Encode(dst []byte, v T) error {
	if c.size == 4 {
		binary.LittleEndian.PutUint32(dst, math.Float32bits(float32(v)))
	} else {
		binary.LittleEndian.PutUint64(dst, math.Float64bits(float64(v)))
	}
	return nil
}

func (c floating[T]) Decode(src []byte) T {
	if c.size == 4 {
		return T(math.Float32frombits(binary.LittleEndian.Uint32(src)))
	}
	return T(math.Float64frombits(binary.LittleEndian.Uint64(src)))
}

func (floating[T]) Hash() hashfn.Func { return hashfn.Float }

type complex128Codec struct{}

// Complex128 stores the real part followed by the imaginary part.
var Complex128 Codec[complex128] = complex128Codec{}

func (complex128Codec) Size() int { return 16 }

func (complex128Codec) Encode(dst []byte, v complex128) error {
	binary.LittleEndian.PutUint64(dst, math.Float64bits(real(v)))
	binary.LittleEndian.PutUint64(dst[8:], math.Float64bits(imag(v)))
	return nil
}

func (complex128Codec) Decode(src []byte) complex128 {
	return complex(
		math.Float64frombits(binary.LittleEndian.Uint64(src)),
		math.Float64frombits(binary.LittleEndian.Uint64(src[8:])))
}

func (complex128Codec) Hash() hashfn.Func { return hashfn.Complex }

type complex64Codec struct{}

// Complex64 is the 8 byte counterpart of Complex128.
var Complex64 Codec[complex64] = complex64Codec{}

func (complex64Codec) Size() int { return 8 }

func (complex64Codec) Encode(dst []byte, v complex64) error {
	binary.LittleEndian.PutUint32(dst, math.Float32bits(real(v)))
	binary.LittleEndian.PutUint32(dst[4:], math.Float32bits(imag(v)))
	return nil
}

func (complex64Codec) Decode(src []byte) complex64 {
	return complex(
		math.Float32frombits(binary.LittleEndian.Uint32(src)),
		math.Float32frombits(binary.LittleEndian.Uint32(src[4:])))
}

func (complex64Codec) Hash() hashfn.Func { return hashfn.Complex }

type fixedString struct {
	width int
	hash  hashfn.Func
}

// FixedString returns a codec for strings of at most width bytes, stored
// zero padded and hashed with xxHash.
func FixedString(width int) Codec[string] {
	return FixedStringHash(width, hashfn.XXHash)
}

// FixedStringHash is FixedString with an explicit hash strategy.
// hashfn.String is a good fit, since it stops at the padding.
func FixedStringHash(width int, hash hashfn.Func) Codec[string] {
	if width <= 0 {
		panic(fmt.Sprintf("set: string width must be positive, got %d", width))
	}
	return fixedString{width: width, hash: hash}
}

func (c fixedString) Size() int { return c.width }

func (c fixedString) Encode(dst []byte, v string) error {
	if len(v) > c.width {
		return fmt.Errorf("%w: %q is %d bytes, the limit is %d", ErrTooLong, v, len(v), c.width)
	}
	if strings.IndexByte(v, 0) >= 0 {
		return fmt.Errorf("%w: %q", ErrNUL, v)
	}
	n := copy(dst, v)
	clear(dst[n:])
	return nil
}

func (c fixedString) Decode(src []byte) string {
	if i := bytes.IndexByte(src, 0); i >= 0 {
		src = src[:i]
	}
	return string(src)
}

func (c fixedString) Hash() hashfn.Func { return c.hash }

type uuidCodec struct{}

// UUID stores a uuid.UUID as its 16 raw bytes.
var UUID Codec[uuid.UUID] = uuidCodec{}

func (uuidCodec) Size() int { return 16 }

func (uuidCodec) Encode(dst []byte, v uuid.UUID) error {
	copy(dst, v[:])
	return nil
}

func (uuidCodec) Decode(src []byte) uuid.UUID {
	var u uuid.UUID
	copy(u[:], src)
	return u
}

func (uuidCodec) Hash() hashfn.Func { return hashfn.Bytes }
