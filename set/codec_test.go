// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package set_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"v.io/x/hashset/hashfn"
	"v.io/x/hashset/set"
)

func roundTrip[T comparable](t *testing.T, c set.Codec[T], vs ...T) {
	t.Helper()
	buf := make([]byte, c.Size())
	for _, v := range vs {
		if err := c.Encode(buf, v); err != nil {
			t.Errorf("Encode(%v): %v", v, err)
			continue
		}
		if got := c.Decode(buf); got != v {
			t.Errorf("got %v, want %v", got, v)
		}
		// Hashing must accept the encoding.
		c.Hash()(buf)
	}
}

func TestIntegerCodecs(t *testing.T) {
	roundTrip(t, set.Integer[int8](), -128, -1, 0, 1, 127)
	roundTrip(t, set.Integer[uint8](), 0, 1, 255)
	roundTrip(t, set.Integer[int16](), math.MinInt16, -300, 300, math.MaxInt16)
	roundTrip(t, set.Integer[uint16](), 0, math.MaxUint16)
	roundTrip(t, set.Integer[int32](), math.MinInt32, -1, math.MaxInt32)
	roundTrip(t, set.Integer[uint32](), 0, math.MaxUint32)
	roundTrip(t, set.Integer[int64](), math.MinInt64, -1, math.MaxInt64)
	roundTrip(t, set.Integer[uint64](), 0, math.MaxUint64)
	roundTrip(t, set.Integer[int](), -42, 42)
	roundTrip(t, set.Integer[uintptr](), 0, 1<<20)

	for _, tc := range []struct {
		size int
		got  int
	}{
		{1, set.Integer[int8]().Size()},
		{2, set.Integer[uint16]().Size()},
		{4, set.Integer[int32]().Size()},
		{8, set.Integer[uint64]().Size()},
	} {
		if tc.got != tc.size {
			t.Errorf("got %v, want %v", tc.got, tc.size)
		}
	}

	// Signed and unsigned values hash like the raw strategies.
	buf := make([]byte, 4)
	c := set.Integer[int32]()
	c.Encode(buf, -7)
	if got, want := c.Hash()(buf), hashfn.Int(buf); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := c.Hash()(buf), uint64(7); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFloatCodecs(t *testing.T) {
	roundTrip(t, set.Float[float32](), 0, -1.5, math.MaxFloat32, float32(math.Inf(-1)))
	roundTrip(t, set.Float[float64](), 0, math.Pi, -math.SmallestNonzeroFloat64, math.Inf(1))
	roundTrip(t, set.Complex64, 0, complex(1, -2))
	roundTrip(t, set.Complex128, complex(math.Pi, math.E))

	// Floats compare by bit pattern.
	s, err := set.New(set.Float[float64]())
	if err != nil {
		t.Fatal(err)
	}
	nan := math.NaN()
	for _, v := range []float64{0, math.Copysign(0, -1), nan, nan} {
		s.Insert(v)
	}
	if got, want := s.Len(), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !s.Contains(nan) {
		t.Errorf("NaN not found")
	}
}

func TestFixedString(t *testing.T) {
	c := set.FixedString(4)
	roundTrip(t, c, "", "a", "abcd")

	buf := []byte{9, 9, 9, 9}
	if err := c.Encode(buf, "ab"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{'a', 'b', 0, 0}, buf); diff != "" {
		t.Errorf("padding (-want +got):\n%s", diff)
	}
	if err := c.Encode(buf, "abcde"); !errors.Is(err, set.ErrTooLong) {
		t.Errorf("got %v, want %v", err, set.ErrTooLong)
	}
	if err := c.Encode(buf, "a\x00b"); !errors.Is(err, set.ErrNUL) {
		t.Errorf("got %v, want %v", err, set.ErrNUL)
	}

	h := set.FixedStringHash(4, hashfn.String)
	h.Encode(buf, "ab")
	if got, want := h.Hash()(buf), hashfn.String([]byte("ab")); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestUUIDCodec(t *testing.T) {
	roundTrip(t, set.UUID, uuid.Nil, uuid.New(), uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	if got, want := set.UUID.Size(), 16; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
