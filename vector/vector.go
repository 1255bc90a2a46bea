// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vector implements a contiguous array of fixed-size elements with
// an optional untyped header region placed in the same allocation, ahead of
// the elements. Memory is obtained from an Allocator so that callers can
// bound how much a container may consume.
package vector

import (
	"errors"
	"fmt"
)

// ErrAllocation is returned when an Allocator cannot satisfy a request.
var ErrAllocation = errors.New("vector: allocation failed")

// Allocator hands out zeroed byte slices and takes them back.
type Allocator interface {
	// Alloc returns a zeroed slice of length n.
	Alloc(n int) ([]byte, error)
	// Free returns a slice previously obtained from Alloc.
	Free(b []byte)
}

type heap struct{}

func (heap) Alloc(n int) ([]byte, error) { return make([]byte, n), nil }
func (heap) Free([]byte)                 {}

// Heap allocates from the Go heap and never fails.
var Heap Allocator = heap{}

// Budget is an Allocator that refuses requests which would take the number
// of outstanding bytes above its limit. It is not safe for concurrent use.
type Budget struct {
	limit int
	inUse int
	peak  int
}

// NewBudget returns a Budget allowing at most limit outstanding bytes.
func NewBudget(limit int) *Budget {
	return &Budget{limit: limit}
}

// Alloc implements Allocator.
func (b *Budget) Alloc(n int) ([]byte, error) {
	if b.inUse+n > b.limit {
		return nil, fmt.Errorf("%w: %d bytes requested with %d of %d in use", ErrAllocation, n, b.inUse, b.limit)
	}
	b.inUse += n
	if b.inUse > b.peak {
		b.peak = b.inUse
	}
	return make([]byte, n), nil
}

// Free implements Allocator.
func (b *Budget) Free(p []byte) {
	b.inUse -= len(p)
}

// InUse returns the number of bytes currently outstanding.
func (b *Budget) InUse() int { return b.inUse }

// Peak returns the largest number of bytes that were ever outstanding.
func (b *Budget) Peak() int { return b.peak }

// Array is a fixed-capacity array of elemSize-byte elements preceded by a
// headerSize-byte header. The zero value is not usable; use New.
type Array struct {
	elemSize   int
	capacity   int
	headerSize int
	buf        []byte
	alloc      Allocator
}

// New allocates an Array holding capacity zeroed elements of elemSize bytes
// and a zeroed header of headerSize bytes. A nil alloc means Heap.
func New(elemSize, capacity, headerSize int, alloc Allocator) (*Array, error) {
	if elemSize <= 0 || capacity < 0 || headerSize < 0 {
		panic(fmt.Sprintf("vector: invalid geometry elemSize=%d capacity=%d headerSize=%d", elemSize, capacity, headerSize))
	}
	if alloc == nil {
		alloc = Heap
	}
	buf, err := alloc.Alloc(headerSize + elemSize*capacity)
	if err != nil {
		return nil, err
	}
	return &Array{
		elemSize:   elemSize,
		capacity:   capacity,
		headerSize: headerSize,
		buf:        buf,
		alloc:      alloc,
	}, nil
}

// ElemSize returns the size in bytes of each element.
func (a *Array) ElemSize() int { return a.elemSize }

// Capacity returns the number of elements in the array.
func (a *Array) Capacity() int { return a.capacity }

// Header returns the header region. Writes through the returned slice
// modify the array.
func (a *Array) Header() []byte {
	return a.buf[:a.headerSize:a.headerSize]
}

// Get returns element i. Writes through the returned slice modify the
// array; the slice is only valid until the array is released.
func (a *Array) Get(i int) []byte {
	off := a.headerSize + i*a.elemSize
	return a.buf[off : off+a.elemSize : off+a.elemSize]
}

// Set copies b into element i. If b is shorter than an element, the
// remaining bytes are left untouched.
func (a *Array) Set(i int, b []byte) {
	if len(b) > a.ElemSize() {
		panic(fmt.Sprintf("vector: %d bytes do not fit a %d byte element", len(b), a.ElemSize()))
	}
	copy(a.Get(i), b)
}

// Elements returns the element region as one contiguous slice.
func (a *Array) Elements() []byte {
	return a.buf[a.headerSize:]
}

// Clone returns a copy of the array, header included, allocated from the
// same Allocator.
func (a *Array) Clone() (*Array, error) {
	buf, err := a.alloc.Alloc(len(a.buf))
	if err != nil {
		return nil, err
	}
	copy(buf, a.buf)
	c := *a
	c.buf = buf
	return &c, nil
}

// Release hands the array's memory back to its Allocator. The array must
// not be used afterwards. Releasing twice is a no-op.
func (a *Array) Release() {
	if a.buf == nil {
		return
	}
	a.alloc.Free(a.buf)
	a.buf = nil
}
