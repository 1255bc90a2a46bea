// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"v.io/x/hashset/hashfn"
	"v.io/x/hashset/vector"
)

// Table is a set of fixed-width byte blobs.
type Table struct {
	c *core
}

// New returns an empty Table of blobs of size bytes, placed by hash.
// It panics if size is not positive or hash is nil; the only error it
// returns is a failure to allocate storage.
func New(size int, hash hashfn.Func, opts ...Option) (*Table, error) {
	c, err := newCore(size, 0, hash, opts)
	if err != nil {
		return nil, err
	}
	return &Table{c: c}, nil
}

// Size returns the width in bytes of the blobs held by t.
func (t *Table) Size() int { return t.c.keySize }

// Len returns the number of blobs in t.
func (t *Table) Len() int { return t.c.count }

// Cap returns the number of slots in t.
func (t *Table) Cap() int { return t.c.arr.Capacity() }

// Slot returns the status of slot i.
func (t *Table) Slot(i int) Status { return t.c.slots.test(i) }

// Stats returns occupancy statistics for t.
func (t *Table) Stats() Stats { return t.c.stats() }

// Contains reports whether v is in t.
func (t *Table) Contains(v []byte) bool {
	return t.c.contains(v)
}

// Insert adds v to t. It returns false, and leaves t unchanged, if an equal
// blob is already present. A non-nil error means t had to grow and the
// allocation failed; t is unchanged in that case too.
func (t *Table) Insert(v []byte) (bool, error) {
	return t.c.insert(v, nil, false)
}

// Remove removes v from t and reports whether it was present. Removing an
// absent blob is not an error. Remove never shrinks t.
func (t *Table) Remove(v []byte) bool {
	return t.c.remove(v)
}

// RemoveFunc removes every blob for which pred returns true and returns how
// many were removed. pred sees the stored bytes and must not retain or
// modify them; it may query other tables, or t itself.
func (t *Table) RemoveFunc(pred func(v []byte) bool) int {
	if pred == nil {
		panic("table: nil predicate")
	}
	c := t.c
	return c.removeFunc(func(i int) bool { return pred(c.key(&c.store, i)) })
}

// Range calls fn for every blob in slot order until fn returns false. fn
// must not modify t or the bytes it is given.
func (t *Table) Range(fn func(v []byte) bool) {
	c := t.c
	c.each(func(i int) bool { return fn(c.key(&c.store, i)) })
}

// Values returns a copy of every blob in t, in slot order, as an array of
// exactly t.Len() elements.
func (t *Table) Values() (*vector.Array, error) {
	return t.c.snapshot(0, t.c.keySize)
}

// Clone returns an independent copy of t with the same layout.
func (t *Table) Clone() (*Table, error) {
	c, err := t.c.clone()
	if err != nil {
		return nil, err
	}
	return &Table{c: c}, nil
}

// ShrinkReserve rehashes t into t.Len()*(1+reserve) slots, so that
// reserve = 0 leaves no free slot and reserve = 1 leaves as many free slots
// as there are blobs. It panics if reserve is negative or not finite, and
// returns an error wrapping ErrAllocation if the target is too large.
func (t *Table) ShrinkReserve(reserve float64) error {
	return t.c.shrinkReserve(reserve)
}

// Rehash moves t into capacity slots with new coefficients. It panics if
// capacity is smaller than t.Len() or not positive.
func (t *Table) Rehash(capacity int) error {
	return t.c.rehash(capacity, ReasonExplicit)
}

// Release returns t's storage to its allocator. t must not be used
// afterwards.
func (t *Table) Release() {
	t.c.release()
}

func (t *Table) String() string {
	return fmt.Sprintf("table.Table{size: %d, len: %d, cap: %d}", t.Size(), t.Len(), t.Cap())
}
