// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"v.io/x/hashset/hashfn"
	"v.io/x/hashset/vector"
)

// Map maps fixed-width keys to fixed-width values. Hashing and equality
// cover the key bytes only.
type Map struct {
	c *core
}

// NewMap returns an empty Map with keys of keySize bytes, placed by hash,
// and values of valueSize bytes.
func NewMap(keySize, valueSize int, hash hashfn.Func, opts ...Option) (*Map, error) {
	c, err := newCore(keySize, valueSize, hash, opts)
	if err != nil {
		return nil, err
	}
	return &Map{c: c}, nil
}

// KeySize returns the width of m's keys.
func (m *Map) KeySize() int { return m.c.keySize }

// ValueSize returns the width of m's values.
func (m *Map) ValueSize() int { return m.c.valSize }

// Len returns the number of entries in m.
func (m *Map) Len() int { return m.c.count }

// Cap returns the number of slots in m.
func (m *Map) Cap() int { return m.c.arr.Capacity() }

// Stats returns occupancy statistics for m.
func (m *Map) Stats() Stats { return m.c.stats() }

func (m *Map) mustValue(val []byte) {
	if len(val) != m.c.valSize {
		panic(fmt.Sprintf("table: got a %d byte value, want %d bytes", len(val), m.c.valSize))
	}
}

// Contains reports whether key is in m.
func (m *Map) Contains(key []byte) bool {
	return m.c.contains(key)
}

// Get returns the stored value for key, or nil if key is absent. The slice
// refers to m's storage: writes through it update the entry, and it is
// invalid after m next grows, shrinks or is rehashed.
func (m *Map) Get(key []byte) []byte {
	c := m.c
	i := c.lookup(key)
	if i < 0 {
		return nil
	}
	return c.value(&c.store, i)
}

// Put adds key with val. It returns false, and leaves m unchanged, if key
// is already present.
func (m *Map) Put(key, val []byte) (bool, error) {
	m.mustValue(val)
	return m.c.insert(key, val, false)
}

// Update overwrites the value of key and reports whether key was present.
func (m *Map) Update(key, val []byte) bool {
	m.mustValue(val)
	v := m.Get(key)
	if v == nil {
		return false
	}
	copy(v, val)
	return true
}

// Upsert sets the value of key to val, adding key if necessary. It reports
// whether key was added.
func (m *Map) Upsert(key, val []byte) (bool, error) {
	m.mustValue(val)
	return m.c.insert(key, val, true)
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key []byte) bool {
	return m.c.remove(key)
}

// DeleteFunc removes every entry for which pred returns true and returns
// how many were removed.
func (m *Map) DeleteFunc(pred func(key, val []byte) bool) int {
	if pred == nil {
		panic("table: nil predicate")
	}
	c := m.c
	return c.removeFunc(func(i int) bool { return pred(c.key(&c.store, i), c.value(&c.store, i)) })
}

// Range calls fn for every entry in slot order until fn returns false.
func (m *Map) Range(fn func(key, val []byte) bool) {
	c := m.c
	c.each(func(i int) bool { return fn(c.key(&c.store, i), c.value(&c.store, i)) })
}

// Keys returns a copy of every key in slot order. Element i of Keys and
// element i of Values belong to the same entry, provided m is not modified
// in between.
func (m *Map) Keys() (*vector.Array, error) {
	return m.c.snapshot(0, m.c.keySize)
}

// Values returns a copy of every value in slot order.
func (m *Map) Values() (*vector.Array, error) {
	if m.c.valSize == 0 {
		panic("table: Values of a map with zero-width values")
	}
	return m.c.snapshot(m.c.keyStride, m.c.valSize)
}

// Clone returns an independent copy of m.
func (m *Map) Clone() (*Map, error) {
	c, err := m.c.clone()
	if err != nil {
		return nil, err
	}
	return &Map{c: c}, nil
}

// ShrinkReserve is Table.ShrinkReserve for maps.
func (m *Map) ShrinkReserve(reserve float64) error {
	return m.c.shrinkReserve(reserve)
}

// Rehash is Table.Rehash for maps.
func (m *Map) Rehash(capacity int) error {
	return m.c.rehash(capacity, ReasonExplicit)
}

// Release returns m's storage to its allocator.
func (m *Map) Release() {
	m.c.release()
}
