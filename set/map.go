// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package set

import "v.io/x/hashset/table"

// Map maps K keys to V values in a table.Map.
type Map[K, V any] struct {
	keys   Codec[K]
	values Codec[V]
	m      *table.Map
	kbuf   []byte
	vbuf   []byte
}

// NewMap returns an empty map. The options are those of table.NewMap. The
// key codec's hash strategy is used.
func NewMap[K, V any](keys Codec[K], values Codec[V], opts ...table.Option) (*Map[K, V], error) {
	m, err := table.NewMap(keys.Size(), values.Size(), keys.Hash(), opts...)
	if err != nil {
		return nil, err
	}
	return wrapMap(keys, values, m), nil
}

func wrapMap[K, V any](keys Codec[K], values Codec[V], m *table.Map) *Map[K, V] {
	return &Map[K, V]{
		keys:   keys,
		values: values,
		m:      m,
		kbuf:   make([]byte, keys.Size()),
		vbuf:   make([]byte, values.Size()),
	}
}

func (m *Map[K, V]) encode(k K, v V) (kb, vb []byte, err error) {
	if err := m.keys.Encode(m.kbuf, k); err != nil {
		return nil, nil, err
	}
	if err := m.values.Encode(m.vbuf, v); err != nil {
		return nil, nil, err
	}
	return m.kbuf, m.vbuf, nil
}

func (m *Map[K, V]) key(k K) []byte {
	if m.keys.Encode(m.kbuf, k) != nil {
		return nil
	}
	return m.kbuf
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.m.Len() }

// Cap returns the number of slots in the underlying table.
func (m *Map[K, V]) Cap() int { return m.m.Cap() }

// Put adds k with value v. It reports false, leaving m unchanged, if k is
// already present.
func (m *Map[K, V]) Put(k K, v V) (bool, error) {
	kb, vb, err := m.encode(k, v)
	if err != nil {
		return false, err
	}
	return m.m.Put(kb, vb)
}

// Upsert sets the value of k, adding it if needed, and reports whether k
// was added.
func (m *Map[K, V]) Upsert(k K, v V) (bool, error) {
	kb, vb, err := m.encode(k, v)
	if err != nil {
		return false, err
	}
	return m.m.Upsert(kb, vb)
}

// Update overwrites the value of a present key and reports whether k was
// present.
func (m *Map[K, V]) Update(k K, v V) (bool, error) {
	kb, vb, err := m.encode(k, v)
	if err != nil {
		return false, err
	}
	return m.m.Update(kb, vb), nil
}

// Get returns the value of k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	var zero V
	kb := m.key(k)
	if kb == nil {
		return zero, false
	}
	vb := m.m.Get(kb)
	if vb == nil {
		return zero, false
	}
	return m.values.Decode(vb), true
}

// Contains reports whether k is present.
func (m *Map[K, V]) Contains(k K) bool {
	kb := m.key(k)
	return kb != nil && m.m.Contains(kb)
}

// Delete removes k and reports whether it was present.
func (m *Map[K, V]) Delete(k K) bool {
	kb := m.key(k)
	return kb != nil && m.m.Delete(kb)
}

// DeleteFunc removes every entry for which pred returns true and returns
// how many were removed.
func (m *Map[K, V]) DeleteFunc(pred func(K, V) bool) int {
	return m.m.DeleteFunc(func(kb, vb []byte) bool {
		return pred(m.keys.Decode(kb), m.values.Decode(vb))
	})
}

// Range calls fn for every entry until fn returns false.
func (m *Map[K, V]) Range(fn func(K, V) bool) {
	m.m.Range(func(kb, vb []byte) bool {
		return fn(m.keys.Decode(kb), m.values.Decode(vb))
	})
}

// Keys returns the keys of m. Keys()[i] and Values()[i] belong to the same
// entry.
func (m *Map[K, V]) Keys() []K {
	result := make([]K, 0, m.Len())
	m.Range(func(k K, _ V) bool {
		result = append(result, k)
		return true
	})
	return result
}

// Values returns the values of m, in the order of Keys.
func (m *Map[K, V]) Values() []V {
	result := make([]V, 0, m.Len())
	m.Range(func(_ K, v V) bool {
		result = append(result, v)
		return true
	})
	return result
}

// Clone returns an independent copy of m.
func (m *Map[K, V]) Clone() (*Map[K, V], error) {
	c, err := m.m.Clone()
	if err != nil {
		return nil, err
	}
	return wrapMap(m.keys, m.values, c), nil
}

// ShrinkReserve is Set.ShrinkReserve for maps.
func (m *Map[K, V]) ShrinkReserve(reserve float64) error {
	return m.m.ShrinkReserve(reserve)
}

// Release returns the storage of m to its allocator.
func (m *Map[K, V]) Release() { m.m.Release() }
