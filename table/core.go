// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bytes"
	"fmt"

	"golang.org/x/exp/rand"

	"v.io/x/hashset/bitfield"
	"v.io/x/hashset/hashfn"
	"v.io/x/hashset/vector"
	"v.io/x/hashset/vlog"
)

// ErrAllocation is returned, wrapped, when storage could not be obtained.
var ErrAllocation = vector.ErrAllocation

// core is the engine shared by Table and Map. A record is the key padded to
// keyStride bytes followed by the value padded to an aligned size; sets use
// a zero-width value.
type core struct {
	keySize   int
	keyStride int
	valSize   int
	hash      hashfn.Func
	opts      options
	rng       *rand.Rand
	store
}

// store is everything that a rehash replaces.
type store struct {
	arr   *vector.Array
	slots slots
	coeff coefficients
	count int
}

func alignUp(n int) int {
	return (n + bitfield.Alignment - 1) / bitfield.Alignment * bitfield.Alignment
}

func newCore(keySize, valSize int, hash hashfn.Func, opts []Option) (*core, error) {
	if keySize <= 0 {
		panic(fmt.Sprintf("table: key size must be positive, got %d", keySize))
	}
	if valSize < 0 {
		panic(fmt.Sprintf("table: value size must not be negative, got %d", valSize))
	}
	if hash == nil {
		panic("table: nil hash function")
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.capacity <= 0 {
		panic(fmt.Sprintf("table: capacity must be positive, got %d", o.capacity))
	}
	if o.alloc == nil {
		o.alloc = vector.Heap
	}
	if o.logger == nil {
		o.logger = vlog.Discard
	}
	c := &core{
		keySize:   keySize,
		keyStride: alignUp(keySize),
		valSize:   valSize,
		hash:      hash,
		opts:      o,
		rng:       rand.New(rand.NewSource(o.seed)),
	}
	s, err := c.newStore(o.capacity)
	if err != nil {
		return nil, err
	}
	c.store = s
	return c, nil
}

func (c *core) recordSize() int {
	return c.keyStride + alignUp(c.valSize)
}

// newStore allocates an empty store with fresh coefficients.
func (c *core) newStore(capacity int) (store, error) {
	arr, err := vector.New(c.recordSize(), capacity, statusSize(capacity), c.opts.alloc)
	if err != nil {
		return store{}, fmt.Errorf("table: allocating %d slots: %w", capacity, err)
	}
	sl := slots(arr.Header())
	bitfield.Init(sl)
	return store{arr: arr, slots: sl, coeff: newCoefficients(c.rng)}, nil
}

func (c *core) key(s *store, i int) []byte {
	return s.arr.Get(i)[:c.keySize]
}

func (c *core) value(s *store, i int) []byte {
	return s.arr.Get(i)[c.keyStride : c.keyStride+c.valSize]
}

func (c *core) mustKey(key []byte) {
	if len(key) != c.keySize {
		panic(fmt.Sprintf("table: got a %d byte key, want %d bytes", len(key), c.keySize))
	}
}

func (c *core) observeProbe(op Op, steps int) {
	if c.opts.observer != nil {
		c.opts.observer.ObserveProbe(op, steps)
	}
}

// probe walks the linear probe chain of key in s. If a live record equal to
// key is on the chain it returns its index and found. Otherwise it returns
// the first reusable slot on the chain, or -1 if every slot is in use. An
// unused slot ends the chain; tombstones are remembered but stepped over so
// that an equal record further on is still found.
func (c *core) probe(s *store, key []byte, h uint64) (index int, found bool, steps int) {
	capacity := s.arr.Capacity()
	start := s.coeff.home(h, capacity)
	free := -1
	for i := 0; i < capacity; i++ {
		j := start + i
		if j >= capacity {
			j -= capacity
		}
		switch s.slots.test(j) {
		case Unused:
			if free < 0 {
				free = j
			}
			return free, false, i + 1
		case Deleted:
			if free < 0 {
				free = j
			}
		case Used:
			if bytes.Equal(c.key(s, j), key) {
				return j, true, i + 1
			}
		}
	}
	return free, false, capacity
}

func (c *core) place(s *store, i int, key, val []byte) {
	copy(s.arr.Get(i)[:c.keySize], key)
	copy(c.value(s, i), val)
	s.slots.set(i, Used)
	s.count++
}

func (c *core) contains(key []byte) bool {
	c.mustKey(key)
	_, found, steps := c.probe(&c.store, key, c.hash(key))
	c.observeProbe(OpContains, steps)
	return found
}

// lookup returns the index of key's live record or -1.
func (c *core) lookup(key []byte) int {
	c.mustKey(key)
	i, found, steps := c.probe(&c.store, key, c.hash(key))
	c.observeProbe(OpContains, steps)
	if !found {
		return -1
	}
	return i
}

// insert adds key with val unless key is present, in which case val
// overwrites the stored value if overwrite is set. It reports whether a new
// record was added. When no slot is free the table doubles and the insert
// is retried once against the new storage.
func (c *core) insert(key, val []byte, overwrite bool) (bool, error) {
	c.mustKey(key)
	h := c.hash(key)
	i, found, steps := c.probe(&c.store, key, h)
	c.observeProbe(OpInsert, steps)
	if found {
		if overwrite {
			copy(c.value(&c.store, i), val)
		}
		return false, nil
	}
	if i < 0 {
		if err := c.grow(); err != nil {
			return false, err
		}
		i, _, _ = c.probe(&c.store, key, h)
	}
	c.place(&c.store, i, key, val)
	return true, nil
}

func (c *core) remove(key []byte) bool {
	c.mustKey(key)
	i, found, steps := c.probe(&c.store, key, c.hash(key))
	c.observeProbe(OpRemove, steps)
	if !found {
		return false
	}
	c.slots.set(i, Deleted)
	c.count--
	return true
}

// removeFunc tombstones every live slot whose index satisfies pred. It scans
// in slot order; no probe chain is consulted since only status bits change.
func (c *core) removeFunc(pred func(i int) bool) int {
	n := 0
	for i, capacity := 0, c.arr.Capacity(); i < capacity; i++ {
		if c.slots.test(i) == Used && pred(i) {
			c.slots.set(i, Deleted)
			n++
		}
	}
	c.count -= n
	return n
}

// each calls fn with the index of every live slot until fn returns false.
func (c *core) each(fn func(i int) bool) {
	for i, capacity := 0, c.arr.Capacity(); i < capacity; i++ {
		if c.slots.test(i) == Used && !fn(i) {
			return
		}
	}
}

// snapshot copies size bytes at offset off of every live record into a new
// array of exactly count elements, in slot order.
func (c *core) snapshot(off, size int) (*vector.Array, error) {
	out, err := vector.New(size, c.count, 0, c.opts.alloc)
	if err != nil {
		return nil, fmt.Errorf("table: snapshot of %d records: %w", c.count, err)
	}
	n := 0
	c.each(func(i int) bool {
		out.Set(n, c.arr.Get(i)[off:off+size])
		n++
		return true
	})
	return out, nil
}

// clone returns an independent copy with the same layout. The copy gets its
// own random source, derived from this one.
func (c *core) clone() (*core, error) {
	arr, err := c.arr.Clone()
	if err != nil {
		return nil, fmt.Errorf("table: cloning %d slots: %w", c.arr.Capacity(), err)
	}
	n := *c
	n.rng = rand.New(rand.NewSource(c.rng.Uint64()))
	n.store = store{arr: arr, slots: slots(arr.Header()), coeff: c.coeff, count: c.count}
	return &n, nil
}

func (c *core) release() {
	if c.arr != nil {
		c.arr.Release()
		c.store = store{}
	}
}

// Stats describes the occupancy of a table.
type Stats struct {
	Len     int // live records
	Cap     int // slots
	Deleted int // tombstones
	// MaxProbe is the longest probe needed to reach a live record, counting
	// its home slot as 1.
	MaxProbe int
}

// LoadFactor returns Len/Cap.
func (s Stats) LoadFactor() float64 {
	if s.Cap == 0 {
		return 0
	}
	return float64(s.Len) / float64(s.Cap)
}

func (c *core) stats() Stats {
	capacity := c.arr.Capacity()
	st := Stats{Len: c.count, Cap: capacity}
	for i := 0; i < capacity; i++ {
		switch c.slots.test(i) {
		case Deleted:
			st.Deleted++
		case Used:
			home := c.coeff.home(c.hash(c.key(&c.store, i)), capacity)
			if d := (i-home+capacity)%capacity + 1; d > st.MaxProbe {
				st.MaxProbe = d
			}
		}
	}
	return st
}
