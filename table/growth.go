// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"math"
)

// grow doubles the number of slots.
func (c *core) grow() error {
	return c.rehash(2*c.arr.Capacity(), ReasonGrow)
}

// shrinkReserve rehashes into count*(1+reserve) slots, rounded up, and at
// least one. A target too large to address fails with ErrAllocation and
// leaves the table as it was.
func (c *core) shrinkReserve(reserve float64) error {
	if reserve < 0 || math.IsNaN(reserve) || math.IsInf(reserve, 0) {
		panic(fmt.Sprintf("table: reserve factor must be a non-negative number, got %v", reserve))
	}
	want := math.Ceil(float64(c.count) * (1 + reserve))
	if want > float64(c.maxSlots()) {
		return fmt.Errorf("table: shrink target of %g slots is too large: %w", want, ErrAllocation)
	}
	target := int(want)
	if target < c.count {
		panic(fmt.Sprintf("table: shrink target %d is below the record count %d", target, c.count))
	}
	if target < 1 {
		target = 1
	}
	return c.rehash(target, ReasonShrink)
}

// maxSlots is the largest slot count whose records and status bits fit in
// an int.
func (c *core) maxSlots() int {
	return math.MaxInt / (c.recordSize() + 1)
}

// rehash replays every live record into freshly allocated storage of the
// given capacity with new coefficients, then releases the old storage. If
// the allocation fails the table is left as it was.
func (c *core) rehash(capacity int, reason Reason) error {
	if capacity < c.count || capacity <= 0 {
		panic(fmt.Sprintf("table: cannot rehash %d records into %d slots", c.count, capacity))
	}
	next, err := c.newStore(capacity)
	if err != nil {
		return err
	}
	old := c.store
	from := old.arr.Capacity()
	for i := 0; i < from; i++ {
		if old.slots.test(i) != Used {
			continue
		}
		rec := old.arr.Get(i)
		key := rec[:c.keySize]
		// Records are distinct and capacity >= count, so a free slot is
		// always found.
		j, _, _ := c.probe(&next, key, c.hash(key))
		next.arr.Set(j, rec)
		next.slots.set(j, Used)
		next.count++
	}
	old.arr.Release()
	c.store = next

	log := c.opts.logger
	switch reason {
	case ReasonGrow:
		log.VI(1).Infof("table: grew from %d to %d slots holding %d records", from, capacity, c.count)
	default:
		log.VI(2).Infof("table: %s rehash from %d to %d slots holding %d records", reason, from, capacity, c.count)
	}
	if c.opts.observer != nil {
		c.opts.observer.ObserveRehash(reason, from, capacity, c.count)
	}
	return nil
}
