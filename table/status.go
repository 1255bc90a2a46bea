// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import "v.io/x/hashset/bitfield"

// Status is the occupancy state of a slot.
type Status uint8

const (
	Unused Status = iota
	Used
	Deleted
)

func (s Status) String() string {
	switch s {
	case Unused:
		return "unused"
	case Used:
		return "used"
	case Deleted:
		return "deleted"
	}
	return "invalid"
}

const statusBits = 2

// slots is the packed per-slot status array stored in a vector header.
type slots []byte

func statusSize(capacity int) int {
	return bitfield.Size(capacity, statusBits)
}

func (s slots) test(i int) Status {
	return Status(bitfield.Test(s, statusBits, i))
}

func (s slots) set(i int, st Status) {
	bitfield.Set(s, statusBits, i, uint8(st))
}
