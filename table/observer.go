// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

// Op names the probing operation reported to an Observer.
type Op string

const (
	OpInsert   Op = "insert"
	OpContains Op = "contains"
	OpRemove   Op = "remove"
)

// Reason names why a table was rehashed.
type Reason string

const (
	// ReasonGrow is a doubling because an insert found no free slot.
	ReasonGrow Reason = "grow"
	// ReasonShrink is a ShrinkReserve request.
	ReasonShrink Reason = "shrink"
	// ReasonExplicit is a Rehash request.
	ReasonExplicit Reason = "explicit"
)

// Observer receives events from a table. Calls are made synchronously from
// the goroutine using the table.
type Observer interface {
	// ObserveProbe reports the number of slots examined by one operation.
	ObserveProbe(op Op, steps int)
	// ObserveRehash reports a completed rehash of count records from a
	// table of from slots into one of to slots.
	ObserveRehash(reason Reason, from, to, count int)
}
