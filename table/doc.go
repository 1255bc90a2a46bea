// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table implements type-erased open-addressing hash containers for
// fixed-width records: Table, a set of byte blobs, and Map, a map from
// fixed-width keys to fixed-width values.
//
// Records live in a single vector.Array whose header region holds a packed
// 2-bit status per slot (unused, used or deleted). A record's home slot is
// ((a*hash + b) mod p) mod capacity with p = 2^31-1 and a, b drawn afresh
// every time storage is allocated, so two tables holding the same records
// generally have different layouts. Collisions are resolved by linear
// probing; removal leaves a tombstone that later probes step over.
//
// A table grows by doubling when an insert finds no free slot and only
// shrinks when asked to with ShrinkReserve or Rehash. Both replace the
// storage wholesale: any slice previously returned by Get, Range or a
// predicate callback is invalid after either. Snapshots returned by Values
// and Keys own their memory and are never invalidated.
//
// Equality is always a byte comparison over the full key width; the hash
// function only picks where probing starts.
//
// Tables are not safe for concurrent use.
package table
