// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"sync/atomic"
	"time"

	"v.io/x/hashset/vector"
	"v.io/x/hashset/vlog"
)

// DefaultCapacity is the number of slots a table starts with unless
// WithCapacity says otherwise.
const DefaultCapacity = 256

// Option configures a Table or Map at construction.
type Option func(*options)

type options struct {
	capacity int
	seed     uint64
	alloc    vector.Allocator
	observer Observer
	logger   vlog.Logger
}

var seedCounter atomic.Uint64

func defaultOptions() options {
	return options{
		capacity: DefaultCapacity,
		seed:     uint64(time.Now().UnixNano()) ^ seedCounter.Add(1)*0x9e3779b97f4a7c15,
		alloc:    vector.Heap,
		logger:   vlog.Log,
	}
}

// WithCapacity sets the initial number of slots. It must be positive.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithSeed makes the index coefficients, including those drawn at every
// later rehash and by clones, a deterministic function of seed.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithAllocator draws all storage, including snapshots and clones, from a.
func WithAllocator(a vector.Allocator) Option {
	return func(o *options) { o.alloc = a }
}

// WithObserver reports probes and rehashes to obs.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithLogger sends the table's log messages to l instead of vlog.Log.
func WithLogger(l vlog.Logger) Option {
	return func(o *options) { o.logger = l }
}
