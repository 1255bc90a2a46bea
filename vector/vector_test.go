// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

import (
	"bytes"
	"errors"
	"testing"
)

func TestLayout(t *testing.T) {
	a, err := New(4, 3, 8, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := len(a.Header()), 8; got != want {
		t.Errorf("header: got %d bytes, want %d", got, want)
	}
	if got, want := a.Capacity(), 3; got != want {
		t.Errorf("capacity: got %d, want %d", got, want)
	}
	if got, want := a.ElemSize(), 4; got != want {
		t.Errorf("element size: got %d, want %d", got, want)
	}
	for i := 0; i < a.Capacity(); i++ {
		a.Set(i, []byte{byte(i), byte(i), byte(i), byte(i)})
	}
	copy(a.Header(), "headerXX")
	for i := 0; i < a.Capacity(); i++ {
		if got, want := a.Get(i), bytes.Repeat([]byte{byte(i)}, 4); !bytes.Equal(got, want) {
			t.Errorf("element %d: got %v, want %v", i, got, want)
		}
	}
	if got, want := string(a.Header()), "headerXX"; got != want {
		t.Errorf("header: got %q, want %q", got, want)
	}
	if got, want := len(a.Elements()), 12; got != want {
		t.Errorf("elements: got %d bytes, want %d", got, want)
	}
	// Appending to an element must not spill into its neighbour.
	_ = append(a.Get(0), 0xff)
	if got := a.Get(1)[0]; got != 1 {
		t.Errorf("element 1 clobbered: got %d", got)
	}
}

func TestClone(t *testing.T) {
	a, err := New(2, 2, 1, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.Set(1, []byte{7, 8})
	a.Header()[0] = 9
	c, err := a.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	a.Set(1, []byte{0, 0})
	if got, want := c.Get(1), []byte{7, 8}; !bytes.Equal(got, want) {
		t.Errorf("clone element: got %v, want %v", got, want)
	}
	if got, want := c.Header()[0], byte(9); got != want {
		t.Errorf("clone header: got %d, want %d", got, want)
	}
}

func TestBudget(t *testing.T) {
	b := NewBudget(100)
	a, err := New(10, 5, 10, b)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := b.InUse(), 60; got != want {
		t.Errorf("in use: got %d, want %d", got, want)
	}
	if _, err := a.Clone(); !errors.Is(err, ErrAllocation) {
		t.Errorf("Clone over budget: got %v, want %v", err, ErrAllocation)
	}
	if _, err := New(10, 4, 0, b); err != nil {
		t.Errorf("New within budget: %v", err)
	}
	a.Release()
	a.Release()
	if got, want := b.InUse(), 40; got != want {
		t.Errorf("in use after release: got %d, want %d", got, want)
	}
	if got, want := b.Peak(), 100; got != want {
		t.Errorf("peak: got %d, want %d", got, want)
	}
}

func TestSetTooLong(t *testing.T) {
	a, err := New(2, 1, 0, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.Set(0, []byte{1, 2})
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic")
		}
	}()
	a.Set(0, []byte{1, 2, 3})
}
