// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package set_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"

	"v.io/x/hashset/set"
)

func TestMap(t *testing.T) {
	m, err := set.NewMap(set.FixedString(8), set.Integer[int32]())
	if err != nil {
		t.Fatal(err)
	}
	for i, k := range []string{"zero", "one", "two", "three"} {
		if added, err := m.Put(k, int32(i)); err != nil || !added {
			t.Fatalf("Put(%q): got %v, %v", k, added, err)
		}
	}
	if added, _ := m.Put("one", 100); added {
		t.Errorf("Put of a present key succeeded")
	}
	if v, ok := m.Get("one"); !ok || v != 1 {
		t.Errorf("got %v, %v, want 1, true", v, ok)
	}
	if ok, err := m.Update("two", 22); err != nil || !ok {
		t.Errorf("Update: got %v, %v", ok, err)
	}
	if ok, _ := m.Update("four", 4); ok {
		t.Errorf("Update of an absent key succeeded")
	}
	if added, err := m.Upsert("four", 4); err != nil || !added {
		t.Errorf("Upsert: got %v, %v", added, err)
	}
	if _, err := m.Upsert("much too long", 1); !errors.Is(err, set.ErrTooLong) {
		t.Errorf("got %v, want %v", err, set.ErrTooLong)
	}
	if _, ok := m.Get("much too long"); ok {
		t.Errorf("Get of an unencodable key succeeded")
	}
	if !m.Delete("zero") || m.Contains("zero") {
		t.Errorf("Delete failed")
	}

	want := map[string]int32{"one": 1, "two": 22, "three": 3, "four": 4}
	got := map[string]int32{}
	keys, values := m.Keys(), m.Values()
	for i := range keys {
		got[keys[i]] = values[i]
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	if got, want := m.DeleteFunc(func(_ string, v int32) bool { return v > 3 }), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if diff := cmp.Diff([]string{"one", "three"}, m.Keys(), cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestMapCloneGrow(t *testing.T) {
	m, err := set.NewMap(set.UUID, set.Float[float64]())
	if err != nil {
		t.Fatal(err)
	}
	ids := make([]uuid.UUID, 300)
	for i := range ids {
		ids[i] = uuid.New()
		if _, err := m.Put(ids[i], float64(i)/2); err != nil {
			t.Fatal(err)
		}
	}
	if got, want := m.Cap(), 512; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	c, err := m.Clone()
	if err != nil {
		t.Fatal(err)
	}
	m.Release()
	if err := c.ShrinkReserve(0.5); err != nil {
		t.Fatal(err)
	}
	if got, want := c.Cap(), 450; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for i, id := range ids {
		if v, ok := c.Get(id); !ok || v != float64(i)/2 {
			t.Errorf("Get(%v): got %v, %v, want %v", id, v, ok, float64(i)/2)
		}
	}
	n := 0
	c.Range(func(uuid.UUID, float64) bool {
		n++
		return true
	})
	if got, want := n, c.Len(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
