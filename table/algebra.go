// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import "fmt"

func mustMatch(op string, a, b *Table) {
	if a.Size() != b.Size() {
		panic(fmt.Sprintf("table: %s of %d byte and %d byte tables", op, a.Size(), b.Size()))
	}
}

// Union adds every blob of other to t. It is all or nothing: if t has to
// grow and cannot, the error is returned and t is unchanged.
func (t *Table) Union(other *Table) error {
	mustMatch("union", t, other)
	if other.Len() == 0 || t == other {
		return nil
	}
	// With at least other.Len() free slots every insert finds a slot
	// without growing, so merging in place cannot fail half way.
	if t.Cap()-t.Len() >= other.Len() {
		t.merge(other)
		return nil
	}
	stage, err := t.Clone()
	if err != nil {
		return err
	}
	if err := stage.mergeChecked(other); err != nil {
		stage.Release()
		return err
	}
	t.c.arr.Release()
	t.c.store = stage.c.store
	t.c.opts.logger.VI(2).Infof("table: union committed, %d records in %d slots", t.Len(), t.Cap())
	return nil
}

func (t *Table) merge(other *Table) {
	other.Range(func(v []byte) bool {
		t.c.insert(v, nil, false)
		return true
	})
}

func (t *Table) mergeChecked(other *Table) error {
	var err error
	other.Range(func(v []byte) bool {
		_, err = t.Insert(v)
		return err == nil
	})
	return err
}

// Intersect removes from t every blob that is not in other.
func (t *Table) Intersect(other *Table) {
	mustMatch("intersection", t, other)
	t.RemoveFunc(func(v []byte) bool { return !other.Contains(v) })
}

// Subtract removes from t every blob that is in other.
func (t *Table) Subtract(other *Table) {
	mustMatch("difference", t, other)
	if t == other {
		t.RemoveFunc(func([]byte) bool { return true })
		return
	}
	t.RemoveFunc(other.Contains)
}

// MakeUnion returns a new table holding the blobs of a or b.
func MakeUnion(a, b *Table) (*Table, error) {
	mustMatch("union", a, b)
	u, err := a.Clone()
	if err != nil {
		return nil, err
	}
	if err := u.Union(b); err != nil {
		u.Release()
		return nil, err
	}
	return u, nil
}

// MakeIntersection returns a new table holding the blobs in both a and b.
func MakeIntersection(a, b *Table) (*Table, error) {
	mustMatch("intersection", a, b)
	r, err := a.Clone()
	if err != nil {
		return nil, err
	}
	r.Intersect(b)
	return r, nil
}

// MakeDiff returns a new table holding the blobs of a that are not in b.
func MakeDiff(a, b *Table) (*Table, error) {
	mustMatch("difference", a, b)
	r, err := a.Clone()
	if err != nil {
		return nil, err
	}
	r.Subtract(b)
	return r, nil
}

// MakeSymDiff returns a new table holding the blobs in exactly one of a and
// b.
func MakeSymDiff(a, b *Table) (*Table, error) {
	mustMatch("symmetric difference", a, b)
	r, err := MakeUnion(a, b)
	if err != nil {
		return nil, err
	}
	r.RemoveFunc(func(v []byte) bool { return a.Contains(v) && b.Contains(v) })
	return r, nil
}
