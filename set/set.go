// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package set

import (
	"fmt"
	"strings"

	"v.io/x/hashset/table"
)

// Set is a set of T values held in a table.Table.
type Set[T any] struct {
	codec Codec[T]
	t     *table.Table
	buf   []byte
}

// New returns an empty set. The options are those of table.New.
func New[T any](codec Codec[T], opts ...table.Option) (*Set[T], error) {
	t, err := table.New(codec.Size(), codec.Hash(), opts...)
	if err != nil {
		return nil, err
	}
	return wrap(codec, t), nil
}

func wrap[T any](codec Codec[T], t *table.Table) *Set[T] {
	return &Set[T]{codec: codec, t: t, buf: make([]byte, codec.Size())}
}

// FromSlice returns a set holding the elements of vs.
func FromSlice[T any](codec Codec[T], vs []T, opts ...table.Option) (*Set[T], error) {
	s, err := New(codec, opts...)
	if err != nil {
		return nil, err
	}
	for _, v := range vs {
		if _, err := s.Insert(v); err != nil {
			s.Release()
			return nil, err
		}
	}
	return s, nil
}

func (s *Set[T]) encode(v T) ([]byte, error) {
	if err := s.codec.Encode(s.buf, v); err != nil {
		return nil, err
	}
	return s.buf, nil
}

// Insert adds v and reports whether it was absent.
func (s *Set[T]) Insert(v T) (bool, error) {
	b, err := s.encode(v)
	if err != nil {
		return false, err
	}
	return s.t.Insert(b)
}

// Contains reports whether v is in s. A value the codec cannot encode is
// never present.
func (s *Set[T]) Contains(v T) bool {
	b, err := s.encode(v)
	return err == nil && s.t.Contains(b)
}

// Remove deletes v and reports whether it was present.
func (s *Set[T]) Remove(v T) bool {
	b, err := s.encode(v)
	return err == nil && s.t.Remove(b)
}

// RemoveFunc deletes every element for which pred returns true and returns
// how many were deleted.
func (s *Set[T]) RemoveFunc(pred func(T) bool) int {
	return s.t.RemoveFunc(func(b []byte) bool { return pred(s.codec.Decode(b)) })
}

// Len returns the number of elements.
func (s *Set[T]) Len() int { return s.t.Len() }

// Cap returns the number of slots in the underlying table.
func (s *Set[T]) Cap() int { return s.t.Cap() }

// Stats returns occupancy statistics of the underlying table.
func (s *Set[T]) Stats() table.Stats { return s.t.Stats() }

// Table returns the underlying table.
func (s *Set[T]) Table() *table.Table { return s.t }

// Range calls fn for every element until fn returns false. The order is
// unspecified.
func (s *Set[T]) Range(fn func(T) bool) {
	s.t.Range(func(b []byte) bool { return fn(s.codec.Decode(b)) })
}

// ToSlice returns the elements of s in unspecified order.
func (s *Set[T]) ToSlice() []T {
	result := make([]T, 0, s.Len())
	s.Range(func(v T) bool {
		result = append(result, v)
		return true
	})
	return result
}

// Clone returns an independent copy of s.
func (s *Set[T]) Clone() (*Set[T], error) {
	t, err := s.t.Clone()
	if err != nil {
		return nil, err
	}
	return wrap(s.codec, t), nil
}

// ShrinkReserve resizes s to hold its elements with the given fraction of
// spare slots.
func (s *Set[T]) ShrinkReserve(reserve float64) error {
	return s.t.ShrinkReserve(reserve)
}

// Rehash moves s into capacity slots with fresh coefficients.
func (s *Set[T]) Rehash(capacity int) error {
	return s.t.Rehash(capacity)
}

// Release returns the storage of s to its allocator.
func (s *Set[T]) Release() { s.t.Release() }

// Union merges other into s. On error s is unchanged.
func (s *Set[T]) Union(other *Set[T]) error {
	return s.t.Union(other.t)
}

// Intersection removes from s the elements not in other.
func (s *Set[T]) Intersection(other *Set[T]) {
	s.t.Intersect(other.t)
}

// Difference removes from s the elements in other.
func (s *Set[T]) Difference(other *Set[T]) {
	s.t.Subtract(other.t)
}

// SymmetricDifference replaces s with the elements in exactly one of s and
// other. On error s is unchanged.
func (s *Set[T]) SymmetricDifference(other *Set[T]) error {
	r, err := table.MakeSymDiff(s.t, other.t)
	if err != nil {
		return err
	}
	s.t.Release()
	s.t = r
	return nil
}

// Union returns a new set holding the elements of a or b.
func Union[T any](a, b *Set[T]) (*Set[T], error) {
	return combine(a, b, table.MakeUnion)
}

// Intersection returns a new set holding the elements in both a and b.
func Intersection[T any](a, b *Set[T]) (*Set[T], error) {
	return combine(a, b, table.MakeIntersection)
}

// Difference returns a new set holding the elements of a not in b.
func Difference[T any](a, b *Set[T]) (*Set[T], error) {
	return combine(a, b, table.MakeDiff)
}

// SymmetricDifference returns a new set holding the elements in exactly one
// of a and b.
func SymmetricDifference[T any](a, b *Set[T]) (*Set[T], error) {
	return combine(a, b, table.MakeSymDiff)
}

func combine[T any](a, b *Set[T], op func(a, b *table.Table) (*table.Table, error)) (*Set[T], error) {
	t, err := op(a.t, b.t)
	if err != nil {
		return nil, err
	}
	return wrap(a.codec, t), nil
}

// String formats s as {e1 e2 ...} in unspecified order.
func (s *Set[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	s.Range(func(v T) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, v)
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
