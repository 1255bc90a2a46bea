// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package set implements typed sets and maps of fixed-width values on top of
// the byte-blob tables in v.io/x/hashset/table.
//
// Each element type is described by a Codec, which fixes its width, how it
// is laid out as bytes and how those bytes are hashed. Elements are equal
// when their encodings are equal, so floats compare by bit pattern: 0 and
// -0 are distinct and a NaN equals itself.
//
// For instance, one can use these types as follows:
//
//   s1, _ := set.FromSlice(set.FixedString(8), []string{"a", "b"})
//   s2, _ := set.FromSlice(set.FixedString(8), []string{"b", "c"})
//
//   u, _ := set.Union(s1, s2)        // u == {"a", "b", "c"}
//   i, _ := set.Intersection(s1, s2) // i == {"b"}
//   s1.Difference(s2)                // s1 == {"a"}
//
// Sets and maps are not safe for concurrent use.
package set
