// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"math/bits"

	"golang.org/x/exp/rand"
)

// prime is the modulus of the index mapping.
const prime = 1<<31 - 1

// coefficients map a hash value to a home slot.
type coefficients struct {
	a, b uint64 // a in [1, prime-1], b in [0, prime-1]
}

func newCoefficients(r *rand.Rand) coefficients {
	return coefficients{
		a: r.Uint64n(prime-1) + 1,
		b: r.Uint64n(prime),
	}
}

// home returns ((a*h + b) mod prime) mod capacity. The product is formed in
// 128 bits so no hash value overflows.
func (c coefficients) home(h uint64, capacity int) int {
	hi, lo := bits.Mul64(c.a, h)
	x := bits.Rem64(hi, lo, prime)
	return int((x + c.b) % prime % uint64(capacity))
}
