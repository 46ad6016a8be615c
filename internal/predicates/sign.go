// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package predicates implements the exact-sign orientation, in-circle,
// in-sphere and alignment predicates the rest of the kernel classifies
// topology decisions with, plus the position/side classifications derived
// from them. Results are the mathematical sign of the underlying
// determinant regardless of floating-point rounding: every predicate here
// computes its determinant with exact rational arithmetic (math/big.Rat)
// rather than floating point, so "zero" always means mathematically zero.
package predicates

// Sign is the tri-state result of an exact predicate.
type Sign int

// The three possible exact signs.
const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

func signOf(cmp int) Sign {
	switch {
	case cmp < 0:
		return Negative
	case cmp > 0:
		return Positive
	default:
		return Zero
	}
}

// Opposite returns the sign with flipped orientation, used by callers that
// swap predicate argument order (orient(a,b,c) = -orient(b,a,c)).
func (s Sign) Opposite() Sign {
	return -s
}
