// Package ratvec provides exact vector math over numeral slices.
//
// This package consolidates the vector operations used throughout the
// engine. Use these functions instead of implementing your own to ensure
// consistency and correctness.
//
// Main Functions:
//   - Dot: Exact dot product (the "evaluation" of a vector against an inequality)
//   - Sum: L1 weight of a non-negative vector
//   - Geq: Coordinate-wise >= comparison (the subsumption coordinate test)
//   - Neg: Negated copy (turns a <= constraint into >= form)
//   - Unit: Standard unit vector
package ratvec

import "github.com/orneryd/hilbert/pkg/numeral"

// Vec is a vector of arbitrary-precision rationals.
type Vec = []numeral.Numeral

// Dot calculates the exact dot product of a and b.
// It panics if the vectors differ in length; dimension mismatches are
// programming errors, not data errors.
//
// Example:
//
//	a := ratvec.FromInts(1, 2, 3)
//	b := ratvec.FromInts(4, 5, 6)
//	dot := ratvec.Dot(a, b) // 32
func Dot(a, b Vec) numeral.Numeral {
	if len(a) != len(b) {
		panic("ratvec: dimension mismatch")
	}
	sum := numeral.Zero()
	for i := range a {
		sum = sum.Add(a[i].Mul(b[i]))
	}
	return sum
}

// Sum returns the sum of all coordinates of v. For vectors with
// non-negative coordinates this is the L1 weight.
func Sum(v Vec) numeral.Numeral {
	sum := numeral.Zero()
	for i := range v {
		sum = sum.Add(v[i])
	}
	return sum
}

// Geq reports whether a[i] >= b[i] for every coordinate i.
// It panics if the vectors differ in length.
func Geq(a, b Vec) bool {
	if len(a) != len(b) {
		panic("ratvec: dimension mismatch")
	}
	for i := range a {
		if a[i].Less(b[i]) {
			return false
		}
	}
	return true
}

// Neg returns a negated copy of v. The input is not modified.
func Neg(v Vec) Vec {
	w := make(Vec, len(v))
	for i := range v {
		w[i] = v[i].Neg()
	}
	return w
}

// Clone returns a copy of v.
func Clone(v Vec) Vec {
	w := make(Vec, len(v))
	copy(w, v)
	return w
}

// Equal reports whether a and b have the same length and equal coordinates.
func Equal(a, b Vec) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Unit returns the standard unit vector e_i of length n.
func Unit(n, i int) Vec {
	v := make(Vec, n)
	v[i] = numeral.One()
	return v
}

// FromInts builds a vector from integer coordinates.
//
// Example:
//
//	v := ratvec.FromInts(1, -1, 0)
func FromInts(coords ...int64) Vec {
	v := make(Vec, len(coords))
	for i, c := range coords {
		v[i] = numeral.FromInt(c)
	}
	return v
}

// String renders v as a space-separated coordinate list.
func String(v Vec) string {
	s := ""
	for i := range v {
		if i > 0 {
			s += " "
		}
		s += v[i].String()
	}
	return s
}
