// Package numeral provides the arbitrary-precision signed rational value
// type used throughout the Hilbert basis engine.
//
// A Numeral is an immutable value: every arithmetic operation returns a new
// Numeral and never mutates its operands. This makes numerals safe to store
// in shared arenas and index structures without defensive copying.
//
// Features:
//   - Exact arithmetic (no overflow, no rounding)
//   - Total ordering via Cmp
//   - Canonical Key() string for use as a map key (hashing by value)
//   - Parsing of integers and "p/q" fractions
//
// Example:
//
//	a := numeral.FromInt(2)
//	b := numeral.FromFrac(3, 2)
//	sum := a.Add(b)        // 7/2
//	fmt.Println(sum)       // "7/2"
//	if sum.IsPos() {
//		// ...
//	}
package numeral

import (
	"fmt"
	"math/big"
)

// Numeral is an arbitrary-precision signed rational number.
//
// The zero value of Numeral is the number 0 and is ready to use. Numerals
// are immutable; operations return new values.
type Numeral struct {
	r *big.Rat
}

// Zero returns the numeral 0.
func Zero() Numeral {
	return Numeral{}
}

// One returns the numeral 1.
func One() Numeral {
	return FromInt(1)
}

// FromInt returns the numeral for the given integer.
func FromInt(n int64) Numeral {
	if n == 0 {
		return Numeral{}
	}
	return Numeral{r: new(big.Rat).SetInt64(n)}
}

// FromFrac returns the numeral num/den. It panics if den is zero.
func FromFrac(num, den int64) Numeral {
	if den == 0 {
		panic("numeral: zero denominator")
	}
	if num == 0 {
		return Numeral{}
	}
	return Numeral{r: big.NewRat(num, den)}
}

// FromBigRat returns a numeral holding a copy of r.
func FromBigRat(r *big.Rat) Numeral {
	if r.Sign() == 0 {
		return Numeral{}
	}
	return Numeral{r: new(big.Rat).Set(r)}
}

// Parse reads a numeral from its string form. Accepted forms are decimal
// integers ("42", "-7") and fractions ("3/2", "-5/9").
func Parse(s string) (Numeral, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Numeral{}, fmt.Errorf("numeral: cannot parse %q", s)
	}
	return FromBigRat(r), nil
}

// MustParse is Parse that panics on malformed input. Intended for tests
// and literals.
func MustParse(s string) Numeral {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// rat returns the underlying value, substituting a shared zero for the
// zero value. Callers must not mutate the result.
var ratZero = new(big.Rat)

func (n Numeral) rat() *big.Rat {
	if n.r == nil {
		return ratZero
	}
	return n.r
}

// Add returns n + m.
func (n Numeral) Add(m Numeral) Numeral {
	return wrap(new(big.Rat).Add(n.rat(), m.rat()))
}

// Sub returns n - m.
func (n Numeral) Sub(m Numeral) Numeral {
	return wrap(new(big.Rat).Sub(n.rat(), m.rat()))
}

// Mul returns n * m.
func (n Numeral) Mul(m Numeral) Numeral {
	return wrap(new(big.Rat).Mul(n.rat(), m.rat()))
}

// Neg returns -n.
func (n Numeral) Neg() Numeral {
	if n.IsZero() {
		return Numeral{}
	}
	return Numeral{r: new(big.Rat).Neg(n.rat())}
}

// Abs returns the absolute value of n.
func (n Numeral) Abs() Numeral {
	if n.IsNeg() {
		return n.Neg()
	}
	return n
}

func wrap(r *big.Rat) Numeral {
	if r.Sign() == 0 {
		return Numeral{}
	}
	return Numeral{r: r}
}

// Cmp compares n and m, returning -1, 0 or +1.
func (n Numeral) Cmp(m Numeral) int {
	return n.rat().Cmp(m.rat())
}

// Equal reports whether n and m denote the same rational.
func (n Numeral) Equal(m Numeral) bool {
	return n.Cmp(m) == 0
}

// Less reports n < m.
func (n Numeral) Less(m Numeral) bool {
	return n.Cmp(m) < 0
}

// Sign returns -1, 0 or +1 according to the sign of n.
func (n Numeral) Sign() int {
	return n.rat().Sign()
}

// IsZero reports n == 0.
func (n Numeral) IsZero() bool { return n.Sign() == 0 }

// IsPos reports n > 0.
func (n Numeral) IsPos() bool { return n.Sign() > 0 }

// IsNeg reports n < 0.
func (n Numeral) IsNeg() bool { return n.Sign() < 0 }

// IsNonneg reports n >= 0.
func (n Numeral) IsNonneg() bool { return n.Sign() >= 0 }

// IsOne reports n == 1.
func (n Numeral) IsOne() bool {
	return n.r != nil && n.r.Cmp(ratOne) == 0
}

// IsMinusOne reports n == -1.
func (n Numeral) IsMinusOne() bool {
	return n.r != nil && n.r.Cmp(ratMinusOne) == 0
}

var (
	ratOne      = big.NewRat(1, 1)
	ratMinusOne = big.NewRat(-1, 1)
)

// Key returns the canonical string form of n, suitable as a map key.
// Two numerals have equal keys exactly when they are Equal.
func (n Numeral) Key() string {
	return n.rat().RatString()
}

// String renders n as "p" or "p/q" in lowest terms.
func (n Numeral) String() string {
	return n.rat().RatString()
}
