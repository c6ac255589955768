// Package wide provides an integer wide enough to hold the exact sum,
// difference or product of any two 64-bit operands, signed or unsigned.
//
// Overflow predicates compare results in this representation so the
// comparison itself can never wrap.
package wide

import (
	"math/big"
	"math/bits"
	"strconv"
)

// Int is a sign-magnitude integer with a 128-bit magnitude.
// The zero value is 0. Zero is never negative.
type Int struct {
	neg    bool
	hi, lo uint64
}

// FromInt64 returns v as an Int.
func FromInt64(v int64) Int {
	if v < 0 {
		// Two's complement negation in uint64 yields the magnitude, including
		// 1<<63 for math.MinInt64.
		return Int{neg: true, lo: -uint64(v)}
	}
	return Int{lo: uint64(v)}
}

// FromUint64 returns v as an Int.
func FromUint64(v uint64) Int {
	return Int{lo: v}
}

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	switch {
	case x.hi == 0 && x.lo == 0:
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Neg returns -x.
func (x Int) Neg() Int {
	if x.Sign() == 0 {
		return x
	}
	x.neg = !x.neg
	return x
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		lo, carry := bits.Add64(x.lo, y.lo, 0)
		hi, _ := bits.Add64(x.hi, y.hi, carry)
		return Int{neg: x.neg, hi: hi, lo: lo}.norm()
	}
	if cmpMag(x, y) >= 0 {
		hi, lo := subMag(x, y)
		return Int{neg: x.neg, hi: hi, lo: lo}.norm()
	}
	hi, lo := subMag(y, x)
	return Int{neg: y.neg, hi: hi, lo: lo}.norm()
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns x * y. Both magnitudes must fit in 64 bits, which holds for
// every value built by FromInt64 or FromUint64.
func (x Int) Mul(y Int) Int {
	if x.hi != 0 || y.hi != 0 {
		panic("wide: Mul operand exceeds 64 bits")
	}
	hi, lo := bits.Mul64(x.lo, y.lo)
	return Int{neg: x.neg != y.neg, hi: hi, lo: lo}.norm()
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := cmpMag(x, y)
	if x.neg {
		return -c
	}
	return c
}

// String returns the base-10 representation of x.
func (x Int) String() string {
	if x.hi == 0 {
		s := strconv.FormatUint(x.lo, 10)
		if x.neg {
			return "-" + s
		}
		return s
	}
	b := new(big.Int).SetUint64(x.hi)
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(x.lo))
	if x.neg {
		b.Neg(b)
	}
	return b.String()
}

func (x Int) norm() Int {
	if x.hi == 0 && x.lo == 0 {
		x.neg = false
	}
	return x
}

func cmpMag(x, y Int) int {
	switch {
	case x.hi != y.hi:
		if x.hi < y.hi {
			return -1
		}
		return 1
	case x.lo != y.lo:
		if x.lo < y.lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// subMag returns |x| - |y|; the caller guarantees |x| >= |y|.
func subMag(x, y Int) (hi, lo uint64) {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	hi, _ = bits.Sub64(x.hi, y.hi, borrow)
	return hi, lo
}
