package kernel

import (
	"math"
	"unsafe"

	"github.com/m1griffin/arrayfunc-sub006/internal/wide"
	"github.com/m1griffin/arrayfunc-sub006/simd"
)

// Limits holds an integer type's representable range in a representation
// that cannot wrap when compared against an exact result.
type Limits struct {
	Min, Max wide.Int
}

// LimitsOf returns the range of T.
func LimitsOf[T simd.Integers]() Limits {
	var zero T
	bits := 8 * uint(unsafe.Sizeof(zero))
	if simd.IsSigned[T]() {
		maxVal := int64(uint64(math.MaxUint64) >> (65 - bits))
		return Limits{
			Min: wide.FromInt64(-maxVal - 1),
			Max: wide.FromInt64(maxVal),
		}
	}
	return Limits{
		Min: wide.FromUint64(0),
		Max: wide.FromUint64(uint64(math.MaxUint64) >> (64 - bits)),
	}
}

// Check returns FaultOverflow if raw > Max, FaultUnderflow if raw < Min and
// FaultNone otherwise. Both bounds are inclusive.
func (l Limits) Check(raw wide.Int) FaultKind {
	if raw.Cmp(l.Max) > 0 {
		return FaultOverflow
	}
	if raw.Cmp(l.Min) < 0 {
		return FaultUnderflow
	}
	return FaultNone
}

func widen[T simd.Integers](v T, signed bool) wide.Int {
	if signed {
		return wide.FromInt64(int64(v))
	}
	return wide.FromUint64(uint64(v))
}

func exact(op Op, l, r wide.Int) wide.Int {
	switch op {
	case OpAdd:
		return l.Add(r)
	case OpSub:
		return l.Sub(r)
	case OpMul:
		return l.Mul(r)
	default:
		panic("kernel: unknown operator")
	}
}
