// Copyright 2025 arrayfunc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package kernel

import (
	"math"

	"github.com/m1griffin/arrayfunc-sub006/simd"
)

// Integer applies op to elements [0, n) of an integer type, writing
// dst[i] = left.At(i) op right.At(i).
//
// When checked is true, each result is computed exactly and compared against
// lim before it is stored. The first out-of-range element stops the loop and
// is reported with its index; dst[0:index] hold correct results and
// dst[index:] are not written.
//
// When checked is false the loop always completes and stores Go's native
// fixed-width result, which wraps in two's complement.
//
// dst must have at least n elements, as must any array operand. Elements of
// dst at or beyond n are never written.
func Integer[T simd.Integers](op Op, dst []T, left, right Operand[T], n int, lim Limits, checked bool) Fault {
	if !checked {
		unchecked(op, dst, left, right, n)
		return noFault
	}

	f := nativeFunc[T](op)
	signed := simd.IsSigned[T]()
	for i := range n {
		l, r := left.At(i), right.At(i)
		raw := exact(op, widen(l, signed), widen(r, signed))
		if kind := lim.Check(raw); kind != FaultNone {
			return Fault{Index: i, Kind: kind}
		}
		dst[i] = f(l, r)
	}
	return noFault
}

// Float applies op to elements [0, n) of a floating-point type, writing
// dst[i] = left.At(i) op right.At(i).
//
// When checked is true a NaN or infinite operand stops the loop before the
// operation is performed (FaultNonFiniteInput), and finite operands that
// produce NaN or an infinity stop it after (FaultNonFiniteResult). In both
// cases dst[index:] are not written.
//
// When checked is false IEEE-754 semantics apply unchanged and the loop
// always completes.
func Float[T simd.Floats](op Op, dst []T, left, right Operand[T], n int, checked bool) Fault {
	if !checked {
		unchecked(op, dst, left, right, n)
		return noFault
	}

	f := nativeFunc[T](op)
	for i := range n {
		l, r := left.At(i), right.At(i)
		if IsNonFinite(l) || IsNonFinite(r) {
			return Fault{Index: i, Kind: FaultNonFiniteInput}
		}
		raw := f(l, r)
		if IsNonFinite(raw) {
			return Fault{Index: i, Kind: FaultNonFiniteResult}
		}
		dst[i] = raw
	}
	return noFault
}

// IsNonFinite reports whether x is NaN, +Inf or -Inf.
func IsNonFinite[T simd.Floats](x T) bool {
	return x != x || math.IsInf(float64(x), 0)
}

// unchecked stores native results one register at a time. Broadcast
// scalars are splatted once with simd.Set; array operands are loaded per
// block, and the tail block loads a partial vector.
func unchecked[T simd.Lanes](op Op, dst []T, left, right Operand[T], n int) {
	vf := vecFunc[T](op)
	l, r := left.loader(), right.loader()

	block := func(offset, count int) {
		end := offset + count
		simd.Store(vf(l(offset, end), r(offset, end)), dst[offset:end])
	}
	lanes := simd.MaxLanes[T]()
	simd.ProcessWithTail[T](n,
		func(offset int) { block(offset, lanes) },
		block,
	)
}

// loader returns a function producing the operand's lanes for [start, end).
func (o Operand[T]) loader() func(start, end int) simd.Vec[T] {
	if o.isArray {
		return func(start, end int) simd.Vec[T] {
			return simd.Load(o.array[start:end])
		}
	}
	splat := simd.Set(o.scalar)
	return func(int, int) simd.Vec[T] { return splat }
}

func vecFunc[T simd.Lanes](op Op) func(a, b simd.Vec[T]) simd.Vec[T] {
	switch op {
	case OpAdd:
		return simd.Add[T]
	case OpSub:
		return simd.Sub[T]
	case OpMul:
		return simd.Mul[T]
	default:
		panic("kernel: unknown operator")
	}
}

func nativeFunc[T simd.Lanes](op Op) func(a, b T) T {
	switch op {
	case OpAdd:
		return func(a, b T) T { return a + b }
	case OpSub:
		return func(a, b T) T { return a - b }
	case OpMul:
		return func(a, b T) T { return a * b }
	default:
		panic("kernel: unknown operator")
	}
}
