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

// Package kernel implements the element-wise execution loops behind
// arrayfunc's arithmetic functions.
//
// A kernel applies one binary operator to n elements, reading each side
// through an Operand (an array or a broadcast scalar) and writing into dst.
// In checked mode the loop stops at the first element whose exact result
// does not fit the destination type (integers) or involves NaN/Inf
// (floats). In unchecked mode it stores the native Go result: two's
// complement wraparound for integers, IEEE-754 propagation for floats.
package kernel

import (
	"github.com/m1griffin/arrayfunc-sub006/simd"
)

// Op is a binary arithmetic operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
)

// String returns the operator's function name.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	default:
		return "unknown"
	}
}

// Shape is the role assignment of a call's two primary operands.
type Shape int

const (
	// ArrayScalar computes array[i] op scalar.
	ArrayScalar Shape = iota
	// ScalarArray computes scalar op array[i]. The scalar is the left operand.
	ScalarArray
	// ArrayArray computes array1[i] op array2[i].
	ArrayArray
)

// String returns a short name for the shape.
func (s Shape) String() string {
	switch s {
	case ArrayScalar:
		return "array-scalar"
	case ScalarArray:
		return "scalar-array"
	case ArrayArray:
		return "array-array"
	default:
		return "unknown"
	}
}

// Operand is one side of a binary operation: either an array read at the
// current index or a scalar broadcast to every index.
type Operand[T simd.Lanes] struct {
	array   []T
	scalar  T
	isArray bool
}

// Array returns an operand that reads a[i].
func Array[T simd.Lanes](a []T) Operand[T] {
	return Operand[T]{array: a, isArray: true}
}

// Scalar returns an operand that reads v at every index.
func Scalar[T simd.Lanes](v T) Operand[T] {
	return Operand[T]{scalar: v}
}

// At returns the operand's value for element i.
func (o Operand[T]) At(i int) T {
	if o.isArray {
		return o.array[i]
	}
	return o.scalar
}

// IsArray reports whether the operand is an array.
func (o Operand[T]) IsArray() bool {
	return o.isArray
}

// FaultKind classifies why a checked kernel stopped.
type FaultKind int

const (
	FaultNone FaultKind = iota
	// FaultOverflow means the exact result exceeded the type's maximum.
	FaultOverflow
	// FaultUnderflow means the exact result fell below the type's minimum.
	FaultUnderflow
	// FaultNonFiniteInput means an operand was NaN or ±Inf.
	FaultNonFiniteInput
	// FaultNonFiniteResult means finite operands produced NaN or ±Inf.
	FaultNonFiniteResult
)

// String returns a short description of the fault kind.
func (k FaultKind) String() string {
	switch k {
	case FaultNone:
		return "none"
	case FaultOverflow:
		return "overflow"
	case FaultUnderflow:
		return "underflow"
	case FaultNonFiniteInput:
		return "non-finite input"
	case FaultNonFiniteResult:
		return "non-finite result"
	default:
		return "unknown"
	}
}

// Fault reports the outcome of a kernel run.
// Index is the first faulting element, or -1 when the run completed.
type Fault struct {
	Index int
	Kind  FaultKind
}

// OK reports whether the run completed without a fault.
func (f Fault) OK() bool {
	return f.Kind == FaultNone
}

var noFault = Fault{Index: -1}
