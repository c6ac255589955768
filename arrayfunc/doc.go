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

// Package arrayfunc provides element-wise arithmetic over typed numeric
// buffers with overflow and NaN/Inf detection.
//
// # Arrays
//
// An Array binds a Go slice to a TypeCode: signed and unsigned 8, 16,
// 32 ("int"), "long" and 64-bit integers, float32 and float64. The code fixes
// the element width and signedness for every operation on the array.
//
//	a := arrayfunc.Of([]int8{100, 101, 102})
//	l, _ := arrayfunc.NewArray(arrayfunc.TypeLong, []int64{1, 2, 3})
//
// # Calling convention
//
// Sub, Add and Mul take two primary operands, at least one of which is an
// array, an optional output array, and up to two options:
//
//	arrayfunc.Sub(a, 2)                        // a[i] -= 2
//	arrayfunc.Sub(2, a)                        // a[i] = 2 - a[i]
//	arrayfunc.Sub(a, b, out)                   // out[i] = a[i] - b[i]
//	arrayfunc.Sub(a, 2, arrayfunc.MaxLen(5))   // only a[0:5]
//	arrayfunc.Sub(a, 2, arrayfunc.MathErrors(true))
//
// # Errors
//
// Malformed calls fail before any element is touched with ErrArgumentCount,
// ErrInvalidShape, ErrTypeMismatch or ErrLength. Arithmetic faults surface as
// *FaultError, which records the first faulting index and unwraps to
// ErrOverflow (integers) or ErrArithmetic (floats):
//
//	var fe *arrayfunc.FaultError
//	if errors.As(err, &fe) {
//	    fmt.Println("stopped at", fe.Index)
//	}
//
// Calls are synchronous and keep no state between invocations. Concurrent
// calls are safe as long as they do not share arrays.
package arrayfunc
