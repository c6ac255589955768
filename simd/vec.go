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

package simd

// maxVecLanes is the lane count of the widest register: 64 int8 lanes at
// AVX-512.
const maxVecLanes = 64

// Vec is one register's worth of T. Lanes past NumLanes are zero and never
// stored. Arithmetic is lane-wise with Go's fixed-width semantics: integers
// wrap in two's complement, floats follow IEEE-754.
type Vec[T Lanes] struct {
	data [maxVecLanes]T
	n    int
}

// NumLanes returns the number of active lanes.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Lane returns lane i.
func (v Vec[T]) Lane(i int) T {
	return v.data[:v.n][i]
}

// Zero returns a full-width vector of zeros.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{n: MaxLanes[T]()}
}

// Set returns a full-width vector with every lane set to value.
func Set[T Lanes](value T) Vec[T] {
	v := Zero[T]()
	for i := range v.n {
		v.data[i] = value
	}
	return v
}

// Load reads up to MaxLanes[T]() elements from src. A shorter src yields a
// partial vector with len(src) lanes.
func Load[T Lanes](src []T) Vec[T] {
	v := Vec[T]{n: min(len(src), MaxLanes[T]())}
	copy(v.data[:v.n], src)
	return v
}

// Store writes the active lanes of v to dst, stopping at len(dst).
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.data[:v.n])
}

// Add returns a + b lane-wise over the lanes both vectors have.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] + b.data[i]
	}
	return r
}

// Sub returns a - b lane-wise over the lanes both vectors have.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] - b.data[i]
	}
	return r
}

// Mul returns a * b lane-wise over the lanes both vectors have.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] * b.data[i]
	}
	return r
}
