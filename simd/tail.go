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

// ProcessWithTail splits [0, size) into register-sized blocks. fullFn gets
// the offset of each block of MaxLanes[T]() elements, and tailFn gets the
// offset and length of the short block at the end, if any. Nothing at or
// past size is handed out.
//
// Paired with Load and Store, a partial tail needs no special casing:
//
//	simd.ProcessWithTail[int32](n,
//	    func(offset int) {
//	        simd.Store(simd.Sub(simd.Load(a[offset:]), simd.Load(b[offset:])), dst[offset:])
//	    },
//	    func(offset, count int) {
//	        end := offset + count
//	        simd.Store(simd.Sub(simd.Load(a[offset:end]), simd.Load(b[offset:end])), dst[offset:end])
//	    },
//	)
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := MaxLanes[T]()
	offset := 0
	for ; offset+lanes <= size; offset += lanes {
		fullFn(offset)
	}
	if offset < size {
		tailFn(offset, size-offset)
	}
}
