// Copyright 2025 go-highway Authors
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

package hwy

// ProcessWithTail is a helper for processing arrays with SIMD that handles
// both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector of w lanes (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of w
//
// Example:
//
//	hwy.ProcessWithTail(len(dst), ops.Width(),
//	    func(offset int) {
//	        ops.Store(ops.Mul(ops.Load(src[offset:]), k), dst[offset:])
//	    },
//	    func(offset, count int) {
//	        var buf [hwy.MaxWidth]float32
//	        copy(buf[:count], src[offset:])
//	        ops.Store(ops.Mul(ops.Load(buf[:]), k), buf[:])
//	        copy(dst[offset:offset+count], buf[:count])
//	    },
//	)
func ProcessWithTail(size int, w Width, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := w.Lanes()

	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	remaining := size % lanes
	if remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}

// AlignedSize rounds up size to the next multiple of w lanes.
// This is useful for choosing row strides of buffers processed with SIMD.
func AlignedSize(size int, w Width) int {
	lanes := w.Lanes()
	if lanes <= 0 {
		return size
	}
	return ((size + lanes - 1) / lanes) * lanes
}
