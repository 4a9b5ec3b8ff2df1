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

// Package hwy provides the lane-level building blocks for the pixel kernels:
// a capability descriptor detected once per process, the vector widths the
// kernels are written for, and one Float32Ops implementation per width.
//
// Kernels are written once against Float32Ops and instantiated per width:
//
//	ops := hwy.F32x8Ops{}
//	a := ops.Load(src)
//	b := ops.MulAdd(a, ops.Set(2), ops.Set(1)) // a*2 + 1
//	ops.Store(b, dst)
//
// Which width to run is decided by the caller from a Caps value:
//
//	caps := hwy.DetectCaps()
//	if caps.Supports(hwy.Width8) {
//	    // use an 8-lane kernel
//	}
package hwy

// Width is the number of 32-bit float lanes processed together by one
// operation. A kernel instance uses exactly one width.
type Width int

const (
	// Width1 is the scalar reference width.
	Width1 Width = 1

	// Width4 is a 128-bit vector (SSE2, NEON).
	Width4 Width = 4

	// Width8 is a 256-bit vector (AVX2).
	Width8 Width = 8

	// Width16 is a 512-bit vector (AVX-512).
	Width16 Width = 16
)

// MaxWidth is the widest lane count any kernel uses. Scratch buffers for
// tail handling are sized to it.
const MaxWidth = int(Width16)

// Lanes returns the number of float32 lanes.
func (w Width) Lanes() int {
	return int(w)
}

// Bytes returns the register width in bytes.
func (w Width) Bytes() int {
	return int(w) * 4
}

// String returns a short name for the width: "scalar", "x4", "x8" or "x16".
func (w Width) String() string {
	switch w {
	case Width1:
		return "scalar"
	case Width4:
		return "x4"
	case Width8:
		return "x8"
	case Width16:
		return "x16"
	default:
		return "unknown"
	}
}

// Widths lists every width in ascending order.
func Widths() []Width {
	return []Width{Width1, Width4, Width8, Width16}
}
