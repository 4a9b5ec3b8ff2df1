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

package math

import (
	stdmath "math"
	"sync"

	"github.com/ajroetker/go-pixkern/hwy"
)

// Pow approximates b^e lane-wise as Exp2(Log2(b) * e). The base must be
// positive; zero, negative and non-finite bases give unspecified results.
func (e *Engine[F, I, O]) Pow(b, exponent F) F {
	return e.Exp2(e.ops.Mul(e.Log2(b), exponent))
}

// PowSlice computes dst[i] = b[i]^exponent[i] for the first
// min(len(basis), len(exponent), len(dst)) elements.
//
// Full vectors are loaded and stored in place. The remainder is staged
// through a lane-sized buffer whose unused lanes hold 1^1.
func (e *Engine[F, I, O]) PowSlice(basis, exponent, dst []float32) {
	n := min(len(basis), len(exponent), len(dst))
	ops := e.ops
	hwy.ProcessWithTail(n, ops.Width(),
		func(i int) {
			ops.Store(e.Pow(ops.Load(basis[i:]), ops.Load(exponent[i:])), dst[i:])
		},
		func(i, count int) {
			bbuf := tailBuffer()
			ebuf := tailBuffer()
			copy(bbuf[:count], basis[i:])
			copy(ebuf[:count], exponent[i:])
			ops.Store(e.Pow(ops.Load(bbuf[:]), ops.Load(ebuf[:])), bbuf[:])
			copy(dst[i:i+count], bbuf[:count])
		},
	)
}

// PowConstSlice computes dst[i] = src[i]^exponent for the first
// min(len(src), len(dst)) elements.
func (e *Engine[F, I, O]) PowConstSlice(src []float32, exponent float32, dst []float32) {
	n := min(len(src), len(dst))
	ops := e.ops
	ve := ops.Set(exponent)
	hwy.ProcessWithTail(n, ops.Width(),
		func(i int) {
			ops.Store(e.Pow(ops.Load(src[i:]), ve), dst[i:])
		},
		func(i, count int) {
			buf := tailBuffer()
			copy(buf[:count], src[i:])
			ops.Store(e.Pow(ops.Load(buf[:]), ve), buf[:])
			copy(dst[i:i+count], buf[:count])
		},
	)
}

func tailBuffer() [hwy.MaxWidth]float32 {
	var buf [hwy.MaxWidth]float32
	for i := range buf {
		buf[i] = 1
	}
	return buf
}

// =============================================================================
// Per-width entry points
// =============================================================================

// PowScalar computes b^e with the one-lane engine.
func PowScalar(b, e float32) float32 {
	return ScalarEngine.Pow(b, e)
}

// Pow_F32x4 computes b^e on 4 lanes.
func Pow_F32x4(b, e hwy.F32x4) hwy.F32x4 {
	return EngineX4.Pow(b, e)
}

// Pow_F32x8 computes b^e on 8 lanes.
func Pow_F32x8(b, e hwy.F32x8) hwy.F32x8 {
	return EngineX8.Pow(b, e)
}

// Pow_F32x16 computes b^e on 16 lanes.
func Pow_F32x16(b, e hwy.F32x16) hwy.F32x16 {
	return EngineX16.Pow(b, e)
}

// =============================================================================
// Reference
// =============================================================================

// PowBase is the reference power function, exp(log(b) * e) evaluated in
// float64 and rounded once to float32.
func PowBase(b, e float32) float32 {
	return float32(stdmath.Exp(stdmath.Log(float64(b)) * float64(e)))
}

// PowBaseSlice applies PowBase element-wise.
func PowBaseSlice(basis, exponent, dst []float32) {
	n := min(len(basis), len(exponent), len(dst))
	for i := range n {
		dst[i] = PowBase(basis[i], exponent[i])
	}
}

// PowConstBaseSlice applies PowBase with a shared exponent.
func PowConstBaseSlice(src []float32, exponent float32, dst []float32) {
	n := min(len(src), len(dst))
	for i := range n {
		dst[i] = PowBase(src[i], exponent)
	}
}

// =============================================================================
// Dispatch
// =============================================================================

var selected = sync.OnceValue(func() Kernel {
	return Lookup(hwy.DetectCaps())
})

// Pow computes dst[i] = basis[i]^exponent[i] with the best kernel for the
// running CPU.
func Pow(basis, exponent, dst []float32) {
	selected().Pow(basis, exponent, dst)
}

// PowConst computes dst[i] = src[i]^exponent with the best kernel for the
// running CPU.
func PowConst(src []float32, exponent float32, dst []float32) {
	selected().PowConst(src, exponent, dst)
}
