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

import "github.com/ajroetker/go-pixkern/hwy"

// Engine evaluates the power approximation on one lane implementation.
// It holds every constant already broadcast to the lane width, so the hot
// path never re-broadcasts. An Engine is immutable and safe for concurrent
// use.
type Engine[F, I any, O hwy.Float32Ops[F, I]] struct {
	ops O

	expMask  I
	mantMask I
	bias     I
	oneBits  I

	one     F
	half    F
	exp2Max F
	exp2Min F

	log2 [6]F
	exp2 [6]F
}

// NewEngine builds an engine for the lane implementation O.
//
//	e := math.NewEngine[hwy.F32x8, hwy.I32x8, hwy.F32x8Ops]()
func NewEngine[F, I any, O hwy.Float32Ops[F, I]]() *Engine[F, I, O] {
	var ops O
	e := &Engine[F, I, O]{
		ops:      ops,
		expMask:  ops.SetInt(expMask),
		mantMask: ops.SetInt(mantMask),
		bias:     ops.SetInt(expBias),
		oneBits:  ops.SetInt(oneBits),
		one:      ops.Set(1),
		half:     ops.Set(0.5),
		exp2Max:  ops.Set(exp2Max),
		exp2Min:  ops.Set(exp2Min),
	}
	for i := range e.log2 {
		e.log2[i] = ops.Set(log2Coeffs[i])
		e.exp2[i] = ops.Set(exp2Coeffs[i])
	}
	return e
}

// Width returns the lane count of the engine.
func (e *Engine[F, I, O]) Width() hwy.Width {
	return e.ops.Width()
}

// Bits reinterprets the float lanes as their raw IEEE-754 bit patterns.
func (e *Engine[F, I, O]) Bits(v F) I {
	return e.ops.AsInt(v)
}

// Exponent returns the unbiased binary exponent of each lane as a float:
// ((bits & 0x7F800000) >> 23) - 127.
func (e *Engine[F, I, O]) Exponent(v F) F {
	biased := e.ops.ShiftRight23(e.ops.AndInt(e.ops.AsInt(v), e.expMask))
	return e.ops.ConvertToFloat(e.ops.SubInt(biased, e.bias))
}

// Mantissa returns each lane with its exponent replaced by zero, which is
// the significand in [1, 2) for normal inputs.
func (e *Engine[F, I, O]) Mantissa(v F) F {
	m := e.ops.AndInt(e.ops.AsInt(v), e.mantMask)
	return e.ops.AsFloat(e.ops.OrInt(m, e.oneBits))
}

// poly evaluates c[0] + x*(c[1] + ... + x*c[5]).
func (e *Engine[F, I, O]) poly(x F, c *[6]F) F {
	return Poly5[F, I, O](e.ops, x, c[0], c[1], c[2], c[3], c[4], c[5])
}

// Portable engines, usable on every CPU.
var (
	ScalarEngine = NewEngine[float32, uint32, hwy.ScalarOps]()
	EngineX4     = NewEngine[hwy.F32x4, hwy.I32x4, hwy.F32x4Ops]()
	EngineX8     = NewEngine[hwy.F32x8, hwy.I32x8, hwy.F32x8Ops]()
	EngineX16    = NewEngine[hwy.F32x16, hwy.I32x16, hwy.F32x16Ops]()
)
