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

// Exp2 approximates 2^x. The input is clamped to [-126.99999, 129], split
// into an integer part i = roundToEven(x - 0.5) and a fraction f = x - i,
// and the result is 2^i (built directly in the exponent field) times P(f).
//
// Inputs at or above 128 produce +Inf and inputs at the lower edge produce
// zero; the clamp keeps both edges free of NaN. A NaN input is clamped to
// the upper edge.
func (e *Engine[F, I, O]) Exp2(x F) F {
	ops := e.ops
	x = ops.Max(ops.Min(x, e.exp2Max), e.exp2Min)

	ipart := ops.ConvertToInt(ops.RoundToEven(ops.Sub(x, e.half)))
	fpart := ops.Sub(x, ops.ConvertToFloat(ipart))

	scale := ops.AsFloat(ops.ShiftLeft23(ops.AddInt(ipart, e.bias)))
	return ops.Mul(scale, e.poly(fpart, &e.exp2))
}
