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

// Log2 approximates log2(x) for x > 0 as e + P(m)*(m - 1), where e and m
// are the exponent and mantissa of x. Non-positive, denormal, Inf and NaN
// inputs are not special-cased.
func (e *Engine[F, I, O]) Log2(x F) F {
	exp := e.Exponent(x)
	m := e.Mantissa(x)
	p := e.poly(m, &e.log2)
	return e.ops.MulAdd(p, e.ops.Sub(m, e.one), exp)
}
