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

// Poly5 evaluates the degree-5 polynomial
//
//	c0 + x*(c1 + x*(c2 + x*(c3 + x*(c4 + x*c5))))
//
// in Horner order, innermost term first, with one fused multiply-add per
// step. The order is fixed: reassociating changes results in the last ulp.
//
// ops is taken as the concrete lane type O, not the interface, so each
// width calls its own methods directly.
func Poly5[F, I any, O hwy.Float32Ops[F, I]](ops O, x, c0, c1, c2, c3, c4, c5 F) F {
	p := ops.MulAdd(c5, x, c4)
	p = ops.MulAdd(p, x, c3)
	p = ops.MulAdd(p, x, c2)
	p = ops.MulAdd(p, x, c1)
	return ops.MulAdd(p, x, c0)
}
