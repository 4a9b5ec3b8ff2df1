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

package parity

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// PowReference64 computes dst[i] = basis[i]^exponent[i] as
// exp(log(b) * e) in float64, with the products formed by one vecmath
// block multiply. It is independent of every float32 code path.
func PowReference64(basis, exponent, dst []float32) {
	n := min(len(basis), len(exponent), len(dst))
	logs := make([]float64, n)
	exps := make([]float64, n)
	for i := range n {
		logs[i] = math.Log(float64(basis[i]))
		exps[i] = float64(exponent[i])
	}
	prod := make([]float64, n)
	vecmath.MulBlock(prod, logs, exps)
	for i, p := range prod {
		dst[i] = float32(math.Exp(p))
	}
}
