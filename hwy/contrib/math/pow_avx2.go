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

//go:build amd64 && goexperiment.simd

package math

import (
	"simd/archsimd"
	"sync"

	"github.com/ajroetker/go-pixkern/hwy"
)

// engineAVX2 is built on first use so package init never executes AVX2
// instructions on CPUs without them.
var engineAVX2 = sync.OnceValue(func() *Engine[archsimd.Float32x8, archsimd.Int32x8, hwy.AVX2Ops] {
	return NewEngine[archsimd.Float32x8, archsimd.Int32x8, hwy.AVX2Ops]()
})

// Pow_AVX2_F32x8 computes b^e for Float32x8 vectors. Requires AVX2 and FMA.
func Pow_AVX2_F32x8(b, e archsimd.Float32x8) archsimd.Float32x8 {
	return engineAVX2().Pow(b, e)
}

func init() {
	Register(Kernel{
		Name:     "avx2",
		Width:    hwy.Width8,
		Native:   true,
		Priority: 40,
		Pow: func(basis, exponent, dst []float32) {
			engineAVX2().PowSlice(basis, exponent, dst)
		},
		PowConst: func(src []float32, exponent float32, dst []float32) {
			engineAVX2().PowConstSlice(src, exponent, dst)
		},
	})
}
