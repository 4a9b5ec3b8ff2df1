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

var engineAVX512 = sync.OnceValue(func() *Engine[archsimd.Float32x16, archsimd.Int32x16, hwy.AVX512Ops] {
	return NewEngine[archsimd.Float32x16, archsimd.Int32x16, hwy.AVX512Ops]()
})

// Pow_AVX512_F32x16 computes b^e for Float32x16 vectors. Requires AVX-512F.
func Pow_AVX512_F32x16(b, e archsimd.Float32x16) archsimd.Float32x16 {
	return engineAVX512().Pow(b, e)
}

func init() {
	Register(Kernel{
		Name:     "avx512",
		Width:    hwy.Width16,
		Native:   true,
		Priority: 50,
		Pow: func(basis, exponent, dst []float32) {
			engineAVX512().PowSlice(basis, exponent, dst)
		},
		PowConst: func(src []float32, exponent float32, dst []float32) {
			engineAVX512().PowConstSlice(src, exponent, dst)
		},
	})
}
