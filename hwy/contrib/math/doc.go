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

// Package math provides the vectorized single precision power kernel and
// the registry used to pick an implementation for the running CPU.
//
// The kernel computes b^e as exp2(log2(b) * e). Both log2 and exp2 are
// approximated with a degree-5 polynomial evaluated in Horner form with
// fused multiply-adds, after splitting the input float into exponent and
// mantissa with bit operations. The relative error is well below 1% for
// moderate exponents; results are not bit-identical to math.Pow.
//
// # Engines
//
// The algorithm is written once on [Engine], which is generic over a
// [hwy.Float32Ops] lane implementation. One engine exists per width:
//
//   - PowScalar(b, e float32) float32
//   - Pow_F32x4(b, e hwy.F32x4) hwy.F32x4
//   - Pow_F32x8(b, e hwy.F32x8) hwy.F32x8
//   - Pow_F32x16(b, e hwy.F32x16) hwy.F32x16
//
// With GOEXPERIMENT=simd on amd64 the native variants are also available:
//
//   - Pow_AVX_F32x4(b, e archsimd.Float32x4) archsimd.Float32x4 (needs FMA)
//   - Pow_AVX2_F32x8(b, e archsimd.Float32x8) archsimd.Float32x8
//   - Pow_AVX512_F32x16(b, e archsimd.Float32x16) archsimd.Float32x16
//
// # Buffer Kernels
//
// Every width is registered as a [Kernel] with an element-wise Pow and a
// scalar-exponent PowConst over []float32. [Lookup] picks the
// highest-priority kernel the given [hwy.Caps] can run:
//
//	k := math.Lookup(hwy.DetectCaps())
//	k.Pow(basis, exponent, dst)
//
// [Pow] and [PowConst] do the same with the capabilities of the running
// process. [PowBase] is the exact reference computed through float64.
package math
