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

package hwy

import "simd/archsimd"

// roundMagic is 1.5 * 2^23. Adding and subtracting it leaves x rounded to
// the nearest integer (ties to even) for |x| < 2^22.
const roundMagic = 12582912.0

// AVX512Ops is the 16-lane Float32Ops implementation on AVX-512F registers.
// Only call it when Caps.Has512 is set.
type AVX512Ops struct{}

var _ Float32Ops[archsimd.Float32x16, archsimd.Int32x16] = AVX512Ops{}

func (AVX512Ops) Width() Width { return Width16 }

func (AVX512Ops) Set(x float32) archsimd.Float32x16 {
	return archsimd.BroadcastFloat32x16(x)
}

func (AVX512Ops) SetInt(x int32) archsimd.Int32x16 {
	return archsimd.BroadcastInt32x16(x)
}

func (AVX512Ops) Load(src []float32) archsimd.Float32x16 {
	return archsimd.LoadFloat32x16Slice(src)
}

func (AVX512Ops) Store(v archsimd.Float32x16, dst []float32) {
	v.StoreSlice(dst)
}

func (AVX512Ops) Add(a, b archsimd.Float32x16) archsimd.Float32x16 { return a.Add(b) }
func (AVX512Ops) Sub(a, b archsimd.Float32x16) archsimd.Float32x16 { return a.Sub(b) }
func (AVX512Ops) Mul(a, b archsimd.Float32x16) archsimd.Float32x16 { return a.Mul(b) }
func (AVX512Ops) Min(a, b archsimd.Float32x16) archsimd.Float32x16 { return a.Min(b) }
func (AVX512Ops) Max(a, b archsimd.Float32x16) archsimd.Float32x16 { return a.Max(b) }

func (AVX512Ops) MulAdd(a, b, c archsimd.Float32x16) archsimd.Float32x16 {
	return a.MulAdd(b, c)
}

// RoundToEven uses the magic-number trick instead of VRNDSCALEPS.
func (AVX512Ops) RoundToEven(a archsimd.Float32x16) archsimd.Float32x16 {
	m := archsimd.BroadcastFloat32x16(roundMagic)
	return a.Add(m).Sub(m)
}

func (AVX512Ops) ConvertToInt(a archsimd.Float32x16) archsimd.Int32x16 {
	return a.ConvertToInt32()
}

func (AVX512Ops) ConvertToFloat(a archsimd.Int32x16) archsimd.Float32x16 {
	return a.ConvertToFloat32()
}

func (AVX512Ops) AsInt(a archsimd.Float32x16) archsimd.Int32x16   { return a.AsInt32x16() }
func (AVX512Ops) AsFloat(a archsimd.Int32x16) archsimd.Float32x16 { return a.AsFloat32x16() }

func (AVX512Ops) AndInt(a, b archsimd.Int32x16) archsimd.Int32x16 { return a.And(b) }
func (AVX512Ops) OrInt(a, b archsimd.Int32x16) archsimd.Int32x16  { return a.Or(b) }
func (AVX512Ops) AddInt(a, b archsimd.Int32x16) archsimd.Int32x16 { return a.Add(b) }
func (AVX512Ops) SubInt(a, b archsimd.Int32x16) archsimd.Int32x16 { return a.Sub(b) }

func (AVX512Ops) ShiftLeft23(a archsimd.Int32x16) archsimd.Int32x16 {
	return a.ShiftAllLeft(23)
}

func (AVX512Ops) ShiftRight23(a archsimd.Int32x16) archsimd.Int32x16 {
	return a.ShiftAllRight(23)
}
