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

// AVX2Ops is the 8-lane Float32Ops implementation on AVX2+FMA registers.
// Only call it when Caps.Has256 is set.
type AVX2Ops struct{}

var _ Float32Ops[archsimd.Float32x8, archsimd.Int32x8] = AVX2Ops{}

func (AVX2Ops) Width() Width { return Width8 }

func (AVX2Ops) Set(x float32) archsimd.Float32x8 {
	return archsimd.BroadcastFloat32x8(x)
}

func (AVX2Ops) SetInt(x int32) archsimd.Int32x8 {
	return archsimd.BroadcastInt32x8(x)
}

func (AVX2Ops) Load(src []float32) archsimd.Float32x8 {
	return archsimd.LoadFloat32x8Slice(src)
}

func (AVX2Ops) Store(v archsimd.Float32x8, dst []float32) {
	v.StoreSlice(dst)
}

func (AVX2Ops) Add(a, b archsimd.Float32x8) archsimd.Float32x8 { return a.Add(b) }
func (AVX2Ops) Sub(a, b archsimd.Float32x8) archsimd.Float32x8 { return a.Sub(b) }
func (AVX2Ops) Mul(a, b archsimd.Float32x8) archsimd.Float32x8 { return a.Mul(b) }
func (AVX2Ops) Min(a, b archsimd.Float32x8) archsimd.Float32x8 { return a.Min(b) }
func (AVX2Ops) Max(a, b archsimd.Float32x8) archsimd.Float32x8 { return a.Max(b) }

// MulAdd uses VFMADD: a*b + c with a single rounding.
func (AVX2Ops) MulAdd(a, b, c archsimd.Float32x8) archsimd.Float32x8 {
	return a.MulAdd(b, c)
}

func (AVX2Ops) RoundToEven(a archsimd.Float32x8) archsimd.Float32x8 {
	return a.RoundToEven()
}

func (AVX2Ops) ConvertToInt(a archsimd.Float32x8) archsimd.Int32x8 {
	return a.ConvertToInt32()
}

func (AVX2Ops) ConvertToFloat(a archsimd.Int32x8) archsimd.Float32x8 {
	return a.ConvertToFloat32()
}

func (AVX2Ops) AsInt(a archsimd.Float32x8) archsimd.Int32x8   { return a.AsInt32x8() }
func (AVX2Ops) AsFloat(a archsimd.Int32x8) archsimd.Float32x8 { return a.AsFloat32x8() }

func (AVX2Ops) AndInt(a, b archsimd.Int32x8) archsimd.Int32x8 { return a.And(b) }
func (AVX2Ops) OrInt(a, b archsimd.Int32x8) archsimd.Int32x8  { return a.Or(b) }
func (AVX2Ops) AddInt(a, b archsimd.Int32x8) archsimd.Int32x8 { return a.Add(b) }
func (AVX2Ops) SubInt(a, b archsimd.Int32x8) archsimd.Int32x8 { return a.Sub(b) }

func (AVX2Ops) ShiftLeft23(a archsimd.Int32x8) archsimd.Int32x8 {
	return a.ShiftAllLeft(23)
}

// ShiftRight23 is an arithmetic shift (VPSRAD); inputs have the sign bit clear.
func (AVX2Ops) ShiftRight23(a archsimd.Int32x8) archsimd.Int32x8 {
	return a.ShiftAllRight(23)
}
