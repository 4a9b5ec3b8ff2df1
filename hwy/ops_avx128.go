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

// AVX128Ops is the 4-lane Float32Ops implementation on XMM registers with
// VEX-encoded instructions and FMA3. SSE2 alone is not enough: only call
// it when Caps.Has128 and Caps.HasFMA are both set.
type AVX128Ops struct{}

var _ Float32Ops[archsimd.Float32x4, archsimd.Int32x4] = AVX128Ops{}

func (AVX128Ops) Width() Width { return Width4 }

func (AVX128Ops) Set(x float32) archsimd.Float32x4 {
	return archsimd.BroadcastFloat32x4(x)
}

func (AVX128Ops) SetInt(x int32) archsimd.Int32x4 {
	return archsimd.BroadcastInt32x4(x)
}

func (AVX128Ops) Load(src []float32) archsimd.Float32x4 {
	return archsimd.LoadFloat32x4Slice(src)
}

func (AVX128Ops) Store(v archsimd.Float32x4, dst []float32) {
	v.StoreSlice(dst)
}

func (AVX128Ops) Add(a, b archsimd.Float32x4) archsimd.Float32x4 { return a.Add(b) }
func (AVX128Ops) Sub(a, b archsimd.Float32x4) archsimd.Float32x4 { return a.Sub(b) }
func (AVX128Ops) Mul(a, b archsimd.Float32x4) archsimd.Float32x4 { return a.Mul(b) }
func (AVX128Ops) Min(a, b archsimd.Float32x4) archsimd.Float32x4 { return a.Min(b) }
func (AVX128Ops) Max(a, b archsimd.Float32x4) archsimd.Float32x4 { return a.Max(b) }

// MulAdd uses VFMADD on XMM: a*b + c with a single rounding.
func (AVX128Ops) MulAdd(a, b, c archsimd.Float32x4) archsimd.Float32x4 {
	return a.MulAdd(b, c)
}

// RoundToEven uses VROUNDPS in nearest-even mode.
func (AVX128Ops) RoundToEven(a archsimd.Float32x4) archsimd.Float32x4 {
	return a.RoundToEven()
}

func (AVX128Ops) ConvertToInt(a archsimd.Float32x4) archsimd.Int32x4 {
	return a.ConvertToInt32()
}

func (AVX128Ops) ConvertToFloat(a archsimd.Int32x4) archsimd.Float32x4 {
	return a.ConvertToFloat32()
}

func (AVX128Ops) AsInt(a archsimd.Float32x4) archsimd.Int32x4   { return a.AsInt32x4() }
func (AVX128Ops) AsFloat(a archsimd.Int32x4) archsimd.Float32x4 { return a.AsFloat32x4() }

func (AVX128Ops) AndInt(a, b archsimd.Int32x4) archsimd.Int32x4 { return a.And(b) }
func (AVX128Ops) OrInt(a, b archsimd.Int32x4) archsimd.Int32x4  { return a.Or(b) }
func (AVX128Ops) AddInt(a, b archsimd.Int32x4) archsimd.Int32x4 { return a.Add(b) }
func (AVX128Ops) SubInt(a, b archsimd.Int32x4) archsimd.Int32x4 { return a.Sub(b) }

func (AVX128Ops) ShiftLeft23(a archsimd.Int32x4) archsimd.Int32x4 {
	return a.ShiftAllLeft(23)
}

func (AVX128Ops) ShiftRight23(a archsimd.Int32x4) archsimd.Int32x4 {
	return a.ShiftAllRight(23)
}
