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

package hwy

import "math"

// Per-lane primitives shared by the pure Go lane implementations, so every
// portable width rounds exactly like the scalar one.

// FMA32 returns a*b + c. The float32 product is exact in float64, so the
// only roundings are the float64 sum and the final float32 conversion.
func FMA32(a, b, c float32) float32 {
	return float32(math.FMA(float64(a), float64(b), float64(c)))
}

// RoundToEven32 rounds x to the nearest integer, ties to even.
func RoundToEven32(x float32) float32 {
	return float32(math.RoundToEven(float64(x)))
}

// Min32 mirrors MINPS: it returns b unless a < b.
func Min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max32 mirrors MAXPS: it returns b unless a > b.
func Max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// ScalarOps is the one-lane Float32Ops implementation. Integer lanes are
// uint32 so right shifts are logical and bit casts are math.Float32bits.
type ScalarOps struct{}

var _ Float32Ops[float32, uint32] = ScalarOps{}

func (ScalarOps) Width() Width                    { return Width1 }
func (ScalarOps) Set(x float32) float32           { return x }
func (ScalarOps) SetInt(x int32) uint32           { return uint32(x) }
func (ScalarOps) Load(src []float32) float32      { return src[0] }
func (ScalarOps) Store(v float32, dst []float32)  { dst[0] = v }
func (ScalarOps) Add(a, b float32) float32        { return a + b }
func (ScalarOps) Sub(a, b float32) float32        { return a - b }
func (ScalarOps) Mul(a, b float32) float32        { return float32(a * b) }
func (ScalarOps) MulAdd(a, b, c float32) float32  { return FMA32(a, b, c) }
func (ScalarOps) Min(a, b float32) float32        { return Min32(a, b) }
func (ScalarOps) Max(a, b float32) float32        { return Max32(a, b) }
func (ScalarOps) RoundToEven(a float32) float32   { return RoundToEven32(a) }
func (ScalarOps) ConvertToInt(a float32) uint32   { return uint32(int32(a)) }
func (ScalarOps) ConvertToFloat(a uint32) float32 { return float32(int32(a)) }
func (ScalarOps) AsInt(a float32) uint32          { return math.Float32bits(a) }
func (ScalarOps) AsFloat(a uint32) float32        { return math.Float32frombits(a) }
func (ScalarOps) AndInt(a, b uint32) uint32       { return a & b }
func (ScalarOps) OrInt(a, b uint32) uint32        { return a | b }
func (ScalarOps) AddInt(a, b uint32) uint32       { return a + b }
func (ScalarOps) SubInt(a, b uint32) uint32       { return a - b }
func (ScalarOps) ShiftLeft23(a uint32) uint32     { return a << 23 }
func (ScalarOps) ShiftRight23(a uint32) uint32    { return a >> 23 }
