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

//go:generate go run ../cmd/lanegen -output .

// Float32Ops is the complete set of lane operations a float32 kernel may use
// on a packed vector F and its same-width packed integer I. There is no
// general escape hatch: anything a kernel needs must be expressed here.
//
// Implementations are zero-size values, one per width. Every method works
// lane-wise with no cross-lane dependency.
type Float32Ops[F, I any] interface {
	// Width returns the number of lanes.
	Width() Width

	// Set broadcasts x to every lane.
	Set(x float32) F

	// SetInt broadcasts x to every integer lane.
	SetInt(x int32) I

	// Load reads Width() values from src. src must hold at least that many.
	Load(src []float32) F

	// Store writes Width() values to dst. dst must hold at least that many.
	Store(v F, dst []float32)

	Add(a, b F) F
	Sub(a, b F) F
	Mul(a, b F) F

	// MulAdd returns a*b + c rounded once.
	MulAdd(a, b, c F) F

	// Min returns b in lanes where a < b does not hold.
	Min(a, b F) F

	// Max returns b in lanes where a > b does not hold.
	Max(a, b F) F

	// RoundToEven rounds to the nearest integer, ties to even. Valid for
	// |x| < 2^22, which covers every use in this module.
	RoundToEven(a F) F

	// ConvertToInt converts integral float lanes to integers.
	ConvertToInt(a F) I

	// ConvertToFloat converts signed integer lanes to float.
	ConvertToFloat(a I) F

	// AsInt reinterprets the float bits as integers without conversion.
	AsInt(a F) I

	// AsFloat reinterprets the integer bits as floats without conversion.
	AsFloat(a I) F

	AndInt(a, b I) I
	OrInt(a, b I) I
	AddInt(a, b I) I
	SubInt(a, b I) I

	// ShiftLeft23 shifts each integer lane left by the float32 mantissa
	// width (23 bits).
	ShiftLeft23(a I) I

	// ShiftRight23 shifts each integer lane right by 23 bits. Callers only
	// shift values with the sign bit clear, so logical and arithmetic
	// shifts agree.
	ShiftRight23(a I) I
}
