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

package main

// laneTemplate renders one portable fixed-width Float32Ops implementation.
// Imports are left to imports.Process.
const laneTemplate = `// Code generated by lanegen -width {{.N}}. DO NOT EDIT.

package {{.Package}}

// F32x{{.N}} is a packed vector of {{.N}} float32 lanes.
type F32x{{.N}} [{{.N}}]float32

// I32x{{.N}} is a packed vector of {{.N}} 32-bit integer lanes.
type I32x{{.N}} [{{.N}}]uint32

// F32x{{.N}}Ops is the portable {{.N}}-lane Float32Ops implementation.
type F32x{{.N}}Ops struct{}

var _ Float32Ops[F32x{{.N}}, I32x{{.N}}] = F32x{{.N}}Ops{}

func (F32x{{.N}}Ops) Width() Width { return Width{{.N}} }

func (F32x{{.N}}Ops) Set(x float32) F32x{{.N}} {
	var r F32x{{.N}}
	for i := range r {
		r[i] = x
	}
	return r
}

func (F32x{{.N}}Ops) SetInt(x int32) I32x{{.N}} {
	var r I32x{{.N}}
	for i := range r {
		r[i] = uint32(x)
	}
	return r
}

func (F32x{{.N}}Ops) Load(src []float32) F32x{{.N}} {
	return F32x{{.N}}(src[:{{.N}}])
}

func (F32x{{.N}}Ops) Store(v F32x{{.N}}, dst []float32) {
	copy(dst[:{{.N}}], v[:])
}

func (F32x{{.N}}Ops) Add(a, b F32x{{.N}}) F32x{{.N}} {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

func (F32x{{.N}}Ops) Sub(a, b F32x{{.N}}) F32x{{.N}} {
	for i := range a {
		a[i] -= b[i]
	}
	return a
}

func (F32x{{.N}}Ops) Mul(a, b F32x{{.N}}) F32x{{.N}} {
	for i := range a {
		a[i] = float32(a[i] * b[i])
	}
	return a
}

func (F32x{{.N}}Ops) MulAdd(a, b, c F32x{{.N}}) F32x{{.N}} {
	for i := range a {
		a[i] = FMA32(a[i], b[i], c[i])
	}
	return a
}

func (F32x{{.N}}Ops) Min(a, b F32x{{.N}}) F32x{{.N}} {
	for i := range a {
		a[i] = Min32(a[i], b[i])
	}
	return a
}

func (F32x{{.N}}Ops) Max(a, b F32x{{.N}}) F32x{{.N}} {
	for i := range a {
		a[i] = Max32(a[i], b[i])
	}
	return a
}

func (F32x{{.N}}Ops) RoundToEven(a F32x{{.N}}) F32x{{.N}} {
	for i := range a {
		a[i] = RoundToEven32(a[i])
	}
	return a
}

func (F32x{{.N}}Ops) ConvertToInt(a F32x{{.N}}) I32x{{.N}} {
	var r I32x{{.N}}
	for i := range a {
		r[i] = uint32(int32(a[i]))
	}
	return r
}

func (F32x{{.N}}Ops) ConvertToFloat(a I32x{{.N}}) F32x{{.N}} {
	var r F32x{{.N}}
	for i := range a {
		r[i] = float32(int32(a[i]))
	}
	return r
}

func (F32x{{.N}}Ops) AsInt(a F32x{{.N}}) I32x{{.N}} {
	var r I32x{{.N}}
	for i := range a {
		r[i] = math.Float32bits(a[i])
	}
	return r
}

func (F32x{{.N}}Ops) AsFloat(a I32x{{.N}}) F32x{{.N}} {
	var r F32x{{.N}}
	for i := range a {
		r[i] = math.Float32frombits(a[i])
	}
	return r
}

func (F32x{{.N}}Ops) AndInt(a, b I32x{{.N}}) I32x{{.N}} {
	for i := range a {
		a[i] &= b[i]
	}
	return a
}

func (F32x{{.N}}Ops) OrInt(a, b I32x{{.N}}) I32x{{.N}} {
	for i := range a {
		a[i] |= b[i]
	}
	return a
}

func (F32x{{.N}}Ops) AddInt(a, b I32x{{.N}}) I32x{{.N}} {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

func (F32x{{.N}}Ops) SubInt(a, b I32x{{.N}}) I32x{{.N}} {
	for i := range a {
		a[i] -= b[i]
	}
	return a
}

func (F32x{{.N}}Ops) ShiftLeft23(a I32x{{.N}}) I32x{{.N}} {
	for i := range a {
		a[i] <<= 23
	}
	return a
}

func (F32x{{.N}}Ops) ShiftRight23(a I32x{{.N}}) I32x{{.N}} {
	for i := range a {
		a[i] >>= 23
	}
	return a
}
`
