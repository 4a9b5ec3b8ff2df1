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

package math

import (
	stdmath "math"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-pixkern/hwy"
)

type powFunc func(basis, exponent, dst []float32)

// portableKernels lists the pure Go widths; they run on every CPU.
var portableKernels = []struct {
	name string
	pow  powFunc
}{
	{"scalar", ScalarEngine.PowSlice},
	{"x4", EngineX4.PowSlice},
	{"x8", EngineX8.PowSlice},
	{"x16", EngineX16.PowSlice},
}

func relErr(got, want float32) float64 {
	if want == 0 {
		return stdmath.Abs(float64(got))
	}
	return stdmath.Abs(float64(got)-float64(want)) / stdmath.Abs(float64(want))
}

func randomPowInputs(rng *rand.Rand, n int) (basis, exponent []float32) {
	basis = make([]float32, n)
	exponent = make([]float32, n)
	for i := range basis {
		basis[i] = float32(stdmath.Pow(10, rng.Float64()*6-3))
		exponent[i] = float32(rng.Float64()*6 - 3)
	}
	return basis, exponent
}

func TestPow(t *testing.T) {
	tests := []struct {
		name string
		b, e float32
		want float32
	}{
		{"2^10 = 1024", 2, 10, 1024},
		{"10^0 = 1", 10, 0, 1},
		{"2^3 = 8", 2, 3, 8},
		{"3^2 = 9", 3, 2, 9},
		{"2^-1 = 0.5", 2, -1, 0.5},
		{"4^0.5 = 2", 4, 0.5, 2},
		{"8^(1/3) = 2", 8, 1.0 / 3.0, 2},
		{"1^100 = 1", 1, 100, 1},
		{"e^1 = e", float32(stdmath.E), 1, float32(stdmath.E)},
	}
	for _, k := range portableKernels {
		for _, tt := range tests {
			t.Run(k.name+"/"+tt.name, func(t *testing.T) {
				basis := []float32{tt.b, tt.b, tt.b, tt.b, tt.b, tt.b, tt.b, tt.b, tt.b, tt.b, tt.b, tt.b, tt.b, tt.b, tt.b, tt.b, tt.b}
				exponent := make([]float32, len(basis))
				for i := range exponent {
					exponent[i] = tt.e
				}
				dst := make([]float32, len(basis))
				k.pow(basis, exponent, dst)
				for i, got := range dst {
					if relErr(got, tt.want) > 1e-4 {
						t.Errorf("Pow(%v, %v)[%d] = %v, want %v", tt.b, tt.e, i, got, tt.want)
					}
				}
			})
		}
	}
}

func TestPowAccuracy(t *testing.T) {
	const n = 4099
	rng := rand.New(rand.NewSource(42))
	basis, exponent := randomPowInputs(rng, n)

	for _, k := range portableKernels {
		t.Run(k.name, func(t *testing.T) {
			dst := make([]float32, n)
			k.pow(basis, exponent, dst)

			outliers := 0
			for i := range dst {
				want := PowBase(basis[i], exponent[i])
				rel := relErr(dst[i], want)
				if rel >= 0.01 {
					outliers++
				}
				if rel > 0.05 {
					t.Fatalf("Pow(%v, %v) = %v, want %v (rel %g)", basis[i], exponent[i], dst[i], want, rel)
				}
			}
			if outliers > n/100 {
				t.Errorf("%d of %d results beyond 1%% relative error", outliers, n)
			}
		})
	}
}

func TestPowIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	basis, _ := randomPowInputs(rng, 257)
	for _, k := range portableKernels {
		t.Run(k.name, func(t *testing.T) {
			ones := make([]float32, len(basis))
			for i := range ones {
				ones[i] = 1
			}
			dst := make([]float32, len(basis))
			k.pow(basis, ones, dst)
			for i := range dst {
				if rel := relErr(dst[i], basis[i]); rel > 1e-4 {
					t.Errorf("Pow(%v, 1) = %v (rel %g)", basis[i], dst[i], rel)
				}
			}
		})
	}
}

func TestPowComposition(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const n = 503
	basis := make([]float32, n)
	e1 := make([]float32, n)
	e2 := make([]float32, n)
	e12 := make([]float32, n)
	for i := range basis {
		basis[i] = float32(0.5 + rng.Float64()*3.5)
		e1[i] = float32(rng.Float64()*4 - 2)
		e2[i] = float32(rng.Float64()*4 - 2)
		e12[i] = e1[i] * e2[i]
	}
	for _, k := range portableKernels {
		t.Run(k.name, func(t *testing.T) {
			inner := make([]float32, n)
			nested := make([]float32, n)
			direct := make([]float32, n)
			k.pow(basis, e1, inner)
			k.pow(inner, e2, nested)
			k.pow(basis, e12, direct)
			for i := range nested {
				if rel := relErr(nested[i], direct[i]); rel > 1e-3 {
					t.Errorf("pow(pow(%v, %v), %v) = %v, pow(b, e1*e2) = %v (rel %g)",
						basis[i], e1[i], e2[i], nested[i], direct[i], rel)
				}
			}
		})
	}
}

// TestPowWidthsAgree checks that every portable width produces the same
// bits as the scalar engine, including the tail.
func TestPowWidthsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{1, 3, 4, 5, 15, 16, 17, 31, 33, 100} {
		basis, exponent := randomPowInputs(rng, n)
		want := make([]float32, n)
		ScalarEngine.PowSlice(basis, exponent, want)
		for _, k := range portableKernels[1:] {
			got := make([]float32, n)
			k.pow(basis, exponent, got)
			for i := range got {
				if stdmath.Float32bits(got[i]) != stdmath.Float32bits(want[i]) {
					t.Errorf("%s n=%d [%d]: got %v, want %v", k.name, n, i, got[i], want[i])
				}
			}
		}
	}
}

func TestPowSliceBounds(t *testing.T) {
	basis := []float32{2, 2, 2, 2, 2, 2, 2}
	exponent := []float32{1, 2, 3, 4, 5}
	for _, k := range portableKernels {
		dst := []float32{-1, -1, -1, -1, -1, -1, -1, -1}
		k.pow(basis, exponent, dst)
		for i := 5; i < len(dst); i++ {
			if dst[i] != -1 {
				t.Errorf("%s: dst[%d] = %v, want untouched", k.name, i, dst[i])
			}
		}
		if relErr(dst[4], 32) > 1e-4 {
			t.Errorf("%s: dst[4] = %v, want 32", k.name, dst[4])
		}
	}
}

func TestPowConstSlice(t *testing.T) {
	src := make([]float32, 37)
	for i := range src {
		src[i] = float32(i+1) / 37
	}
	engines := []struct {
		name string
		fn   func(src []float32, e float32, dst []float32)
	}{
		{"scalar", ScalarEngine.PowConstSlice},
		{"x4", EngineX4.PowConstSlice},
		{"x8", EngineX8.PowConstSlice},
		{"x16", EngineX16.PowConstSlice},
	}
	for _, eng := range engines {
		for _, gamma := range []float32{1 / 2.2, 1, 2.2} {
			dst := make([]float32, len(src))
			eng.fn(src, gamma, dst)
			for i := range dst {
				want := PowBase(src[i], gamma)
				if rel := relErr(dst[i], want); rel > 1e-4 {
					t.Errorf("%s: %v^%v = %v, want %v", eng.name, src[i], gamma, dst[i], want)
				}
			}
		}
	}
}

func TestPowEntryPoints(t *testing.T) {
	if got := PowScalar(2, 10); relErr(got, 1024) > 1e-4 {
		t.Errorf("PowScalar(2, 10) = %v, want 1024", got)
	}

	var x4 hwy.F32x4Ops
	v4 := Pow_F32x4(x4.Set(3), x4.Set(2))
	for i, got := range v4 {
		if relErr(got, 9) > 1e-4 {
			t.Errorf("Pow_F32x4 lane %d = %v, want 9", i, got)
		}
	}

	var x8 hwy.F32x8Ops
	v8 := Pow_F32x8(x8.Set(10), x8.Set(0))
	for i, got := range v8 {
		if relErr(got, 1) > 1e-4 {
			t.Errorf("Pow_F32x8 lane %d = %v, want 1", i, got)
		}
	}

	var x16 hwy.F32x16Ops
	v16 := Pow_F32x16(x16.Set(16), x16.Set(0.25))
	for i, got := range v16 {
		if relErr(got, 2) > 1e-4 {
			t.Errorf("Pow_F32x16 lane %d = %v, want 2", i, got)
		}
	}
}

func TestPowDispatch(t *testing.T) {
	basis := []float32{2, 3, 4, 5, 6, 7, 8, 9, 10}
	exponent := []float32{2, 2, 2, 2, 2, 2, 2, 2, 2}
	dst := make([]float32, len(basis))
	Pow(basis, exponent, dst)
	for i := range dst {
		want := basis[i] * basis[i]
		if relErr(dst[i], want) > 1e-4 {
			t.Errorf("Pow(%v, 2) = %v, want %v", basis[i], dst[i], want)
		}
	}

	PowConst(basis, 0.5, dst)
	for i := range dst {
		want := float32(stdmath.Sqrt(float64(basis[i])))
		if relErr(dst[i], want) > 1e-4 {
			t.Errorf("PowConst(%v, 0.5) = %v, want %v", basis[i], dst[i], want)
		}
	}
}
