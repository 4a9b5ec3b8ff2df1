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

package parity

import (
	"github.com/ajroetker/go-pixkern/hwy/contrib/image"
	"github.com/ajroetker/go-pixkern/hwy/contrib/math"
)

// PowImpl runs the element-wise Pow of k row by row.
func PowImpl(k math.Kernel) Impl[float32] {
	return Impl[float32]{
		Name: k.Name,
		Run: func(in *Inputs, dst Plane[float32]) {
			for y := range in.Dims.Height {
				lo, hi := y*in.Stride, y*in.Stride+in.Dims.Width
				k.Pow(in.Basis[lo:hi], in.Exponent[lo:hi], dst.Row(y))
			}
		},
	}
}

// PowReferenceImpl runs PowReference64 row by row.
func PowReferenceImpl() Impl[float32] {
	return Impl[float32]{
		Name: "reference64",
		Run: func(in *Inputs, dst Plane[float32]) {
			for y := range in.Dims.Height {
				lo, hi := y*in.Stride, y*in.Stride+in.Dims.Width
				PowReference64(in.Basis[lo:hi], in.Exponent[lo:hi], dst.Row(y))
			}
		},
	}
}

// PowConstImpl raises the basis plane to in.Scalar with image.PowPlane.
func PowConstImpl(k math.Kernel) Impl[float32] {
	return Impl[float32]{
		Name: k.Name,
		Run: func(in *Inputs, dst Plane[float32]) {
			image.PowPlane(k, in.Basis, in.Stride, in.Dims.Width, in.Dims.Height, in.Scalar, dst.Data, dst.Stride)
		},
	}
}

// Gamma8Impl gamma-corrects the pixel plane by in.Scalar.
func Gamma8Impl(k math.Kernel) Impl[uint8] {
	return Impl[uint8]{
		Name: k.Name,
		Run: func(in *Inputs, dst Plane[uint8]) {
			image.GammaPlane8(k, in.Pixels, in.Stride, in.Dims.Width, in.Dims.Height, in.Scalar, dst.Data, dst.Stride)
		},
	}
}

// GeneratePow draws bases log-uniformly from [1e-3, 1e3) and exponents
// uniformly from [-3, 3), keeping log2(b)*e well inside the Exp2 window.
func GeneratePow(g *Generator, in *Inputs) {
	g.LogUniform(in.Basis, 1e-3, 1e3)
	g.Uniform(in.Exponent, -3, 3)
}

// GeneratePow8 derives pairs from random bytes: b = (p+1)/256 and
// e = (q-128)/32.
func GeneratePow8(g *Generator, in *Inputs) {
	p := make([]uint8, len(in.Basis))
	q := make([]uint8, len(in.Exponent))
	g.Bytes(p, 0, 255)
	g.Bytes(q, 0, 255)
	for i := range p {
		in.Basis[i] = (float32(p[i]) + 1) / 256
		in.Exponent[i] = (float32(q[i]) - 128) / 32
	}
}

// GeneratePowConst draws bases from [1e-2, 1e2) and a shared exponent
// from [-2, 2).
func GeneratePowConst(g *Generator, in *Inputs) {
	g.LogUniform(in.Basis, 1e-2, 1e2)
	var e [1]float32
	g.Uniform(e[:], -2, 2)
	in.Scalar = e[0]
}

// GenerateGamma8 draws random pixels and a gamma from [0.3, 3).
func GenerateGamma8(g *Generator, in *Inputs) {
	g.Bytes(in.Pixels, 0, 255)
	var gamma [1]float32
	g.Uniform(gamma[:], 0.3, 3)
	in.Scalar = gamma[0]
}

// PowTolerance accepts 1% relative error with up to 10 outliers, none
// beyond 5%.
var PowTolerance = Float(0, 1e-2).WithOutliers(10, 5e-2)

func implsOf[T Sample](ks []math.Kernel, f func(math.Kernel) Impl[T]) []Impl[T] {
	impls := make([]Impl[T], len(ks))
	for i, k := range ks {
		impls[i] = f(k)
	}
	return impls
}

// PowMatrix checks element-wise Pow of every candidate against the
// float64 reference.
func PowMatrix(candidates []math.Kernel, dims []Dims, seed uint64) Matrix[float32] {
	return Matrix[float32]{
		Op:         "pow",
		Dims:       dims,
		Tolerances: []Tolerance{PowTolerance},
		Seed:       seed,
		Generate:   GeneratePow,
		Reference:  PowReferenceImpl(),
		Candidates: implsOf(candidates, PowImpl),
	}
}

// Pow8Matrix checks 8-bit-derived pairs of every candidate against the
// scalar kernel with a counted tolerance of (0, 10), and against the
// float64 reference with PowTolerance.
func Pow8Matrix(scalar math.Kernel, candidates []math.Kernel, dims []Dims, seed uint64) []Matrix[float32] {
	vsScalar := Matrix[float32]{
		Op:         "pow8",
		Dims:       dims,
		Tolerances: []Tolerance{Count(0, 10)},
		Seed:       seed,
		Generate:   GeneratePow8,
		Reference:  PowImpl(scalar),
		Candidates: implsOf(candidates, PowImpl),
	}
	vsReference := vsScalar
	vsReference.Tolerances = []Tolerance{PowTolerance}
	vsReference.Reference = PowReferenceImpl()
	return []Matrix[float32]{vsScalar, vsReference}
}

// PowConstMatrix checks the scalar-exponent 2D path against PowBase.
func PowConstMatrix(candidates []math.Kernel, dims []Dims, seed uint64) Matrix[float32] {
	return Matrix[float32]{
		Op:         "powconst",
		Dims:       dims,
		Tolerances: []Tolerance{PowTolerance},
		Seed:       seed,
		Generate:   GeneratePowConst,
		Reference:  PowConstImpl(math.BaseKernel()),
		Candidates: implsOf(candidates, PowConstImpl),
	}
}

// Gamma8Matrix checks 8-bit gamma correction against PowBase, allowing
// rounding to land one level off.
func Gamma8Matrix(candidates []math.Kernel, dims []Dims, seed uint64) Matrix[uint8] {
	return Matrix[uint8]{
		Op:         "gamma8",
		Dims:       dims,
		Tolerances: []Tolerance{Count(1, 10)},
		Seed:       seed,
		Generate:   GenerateGamma8,
		Reference:  Gamma8Impl(math.BaseKernel()),
		Candidates: implsOf(candidates, Gamma8Impl),
	}
}
