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
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generator fills buffers with reproducible random data. Each fill draws
// from its own source derived from the seed, so adding a fill does not
// shift the values of the others.
type Generator struct {
	seed  uint64
	extra uint64
}

// NewGenerator returns a generator for seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{seed: seed}
}

func (g *Generator) source() rand.Source {
	g.extra++
	return rand.NewSource(g.seed + g.extra)
}

// Uniform fills dst with values uniform in [lo, hi).
func (g *Generator) Uniform(dst []float32, lo, hi float64) {
	dist := distuv.Uniform{Min: lo, Max: hi, Src: g.source()}
	for i := range dst {
		dst[i] = float32(dist.Rand())
	}
}

// LogUniform fills dst with values whose base-10 logarithm is uniform, so
// every decade of [lo, hi) is equally represented. lo must be positive.
func (g *Generator) LogUniform(dst []float32, lo, hi float64) {
	dist := distuv.Uniform{Min: math.Log10(lo), Max: math.Log10(hi), Src: g.source()}
	for i := range dst {
		dst[i] = float32(math.Pow(10, dist.Rand()))
	}
}

// Bytes fills dst with bytes uniform in [lo, hi].
func (g *Generator) Bytes(dst []uint8, lo, hi uint8) {
	r := rand.New(g.source())
	span := int(hi) - int(lo) + 1
	for i := range dst {
		dst[i] = lo + uint8(r.Intn(span))
	}
}
