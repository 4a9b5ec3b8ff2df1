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

package image

import (
	"github.com/ajroetker/go-pixkern/hwy/contrib/math"
	"github.com/ajroetker/go-pixkern/hwy/contrib/workerpool"
)

// PowImageParallel is PowImage with the rows split into one band per
// worker of pool.
func PowImageParallel(pool *workerpool.Pool, k math.Kernel, src *Image[float32], exponent float32, dst *Image[float32]) {
	if src.empty() || dst.empty() || !SameSize(src, dst) {
		return
	}
	pool.Rows(src.height, func(y0, y1 int) {
		PowPlane(k, src.band(y0), src.stride, src.width, y1-y0, exponent, dst.band(y0), dst.stride)
	})
}

// gammaBandRows is the band size handed out by GammaImageParallel.
const gammaBandRows = 16

// GammaImageParallel is GammaImage with bands of rows handed out on demand
// to the workers of pool. Each band allocates its own scratch row.
func GammaImageParallel(pool *workerpool.Pool, k math.Kernel, src *Image[uint8], gamma float32, dst *Image[uint8]) {
	if src.empty() || dst.empty() || !SameSize(src, dst) {
		return
	}
	pool.RowsBatched(src.height, gammaBandRows, func(y0, y1 int) {
		GammaPlane8(k, src.band(y0), src.stride, src.width, y1-y0, gamma, dst.band(y0), dst.stride)
	})
}
