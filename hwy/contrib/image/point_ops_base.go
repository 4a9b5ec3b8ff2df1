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
	"fmt"

	"github.com/ajroetker/go-pixkern/hwy/contrib/math"
)

// checkPlane panics on a violated buffer contract. These are programming
// errors, so the kernels do not report them as values.
func checkPlane(name string, stride, width, height, length int) {
	if stride < width {
		panic(fmt.Sprintf("image: %s stride %d smaller than width %d", name, stride, width))
	}
	if need := stride*(height-1) + width; length < need {
		panic(fmt.Sprintf("image: %s has %d elements, need %d", name, length, need))
	}
}

// PowPlane computes dst = src^exponent over a width x height plane.
// Each row is handed to the kernel as one buffer: whole vectors are
// processed in place and the remainder goes through the kernel's
// lane-sized scratch buffer.
func PowPlane(k math.Kernel, src []float32, srcStride, width, height int, exponent float32, dst []float32, dstStride int) {
	if width <= 0 || height <= 0 {
		return
	}
	checkPlane("src", srcStride, width, height, len(src))
	checkPlane("dst", dstStride, width, height, len(dst))

	for y := range height {
		s := src[y*srcStride : y*srcStride+width]
		d := dst[y*dstStride : y*dstStride+width]
		k.PowConst(s, exponent, d)
	}
}

// GammaPlane8 applies gamma correction to an 8-bit plane:
//
//	dst = saturate(round(255 * (src/255)^gamma))
//
// Rows are converted to float32 in a scratch row, raised with the kernel
// and converted back. A NaN result stores 0.
func GammaPlane8(k math.Kernel, src []uint8, srcStride, width, height int, gamma float32, dst []uint8, dstStride int) {
	if width <= 0 || height <= 0 {
		return
	}
	checkPlane("src", srcStride, width, height, len(src))
	checkPlane("dst", dstStride, width, height, len(dst))

	row := make([]float32, width)
	for y := range height {
		s := src[y*srcStride : y*srcStride+width]
		for x, v := range s {
			row[x] = float32(v) * (1.0 / 255)
		}
		k.PowConst(row, gamma, row)
		d := dst[y*dstStride : y*dstStride+width]
		for x, v := range row {
			d[x] = Saturate8(v)
		}
	}
}

// Saturate8 maps v in [0, 1] to the nearest 8-bit level. Values outside
// the range saturate and NaN maps to 0.
func Saturate8(v float32) uint8 {
	v = v*255 + 0.5
	switch {
	case v >= 255:
		return 255
	case v > 0:
		return uint8(v)
	default:
		return 0
	}
}

// PowImage computes dst = src^exponent. It does nothing when either image
// is empty or the sizes differ.
func PowImage(k math.Kernel, src *Image[float32], exponent float32, dst *Image[float32]) {
	if src.empty() || dst.empty() || !SameSize(src, dst) {
		return
	}
	PowPlane(k, src.data, src.stride, src.width, src.height, exponent, dst.data, dst.stride)
}

// GammaImage applies GammaPlane8 to an 8-bit image. It does nothing when
// either image is empty or the sizes differ.
func GammaImage(k math.Kernel, src *Image[uint8], gamma float32, dst *Image[uint8]) {
	if src.empty() || dst.empty() || !SameSize(src, dst) {
		return
	}
	GammaPlane8(k, src.data, src.stride, src.width, src.height, gamma, dst.data, dst.stride)
}
