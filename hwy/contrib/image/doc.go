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

// Package image applies the power kernels to 2D planes.
//
// A plane is a flat slice addressed as data[y*stride + x] with
// stride >= width. Only the first width elements of each row are read or
// written; the padding between width and stride is left untouched.
//
// # Point Operations
//
//	PowPlane(k, src, srcStride, w, h, e, dst, dstStride)   // dst = src^e
//	GammaPlane8(k, src, srcStride, w, h, g, dst, dstStride) // 8-bit gamma
//
// Each takes the math.Kernel to run, so callers choose the width once:
//
//	k := math.Lookup(hwy.DetectCaps())
//	img := image.NewImage[float32](1920, 1080)
//	out := image.NewImage[float32](1920, 1080)
//	image.PowImage(k, img, 2.2, out)
//
// # Parallel Execution
//
// PowImageParallel and GammaImageParallel split the rows into disjoint
// bands and run them on a workerpool.Pool.
package image
