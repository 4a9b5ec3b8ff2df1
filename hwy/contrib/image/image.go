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

	"github.com/ajroetker/go-pixkern/hwy"
)

// Pixel is the set of sample types a plane can hold.
type Pixel interface {
	~float32 | ~uint8
}

// Image is a single-channel 2D plane. Rows start stride elements apart.
type Image[T Pixel] struct {
	data   []T
	width  int
	height int
	stride int
}

// NewImage allocates a zeroed image. The stride is rounded up to a whole
// number of the widest vector, so full-vector loads never straddle rows.
func NewImage[T Pixel](width, height int) *Image[T] {
	if width <= 0 || height <= 0 {
		return &Image[T]{}
	}
	return NewImageStride[T](width, height, hwy.AlignedSize(width, hwy.Width16))
}

// NewImageStride allocates a zeroed image with an explicit stride. A
// stride smaller than width is raised to width.
func NewImageStride[T Pixel](width, height, stride int) *Image[T] {
	if width <= 0 || height <= 0 {
		return &Image[T]{}
	}
	stride = max(stride, width)
	return &Image[T]{
		data:   make([]T, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}
}

// WrapPlane returns an Image backed by data without copying. data must
// hold at least stride*(height-1)+width elements.
func WrapPlane[T Pixel](data []T, width, height, stride int) (*Image[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image: invalid size %dx%d", width, height)
	}
	if stride < width {
		return nil, fmt.Errorf("image: stride %d smaller than width %d", stride, width)
	}
	if need := stride*(height-1) + width; len(data) < need {
		return nil, fmt.Errorf("image: plane has %d elements, need %d", len(data), need)
	}
	return &Image[T]{data: data, width: width, height: height, stride: stride}, nil
}

// Width returns the image width in pixels.
func (img *Image[T]) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image[T]) Height() int {
	return img.height
}

// Stride returns the number of elements between row starts.
func (img *Image[T]) Stride() int {
	return img.stride
}

// Pix returns the backing slice.
func (img *Image[T]) Pix() []T {
	return img.data
}

// Row returns row y limited to the image width, or nil if y is out of
// range.
func (img *Image[T]) Row(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.width]
}

// Fill sets every pixel, padding included, to value.
func (img *Image[T]) Fill(value T) {
	for i := range img.data {
		img.data[i] = value
	}
}

// SameSize reports whether a and b have the same dimensions.
func SameSize[T, U Pixel](a *Image[T], b *Image[U]) bool {
	return a.width == b.width && a.height == b.height
}

func (img *Image[T]) empty() bool {
	return img == nil || img.data == nil || img.width == 0 || img.height == 0
}

// band returns the plane starting at row y0.
func (img *Image[T]) band(y0 int) []T {
	return img.data[y0*img.stride:]
}
