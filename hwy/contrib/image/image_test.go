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
	"testing"

	"github.com/ajroetker/go-pixkern/hwy"
)

func TestNewImage(t *testing.T) {
	img := NewImage[float32](100, 50)

	if img.Width() != 100 {
		t.Errorf("Width: got %d, want 100", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Height: got %d, want 50", img.Height())
	}
	if img.Stride() < 100 || img.Stride()%hwy.MaxWidth != 0 {
		t.Errorf("Stride: got %d, want a multiple of %d >= 100", img.Stride(), hwy.MaxWidth)
	}
	if len(img.Pix()) != img.Stride()*50 {
		t.Errorf("len(Pix): got %d, want %d", len(img.Pix()), img.Stride()*50)
	}
}

func TestNewImageZeroDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {-1, 10}, {10, 0}} {
		img := NewImage[uint8](dims[0], dims[1])
		if img.Width() != 0 || img.Height() != 0 || img.Row(0) != nil {
			t.Errorf("NewImage(%d, %d): got %dx%d, want empty", dims[0], dims[1], img.Width(), img.Height())
		}
	}
}

func TestNewImageStride(t *testing.T) {
	img := NewImageStride[uint8](33, 3, 40)
	if img.Stride() != 40 {
		t.Errorf("Stride: got %d, want 40", img.Stride())
	}
	img = NewImageStride[uint8](33, 3, 8)
	if img.Stride() != 33 {
		t.Errorf("Stride below width: got %d, want 33", img.Stride())
	}
}

func TestWrapPlane(t *testing.T) {
	tests := []struct {
		name                  string
		n                     int
		width, height, stride int
		wantErr               bool
	}{
		{"exact", 3*10 + 8, 8, 4, 10, false},
		{"padded", 40, 8, 4, 10, false},
		{"short", 37, 8, 4, 10, true},
		{"stride below width", 100, 8, 4, 7, true},
		{"zero width", 100, 0, 4, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := WrapPlane(make([]float32, tt.n), tt.width, tt.height, tt.stride)
			if (err != nil) != tt.wantErr {
				t.Fatalf("WrapPlane: got error %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && (img.Width() != tt.width || img.Stride() != tt.stride) {
				t.Errorf("WrapPlane: got %dx%d stride %d", img.Width(), img.Height(), img.Stride())
			}
		})
	}
}

func TestImageRow(t *testing.T) {
	img := NewImage[float32](10, 5)
	row := img.Row(2)
	if len(row) != 10 {
		t.Fatalf("len(Row): got %d, want 10", len(row))
	}
	for x := range row {
		row[x] = float32(x)
	}
	if got := img.Pix()[2*img.Stride()+7]; got != 7 {
		t.Errorf("Row does not alias the plane: got %v, want 7", got)
	}
	if img.Row(1)[9] != 0 || img.Row(3)[0] != 0 {
		t.Error("Row write leaked into a neighbouring row")
	}
	if img.Row(-1) != nil || img.Row(5) != nil {
		t.Error("out of range Row did not return nil")
	}
}

func TestImageFill(t *testing.T) {
	img := NewImageStride[uint8](7, 3, 9)
	img.Fill(9)
	for i, v := range img.Pix() {
		if v != 9 {
			t.Fatalf("Pix()[%d] = %d after Fill, want 9 (padding included)", i, v)
		}
	}
	if SameSize(img, NewImage[float32](7, 4)) {
		t.Error("SameSize(7x3, 7x4) = true")
	}
	if !SameSize(img, NewImage[float32](7, 3)) {
		t.Error("SameSize(7x3, 7x3) = false")
	}
}
