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

import "testing"

func TestProcessWithTail(t *testing.T) {
	tests := []struct {
		size      int
		width     Width
		wantFull  int
		wantTail  int
		tailStart int
	}{
		{0, Width8, 0, 0, 0},
		{7, Width8, 0, 7, 0},
		{8, Width8, 1, 0, 0},
		{33, Width8, 4, 1, 32},
		{33, Width16, 2, 1, 32},
		{5, Width1, 5, 0, 0},
		{31, Width4, 7, 3, 28},
	}
	for _, tt := range tests {
		full := 0
		tail := 0
		tailStart := 0
		next := 0
		ProcessWithTail(tt.size, tt.width,
			func(offset int) {
				if offset != next {
					t.Errorf("size %d %v: full offset %d, want %d", tt.size, tt.width, offset, next)
				}
				next += tt.width.Lanes()
				full++
			},
			func(offset, count int) {
				tailStart = offset
				tail = count
			},
		)
		if full != tt.wantFull || tail != tt.wantTail || tailStart != tt.tailStart {
			t.Errorf("size %d %v: got full=%d tail=%d@%d, want full=%d tail=%d@%d",
				tt.size, tt.width, full, tail, tailStart, tt.wantFull, tt.wantTail, tt.tailStart)
		}
	}
}

func TestAlignedSize(t *testing.T) {
	tests := []struct {
		size  int
		width Width
		want  int
	}{
		{0, Width16, 0},
		{1, Width16, 16},
		{16, Width16, 16},
		{33, Width16, 48},
		{33, Width4, 36},
		{33, Width1, 33},
		{10, Width(0), 10},
	}
	for _, tt := range tests {
		if got := AlignedSize(tt.size, tt.width); got != tt.want {
			t.Errorf("AlignedSize(%d, %v): got %d, want %d", tt.size, tt.width, got, tt.want)
		}
	}
}
