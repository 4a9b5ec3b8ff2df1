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

import (
	"strings"
	"testing"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String(): got %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestCapsSupports(t *testing.T) {
	tests := []struct {
		name   string
		caps   Caps
		widest Width
		widths int
	}{
		{"scalar", ScalarCaps(), Width1, 1},
		{"neon", Caps{Level: DispatchNEON, Has128: true, HasFMA: true}, Width4, 2},
		{"avx2", Caps{Level: DispatchAVX2, Has128: true, Has256: true, HasFMA: true}, Width8, 3},
		{"avx512", Caps{Level: DispatchAVX512, Has128: true, Has256: true, Has512: true, HasFMA: true}, Width16, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.caps.Supports(Width1) {
				t.Error("Supports(Width1): got false, want true")
			}
			if tt.caps.Supports(Width(3)) {
				t.Error("Supports(3): got true, want false")
			}
			if got := tt.caps.Widest(); got != tt.widest {
				t.Errorf("Widest: got %v, want %v", got, tt.widest)
			}
			if got := len(tt.caps.Widths()); got != tt.widths {
				t.Errorf("len(Widths): got %d, want %d", got, tt.widths)
			}
		})
	}
}

func TestCapsString(t *testing.T) {
	c := Caps{Level: DispatchAVX2, Has128: true, Has256: true, HasFMA: true}
	if got, want := c.String(), "avx2 [scalar x4 x8] fma"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
	if got, want := ScalarCaps().String(), "scalar [scalar]"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}

func TestDetectCapsConsistent(t *testing.T) {
	c := DetectCaps()
	if c.Has512 && !c.Has256 {
		t.Error("Has512 without Has256")
	}
	if c.Has256 && !c.Has128 {
		t.Error("Has256 without Has128")
	}
	if c.Has256 && !c.HasFMA {
		t.Error("Has256 without HasFMA")
	}
	if c.Arch == "" {
		t.Error("Arch is empty")
	}
	if c != DetectCaps() {
		t.Error("DetectCaps returned different values on repeated calls")
	}
	t.Logf("caps: %s (%s)", c, c.CPU)
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv(%q): got %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestWidthString(t *testing.T) {
	var names []string
	for _, w := range Widths() {
		names = append(names, w.String())
	}
	if got, want := strings.Join(names, ","), "scalar,x4,x8,x16"; got != want {
		t.Errorf("Widths: got %q, want %q", got, want)
	}
	if got := Width16.Bytes(); got != 64 {
		t.Errorf("Width16.Bytes: got %d, want 64", got)
	}
	if got := Width(5).String(); got != "unknown" {
		t.Errorf("Width(5).String: got %q, want unknown", got)
	}
}
