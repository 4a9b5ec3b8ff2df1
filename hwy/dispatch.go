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
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
)

// DispatchLevel represents the SIMD instruction set the running CPU offers.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 with FMA (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512F instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Caps describes the vector capabilities of the running CPU. It is a plain
// value: detect it once with DetectCaps and pass it to whatever selects
// among kernel variants.
type Caps struct {
	// Level is the widest instruction set detected.
	Level DispatchLevel

	// Has128 reports a usable 4-lane float32 path (SSE2, NEON).
	Has128 bool

	// Has256 reports a usable 8-lane float32 path with FMA (AVX2+FMA).
	Has256 bool

	// Has512 reports a usable 16-lane float32 path (AVX-512F).
	Has512 bool

	// HasFMA reports hardware fused multiply-add.
	HasFMA bool

	// Arch is runtime.GOARCH.
	Arch string

	// CPU is the processor brand string, empty when unknown.
	CPU string
}

// ScalarCaps returns capabilities that only allow the scalar width.
func ScalarCaps() Caps {
	return Caps{Level: DispatchScalar, Arch: runtime.GOARCH}
}

// Supports reports whether the CPU can run kernels of width w natively.
// Width1 is always supported.
func (c Caps) Supports(w Width) bool {
	switch w {
	case Width1:
		return true
	case Width4:
		return c.Has128
	case Width8:
		return c.Has256
	case Width16:
		return c.Has512
	default:
		return false
	}
}

// Widest returns the widest supported width.
func (c Caps) Widest() Width {
	best := Width1
	for _, w := range Widths() {
		if c.Supports(w) {
			best = w
		}
	}
	return best
}

// Widths returns the supported widths in ascending order.
func (c Caps) Widths() []Width {
	var ws []Width
	for _, w := range Widths() {
		if c.Supports(w) {
			ws = append(ws, w)
		}
	}
	return ws
}

// String summarizes the capabilities, e.g. "avx2 [scalar x4 x8] fma".
func (c Caps) String() string {
	names := make([]string, 0, 4)
	for _, w := range c.Widths() {
		names = append(names, w.String())
	}
	s := fmt.Sprintf("%s [%s]", c.Level, strings.Join(names, " "))
	if c.HasFMA {
		s += " fma"
	}
	return s
}

// DetectCaps returns the capabilities of the running CPU. Detection runs
// once; later calls return the same value.
var DetectCaps = sync.OnceValue(func() Caps {
	var c Caps
	if NoSimdEnv() {
		c = ScalarCaps()
	} else {
		c = detectCaps()
	}
	c.CPU = cpuBrand()
	Logger().Debug("hwy: capabilities detected",
		"level", c.Level.String(),
		"widest", c.Widest().String(),
		"fma", c.HasFMA,
		"cpu", c.CPU)
	return c
})

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, DetectCaps reports scalar-only capabilities regardless of the CPU.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
