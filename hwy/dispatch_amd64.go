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

//go:build amd64

package hwy

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func detectCaps() Caps {
	c := Caps{
		Level:  DispatchSSE2,
		Arch:   runtime.GOARCH,
		HasFMA: cpu.X86.HasFMA,
		// SSE2 is part of the x86-64 baseline.
		Has128: cpu.X86.HasSSE2,
	}

	// The 8-lane kernels are written with fused multiply-add, so AVX2
	// without FMA does not qualify.
	if cpu.X86.HasAVX2 && cpu.X86.HasFMA {
		c.Level = DispatchAVX2
		c.Has256 = true
	}
	if c.Has256 && cpu.X86.HasAVX512F {
		c.Level = DispatchAVX512
		c.Has512 = true
	}
	return c
}
