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

package math

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/ajroetker/go-pixkern/hwy"
)

// ErrUnknownKernel is returned by ByName when no kernel has the name.
var ErrUnknownKernel = errors.New("math: unknown kernel")

// Kernel is one registered implementation of the buffer kernels.
type Kernel struct {
	// Name identifies the kernel, e.g. "x8" or "avx2".
	Name string

	// Width is the lane count the kernel processes at once.
	Width hwy.Width

	// Native kernels execute vector instructions and must only run when
	// the capabilities support Width. Portable kernels run anywhere.
	Native bool

	// NeedsFMA kernels additionally require hardware fused multiply-add,
	// e.g. 4-lane kernels built from VEX-encoded FMA instructions, which
	// SSE2 alone does not provide.
	NeedsFMA bool

	// Priority orders kernels; Lookup prefers higher values.
	Priority int

	// Pow computes dst[i] = basis[i]^exponent[i].
	Pow func(basis, exponent, dst []float32)

	// PowConst computes dst[i] = src[i]^exponent.
	PowConst func(src []float32, exponent float32, dst []float32)
}

// Runnable reports whether k can execute on a CPU with caps.
func (k Kernel) Runnable(caps hwy.Caps) bool {
	if k.NeedsFMA && !caps.HasFMA {
		return false
	}
	return !k.Native || caps.Supports(k.Width)
}

// selectable reports whether Lookup may return k for caps.
func (k Kernel) selectable(caps hwy.Caps) bool {
	return caps.Supports(k.Width) && (!k.NeedsFMA || caps.HasFMA)
}

// Registry holds kernels and selects among them by capability.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	kernels []Kernel
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds k. Names must be unique and both functions set.
func (r *Registry) Register(k Kernel) error {
	if k.Name == "" {
		return errors.New("math: kernel without a name")
	}
	if k.Pow == nil || k.PowConst == nil {
		return fmt.Errorf("math: kernel %q: missing function", k.Name)
	}
	if !slices.Contains(hwy.Widths(), k.Width) {
		return fmt.Errorf("math: kernel %q: invalid width %d", k.Name, int(k.Width))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.kernels {
		if e.Name == k.Name {
			return fmt.Errorf("math: kernel %q already registered", k.Name)
		}
	}
	r.kernels = append(r.kernels, k)
	slices.SortStableFunc(r.kernels, func(a, b Kernel) int {
		return cmp.Compare(a.Priority, b.Priority)
	})
	return nil
}

// Lookup returns the highest-priority kernel whose width caps supports,
// skipping kernels that need FMA on CPUs without it. The boolean is false
// when none qualifies.
func (r *Registry) Lookup(caps hwy.Caps) (Kernel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.kernels) - 1; i >= 0; i-- {
		if r.kernels[i].selectable(caps) {
			return r.kernels[i], true
		}
	}
	return Kernel{}, false
}

// ByName returns the kernel called name.
func (r *Registry) ByName(name string) (Kernel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, k := range r.kernels {
		if k.Name == name {
			return k, nil
		}
	}
	return Kernel{}, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
}

// Kernels returns every kernel in ascending priority.
func (r *Registry) Kernels() []Kernel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.kernels)
}

// Runnable returns the kernels that can execute under caps, in ascending
// priority.
func (r *Registry) Runnable(caps hwy.Caps) []Kernel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Kernel
	for _, k := range r.kernels {
		if k.Runnable(caps) {
			out = append(out, k)
		}
	}
	return out
}

// =============================================================================
// Default registry
// =============================================================================

var defaultRegistry = NewRegistry()

// Register adds k to the default registry. It panics on an invalid or
// duplicate kernel; it is meant to be called from init.
func Register(k Kernel) {
	if err := defaultRegistry.Register(k); err != nil {
		panic(err)
	}
}

// Lookup returns the best kernel in the default registry for caps. The
// scalar kernel supports every caps value, so Lookup always succeeds.
func Lookup(caps hwy.Caps) Kernel {
	k, ok := defaultRegistry.Lookup(caps)
	if !ok {
		panic("math: no kernel registered for " + caps.String())
	}
	hwy.Logger().Debug("math: kernel selected",
		"kernel", k.Name,
		"width", k.Width.String(),
		"native", k.Native,
		"caps", caps.String())
	return k
}

// ByName returns the kernel called name from the default registry.
func ByName(name string) (Kernel, error) {
	return defaultRegistry.ByName(name)
}

// Kernels lists the default registry in ascending priority.
func Kernels() []Kernel {
	return defaultRegistry.Kernels()
}

// Runnable lists the kernels of the default registry that can execute
// under caps.
func Runnable(caps hwy.Caps) []Kernel {
	return defaultRegistry.Runnable(caps)
}

// BaseKernel wraps PowBase as a Kernel. It is the reference the harness
// compares against and is not part of the registry.
func BaseKernel() Kernel {
	return Kernel{
		Name:     "base",
		Width:    hwy.Width1,
		Priority: -1,
		Pow:      PowBaseSlice,
		PowConst: PowConstBaseSlice,
	}
}

func init() {
	Register(Kernel{Name: "scalar", Width: hwy.Width1, Priority: 0,
		Pow: ScalarEngine.PowSlice, PowConst: ScalarEngine.PowConstSlice})
	Register(Kernel{Name: "x4", Width: hwy.Width4, Priority: 10,
		Pow: EngineX4.PowSlice, PowConst: EngineX4.PowConstSlice})
	Register(Kernel{Name: "x8", Width: hwy.Width8, Priority: 20,
		Pow: EngineX8.PowSlice, PowConst: EngineX8.PowConstSlice})
	Register(Kernel{Name: "x16", Width: hwy.Width16, Priority: 30,
		Pow: EngineX16.PowSlice, PowConst: EngineX16.PowConstSlice})
}
