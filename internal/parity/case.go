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

package parity

import (
	"errors"
	"fmt"
	"time"

	"github.com/ajroetker/go-pixkern/hwy"
	"github.com/ajroetker/go-pixkern/hwy/contrib/image"
)

// ErrOutOfBounds reports a write into the padding between width and stride.
var ErrOutOfBounds = errors.New("parity: write outside the plane width")

// padLanes is the padding added after every row, chosen so that strides
// are not a multiple of any lane count.
const padLanes = 3

// Dims is the size of a case in pixels.
type Dims struct {
	Width, Height int
}

func (d Dims) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// ExpandDims returns d and the shape one pixel wider and one row shorter.
func ExpandDims(d Dims) []Dims {
	return []Dims{d, {Width: d.Width + 1, Height: max(d.Height-1, 1)}}
}

// Plane is an output buffer addressed as Data[y*Stride+x].
type Plane[T Sample] struct {
	Data   []T
	Stride int
	Width  int
	Height int
}

// NewPlane allocates a plane with every element, padding included, set
// to fill.
func NewPlane[T Sample](d Dims, stride int, fill T) Plane[T] {
	img := image.NewImageStride[T](d.Width, d.Height, stride)
	img.Fill(fill)
	return Plane[T]{Data: img.Pix(), Stride: img.Stride(), Width: d.Width, Height: d.Height}
}

// Row returns row y limited to the plane width.
func (p Plane[T]) Row(y int) []T {
	return p.Data[y*p.Stride : y*p.Stride+p.Width]
}

// Inputs are the generated buffers of one case. All planes share Stride.
type Inputs struct {
	Dims     Dims
	Stride   int
	Basis    []float32
	Exponent []float32
	Pixels   []uint8
	Scalar   float32
}

func newInputs(d Dims) *Inputs {
	stride := d.Width + padLanes
	n := stride * d.Height
	return &Inputs{
		Dims:     d,
		Stride:   stride,
		Basis:    make([]float32, n),
		Exponent: make([]float32, n),
		Pixels:   make([]uint8, n),
	}
}

// Impl is one implementation of an operation. Run reads in and writes the
// Dims window of dst.
type Impl[T Sample] struct {
	Name string
	Run  func(in *Inputs, dst Plane[T])
}

// Case is a single reference-versus-candidate check.
type Case[T Sample] struct {
	Op        string
	Dims      Dims
	Tolerance Tolerance
	Seed      uint64
	Generate  func(g *Generator, in *Inputs)
	Reference Impl[T]
	Candidate Impl[T]
}

// Name identifies the case as op/candidate/dims/mode.
func (c Case[T]) Name() string {
	return fmt.Sprintf("%s/%s/%s/%s", c.Op, c.Candidate.Name, c.Dims, c.Tolerance.Mode)
}

// State is the progress of a case.
type State int

const (
	StateGenerate State = iota
	StateExecuteReference
	StateExecuteCandidate
	StateCompare
	StatePass
	StateFail
)

func (s State) String() string {
	switch s {
	case StateGenerate:
		return "generate"
	case StateExecuteReference:
		return "execute-reference"
	case StateExecuteCandidate:
		return "execute-candidate"
	case StateCompare:
		return "compare"
	case StatePass:
		return "pass"
	case StateFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Result is the outcome of Run.
type Result struct {
	Case          string
	State         State
	Stats         Stats
	Err           error
	ReferenceTime time.Duration
	CandidateTime time.Duration
}

// Passed reports whether the case ended in StatePass.
func (r Result) Passed() bool {
	return r.State == StatePass
}

// Run executes c. A panic in either implementation fails the case with
// the state it happened in; it does not propagate.
func Run[T Sample](c Case[T]) (res Result) {
	res.Case = c.Name()
	defer func() {
		if p := recover(); p != nil {
			res.Err = fmt.Errorf("parity: %s: panic during %s: %v", res.Case, res.State, p)
			res.State = StateFail
		}
		hwy.Logger().Debug("parity: case finished",
			"case", res.Case,
			"state", res.State.String(),
			"mismatches", res.Stats.Mismatches,
			"max_rel", res.Stats.MaxRel)
	}()

	res.State = StateGenerate
	in := newInputs(c.Dims)
	if c.Generate != nil {
		c.Generate(NewGenerator(c.Seed), in)
	}
	fill := sentinel[T]()

	res.State = StateExecuteReference
	ref := NewPlane(c.Dims, in.Stride, fill)
	start := time.Now()
	c.Reference.Run(in, ref)
	res.ReferenceTime = time.Since(start)

	res.State = StateExecuteCandidate
	cand := NewPlane(c.Dims, in.Stride, fill)
	start = time.Now()
	c.Candidate.Run(in, cand)
	res.CandidateTime = time.Since(start)

	res.State = StateCompare
	res.Stats, res.Err = Compare(res.Case, ref.Data, cand.Data, in.Stride, c.Dims.Width, c.Dims.Height, c.Tolerance)
	if res.Err == nil {
		res.Err = checkPadding(res.Case, cand, fill)
	}
	if res.Err != nil {
		res.State = StateFail
	} else {
		res.State = StatePass
	}
	return res
}

func checkPadding[T Sample](name string, p Plane[T], fill T) error {
	for y := range p.Height {
		for x := p.Width; x < p.Stride; x++ {
			if v := p.Data[y*p.Stride+x]; v != fill {
				return fmt.Errorf("%w: %s: (%d, %d) = %v", ErrOutOfBounds, name, x, y, v)
			}
		}
	}
	return nil
}

// sentinel is the value planes are prefilled with. Kernels never produce
// it for the generated inputs.
func sentinel[T Sample]() T {
	var s T
	switch p := any(&s).(type) {
	case *float32:
		*p = -12345
	case *uint8:
		*p = 0xA5
	}
	return s
}
