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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func copyImpl(name string, scale float32) Impl[float32] {
	return Impl[float32]{
		Name: name,
		Run: func(in *Inputs, dst Plane[float32]) {
			for y := range in.Dims.Height {
				row := dst.Row(y)
				for x := range row {
					row[x] = in.Basis[y*in.Stride+x] * scale
				}
			}
		},
	}
}

func fillBasis(g *Generator, in *Inputs) {
	g.Uniform(in.Basis, 1, 2)
}

func TestRunPass(t *testing.T) {
	c := Case[float32]{
		Op:        "copy",
		Dims:      Dims{Width: 5, Height: 3},
		Tolerance: Float(0, 1e-6),
		Generate:  fillBasis,
		Reference: copyImpl("ref", 1),
		Candidate: copyImpl("cand", 1),
	}
	res := Run(c)
	require.NoError(t, res.Err)
	assert.Equal(t, StatePass, res.State)
	assert.True(t, res.Passed())
	assert.Equal(t, 15, res.Stats.Checked)
	assert.Equal(t, "copy/cand/5x3/float", res.Case)
}

func TestRunToleranceViolation(t *testing.T) {
	c := Case[float32]{
		Op:        "copy",
		Dims:      Dims{Width: 4, Height: 4},
		Tolerance: Float(0, 1e-3),
		Generate:  fillBasis,
		Reference: copyImpl("ref", 1),
		Candidate: copyImpl("cand", 1.01),
	}
	res := Run(c)
	assert.Equal(t, StateFail, res.State)
	var v *ToleranceViolation
	require.ErrorAs(t, res.Err, &v)
	assert.Equal(t, 0, v.X)
	assert.Equal(t, 0, v.Y)
	assert.Equal(t, 16, v.Count)
}

func TestRunPaddingWrite(t *testing.T) {
	overrun := Impl[float32]{
		Name: "overrun",
		Run: func(in *Inputs, dst Plane[float32]) {
			for y := range in.Dims.Height {
				row := dst.Data[y*dst.Stride : y*dst.Stride+dst.Width+1]
				for x := range row {
					row[x] = in.Basis[y*in.Stride+x]
				}
			}
		},
	}
	res := Run(Case[float32]{
		Op:        "copy",
		Dims:      Dims{Width: 6, Height: 2},
		Tolerance: Float(0, 0),
		Generate:  fillBasis,
		Reference: copyImpl("ref", 1),
		Candidate: overrun,
	})
	assert.Equal(t, StateFail, res.State)
	assert.True(t, errors.Is(res.Err, ErrOutOfBounds), "got %v", res.Err)
}

func TestRunPanic(t *testing.T) {
	res := Run(Case[float32]{
		Op:        "boom",
		Dims:      Dims{Width: 2, Height: 2},
		Tolerance: Count(0, 0),
		Reference: copyImpl("ref", 1),
		Candidate: Impl[float32]{Name: "boom", Run: func(*Inputs, Plane[float32]) { panic("bad kernel") }},
	})
	assert.Equal(t, StateFail, res.State)
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "execute-candidate")
	assert.Contains(t, res.Err.Error(), "bad kernel")
}

func TestExpandDims(t *testing.T) {
	assert.Equal(t, []Dims{{32, 32}, {33, 31}}, ExpandDims(Dims{32, 32}))
	assert.Equal(t, []Dims{{7, 1}, {8, 1}}, ExpandDims(Dims{7, 1}))
}

func TestMatrix(t *testing.T) {
	m := Matrix[float32]{
		Op:         "copy",
		Dims:       []Dims{{8, 8}, {3, 2}},
		Tolerances: []Tolerance{Float(0, 1e-3), Count(0, 0)},
		Generate:   fillBasis,
		Reference:  copyImpl("ref", 1),
		Candidates: []Impl[float32]{copyImpl("good", 1), copyImpl("bad", 2)},
	}
	assert.Len(t, m.Cases(), 2*2*2*2)

	var buf bytes.Buffer
	rep := NewReporter(&buf, true)
	results, err := RunMatrix(m, rep)
	require.Error(t, err)
	assert.Len(t, results, 16)

	passed, failed := rep.Summary()
	assert.Equal(t, 8, passed)
	assert.Equal(t, 8, failed)

	out := buf.String()
	assert.Contains(t, out, "PASS  copy/good/9x7/float")
	assert.Contains(t, out, "FAIL  copy/bad/8x8/count")
	assert.Contains(t, out, "8 passed, 8 failed")
}

func TestStateString(t *testing.T) {
	names := []string{}
	for s := StateGenerate; s <= StateFail; s++ {
		names = append(names, s.String())
	}
	assert.Equal(t, "generate execute-reference execute-candidate compare pass fail", strings.Join(names, " "))
}
