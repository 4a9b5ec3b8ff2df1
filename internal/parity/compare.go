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
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Sample is the element type of a compared plane.
type Sample interface {
	~float32 | ~uint8
}

// Stats summarizes one comparison.
type Stats struct {
	Checked    int
	Mismatches int
	MaxAbs     float64
	MaxRel     float64
	// MaxULP is only filled for float32 samples.
	MaxULP int32
}

// Compare checks the width x height window of two planes laid out with the
// same stride. It returns a *ToleranceViolation if the candidate fails tol.
func Compare[T Sample](name string, ref, cand []T, stride, width, height int, tol Tolerance) (Stats, error) {
	var (
		st        Stats
		first     *ToleranceViolation
		firstHard *ToleranceViolation
	)
	_, isFloat := any(ref[:0]).([]float32)

	for y := range height {
		for x := range width {
			i := y*stride + x
			r, c := float64(ref[i]), float64(cand[i])
			st.Checked++

			var diff float64
			switch {
			case r == c, math.IsNaN(r) && math.IsNaN(c):
			default:
				diff = math.Abs(c - r)
				if math.IsNaN(diff) {
					diff = math.Inf(1)
				}
			}
			rel := relative(diff, r)
			st.MaxAbs = max(st.MaxAbs, diff)
			st.MaxRel = max(st.MaxRel, rel)
			if isFloat {
				st.MaxULP = max(st.MaxULP, ULPDiff(float32(ref[i]), float32(cand[i])))
			}

			var bad, hard bool
			switch tol.Mode {
			case ModeCount:
				bad = diff > tol.MaxDiff
			default:
				bad = diff != 0 && !scalar.EqualWithinAbsOrRel(r, c, tol.Abs, tol.Rel)
				hard = bad && tol.CapRel > 0 && rel > tol.CapRel
			}
			if !bad {
				continue
			}
			st.Mismatches++
			if first == nil {
				first = &ToleranceViolation{X: x, Y: y, Reference: r, Candidate: c, Diff: diff}
			}
			if hard && firstHard == nil {
				firstHard = &ToleranceViolation{X: x, Y: y, Reference: r, Candidate: c, Diff: diff}
			}
		}
	}

	// Too many mismatches reports the first one; otherwise a failure can
	// only come from an element beyond the cap, which is reported instead.
	v := first
	if st.Mismatches <= tol.allowed() {
		v = firstHard
	}
	if v == nil {
		return st, nil
	}
	v.Case = name
	v.Count = st.Mismatches
	v.Allowed = tol.allowed()
	v.Tolerance = tol
	return st, v
}

func relative(diff, ref float64) float64 {
	if diff == 0 {
		return 0
	}
	rel := diff / math.Abs(ref)
	if ref == 0 || math.IsNaN(rel) {
		return math.Inf(1)
	}
	return rel
}

// ULPDiff returns the distance between a and b in units in the last place.
// NaN against anything else, or infinities that differ, give MaxInt32.
func ULPDiff(a, b float32) int32 {
	if a == b {
		return 0
	}
	if a != a || b != b || math.IsInf(float64(a), 0) || math.IsInf(float64(b), 0) {
		return math.MaxInt32
	}
	ab, bb := math.Float32bits(a), math.Float32bits(b)
	if ab>>31 != bb>>31 {
		d := int64(ab&0x7FFFFFFF) + int64(bb&0x7FFFFFFF)
		return int32(min(d, math.MaxInt32))
	}
	if ab > bb {
		return int32(ab - bb)
	}
	return int32(bb - ab)
}
