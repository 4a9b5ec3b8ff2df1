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

import "fmt"

// Mode selects how a Tolerance judges an element.
type Mode int

const (
	// ModeCount allows up to MaxMismatches elements whose absolute
	// difference exceeds MaxDiff. Used for integer-domain outputs.
	ModeCount Mode = iota

	// ModeFloat accepts an element within Abs or Rel of the reference and
	// allows MaxOutliers elements outside that, none beyond CapRel.
	ModeFloat
)

func (m Mode) String() string {
	switch m {
	case ModeCount:
		return "count"
	case ModeFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Tolerance is the acceptance policy of one case.
type Tolerance struct {
	Mode Mode

	// ModeCount.
	MaxDiff       float64
	MaxMismatches int

	// ModeFloat.
	Abs         float64
	Rel         float64
	MaxOutliers int
	// CapRel bounds the relative error of every outlier. Zero disables
	// the cap.
	CapRel float64
}

// Count returns a counted-element tolerance.
func Count(maxDiff float64, maxMismatches int) Tolerance {
	return Tolerance{Mode: ModeCount, MaxDiff: maxDiff, MaxMismatches: maxMismatches}
}

// Float returns a tolerance that accepts an element when it is within abs
// or within rel of the reference, with no outliers allowed.
func Float(abs, rel float64) Tolerance {
	return Tolerance{Mode: ModeFloat, Abs: abs, Rel: rel}
}

// WithOutliers allows n elements outside Abs/Rel as long as none exceeds
// capRel relative error.
func (t Tolerance) WithOutliers(n int, capRel float64) Tolerance {
	t.MaxOutliers = n
	t.CapRel = capRel
	return t
}

// allowed is the number of failing elements the tolerance accepts.
func (t Tolerance) allowed() int {
	if t.Mode == ModeCount {
		return t.MaxMismatches
	}
	return t.MaxOutliers
}

func (t Tolerance) String() string {
	switch t.Mode {
	case ModeCount:
		return fmt.Sprintf("count(diff<=%g, mismatches<=%d)", t.MaxDiff, t.MaxMismatches)
	case ModeFloat:
		s := fmt.Sprintf("float(abs=%g, rel=%g", t.Abs, t.Rel)
		if t.MaxOutliers > 0 {
			s += fmt.Sprintf(", outliers<=%d", t.MaxOutliers)
		}
		if t.CapRel > 0 {
			s += fmt.Sprintf(", cap=%g", t.CapRel)
		}
		return s + ")"
	default:
		return "unknown"
	}
}

// ToleranceViolation reports a case whose candidate disagrees with the
// reference beyond its tolerance.
type ToleranceViolation struct {
	// Case names the failing case.
	Case string

	// X, Y locate the first offending element.
	X, Y int

	Reference float64
	Candidate float64
	Diff      float64

	// Count is the number of offending elements; Allowed is how many the
	// tolerance accepts.
	Count   int
	Allowed int

	Tolerance Tolerance
}

func (v *ToleranceViolation) Error() string {
	return fmt.Sprintf("parity: %s: %d elements out of tolerance %s (allowed %d), first at (%d, %d): reference %v, candidate %v, diff %g",
		v.Case, v.Count, v.Tolerance, v.Allowed, v.X, v.Y, v.Reference, v.Candidate, v.Diff)
}
