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
	"fmt"
	"io"
	"time"
)

// Reporter writes one line per case to w. Passing cases are only printed
// when verbose is set; failures always are.
type Reporter struct {
	w       io.Writer
	verbose bool
	passed  int
	failed  int
	elapsed time.Duration
}

// NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer, verbose bool) *Reporter {
	return &Reporter{w: w, verbose: verbose}
}

// Report records res.
func (r *Reporter) Report(res Result) {
	r.elapsed += res.ReferenceTime + res.CandidateTime
	if res.Passed() {
		r.passed++
		if r.verbose {
			fmt.Fprintf(r.w, "PASS  %-36s ref %-10v cand %-10v max rel %.2e  max ulp %d\n",
				res.Case, res.ReferenceTime.Round(time.Microsecond), res.CandidateTime.Round(time.Microsecond),
				res.Stats.MaxRel, res.Stats.MaxULP)
		}
		return
	}
	r.failed++
	fmt.Fprintf(r.w, "FAIL  %-36s %v\n", res.Case, res.Err)
}

// Summary prints and returns the totals so far.
func (r *Reporter) Summary() (passed, failed int) {
	fmt.Fprintf(r.w, "%d passed, %d failed (%v in kernels)\n", r.passed, r.failed, r.elapsed.Round(time.Microsecond))
	return r.passed, r.failed
}
