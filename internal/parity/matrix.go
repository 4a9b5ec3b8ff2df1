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

import "errors"

// Matrix expands one operation into cases: every candidate, at every
// dimension and its ExpandDims variant, under every tolerance.
type Matrix[T Sample] struct {
	Op         string
	Dims       []Dims
	Tolerances []Tolerance
	Seed       uint64
	Generate   func(g *Generator, in *Inputs)
	Reference  Impl[T]
	Candidates []Impl[T]
}

// Cases lists the cases of m in candidate, dims, tolerance order.
func (m Matrix[T]) Cases() []Case[T] {
	var cases []Case[T]
	for _, cand := range m.Candidates {
		for _, base := range m.Dims {
			for _, d := range ExpandDims(base) {
				for _, tol := range m.Tolerances {
					cases = append(cases, Case[T]{
						Op:        m.Op,
						Dims:      d,
						Tolerance: tol,
						Seed:      m.Seed,
						Generate:  m.Generate,
						Reference: m.Reference,
						Candidate: cand,
					})
				}
			}
		}
	}
	return cases
}

// RunMatrix runs every case of m sequentially, reporting each result to
// rep if it is not nil. The returned error joins every failure.
func RunMatrix[T Sample](m Matrix[T], rep *Reporter) ([]Result, error) {
	var (
		results []Result
		errs    []error
	)
	for _, c := range m.Cases() {
		res := Run(c)
		results = append(results, res)
		if rep != nil {
			rep.Report(res)
		}
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return results, errors.Join(errs...)
}
