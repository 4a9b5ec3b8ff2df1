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

// Package parity cross-checks kernel implementations against a reference.
//
// Every check is a Case that moves through a fixed sequence of states:
//
//	GENERATE -> EXECUTE-REFERENCE -> EXECUTE-CANDIDATE -> COMPARE -> PASS | FAIL
//
// Inputs are generated from a seed, both implementations write into planes
// whose row padding holds a sentinel, and the outputs are compared under a
// Tolerance. A failing case yields a *ToleranceViolation naming the first
// offending pixel and both values; other cases keep running.
//
// A Matrix expands one operation across candidates, dimensions and
// tolerances. Every dimension is also run one pixel wider and one row
// shorter, so widths that are not a multiple of the lane count are always
// covered.
package parity
