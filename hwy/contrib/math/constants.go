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

// =============================================================================
// Constants for the power approximation
// =============================================================================

// Minimax coefficients of the degree-5 polynomial P with
// log2(m) ~= P(m) * (m - 1) for m in [1, 2).
var log2Coeffs = [6]float32{
	3.1157899,
	-3.3241990,
	2.5988452,
	-1.2315303,
	3.1821337e-1,
	-3.4436006e-2,
}

// Minimax coefficients of the degree-5 polynomial P with
// 2^f ~= P(f) for f in [-0.5, 1).
var exp2Coeffs = [6]float32{
	9.9999994e-1,
	6.9315308e-1,
	2.4015361e-1,
	5.5826318e-2,
	8.9893397e-3,
	1.8775767e-3,
}

// IEEE-754 single precision layout.
const (
	expMask  = 0x7F800000
	mantMask = 0x007FFFFF
	expBias  = 127
	oneBits  = 0x3F800000
)

// Exp2 input window. Below the lower edge the result would be denormal;
// at 128 and above the exponent field saturates to +Inf.
const (
	exp2Max float32 = 129.0
	exp2Min float32 = -126.99999
)
