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

//go:build amd64 && goexperiment.simd

package hwy

import "testing"

func TestAVX128Ops(t *testing.T) {
	caps := DetectCaps()
	if !caps.Has128 || !caps.HasFMA {
		t.Skip("FMA not available")
	}
	testOpsAgainstScalar(t, AVX128Ops{})
	testIntOps(t, AVX128Ops{})
}

func TestAVX2Ops(t *testing.T) {
	if !DetectCaps().Has256 {
		t.Skip("AVX2+FMA not available")
	}
	testOpsAgainstScalar(t, AVX2Ops{})
	testIntOps(t, AVX2Ops{})
}

func TestAVX512Ops(t *testing.T) {
	if !DetectCaps().Has512 {
		t.Skip("AVX-512 not available")
	}
	testOpsAgainstScalar(t, AVX512Ops{})
	testIntOps(t, AVX512Ops{})
}
