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

package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestParseWidths(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"4,8,16", []int{4, 8, 16}, false},
		{" 8 ", []int{8}, false},
		{"4,,16", []int{4, 16}, false},
		{"", nil, true},
		{"3", nil, true},
		{"x", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseWidths(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseWidths(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseWidths(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseWidths(%q)[%d] = %d, want %d", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRender(t *testing.T) {
	for _, n := range []int{4, 8, 16} {
		src, err := render("hwy", n)
		if err != nil {
			t.Fatalf("render(%d): %v", n, err)
		}
		content := string(src)

		wants := []string{
			"Code generated by lanegen",
			"package hwy",
			`import "math"`,
			"type F32x" + strconv.Itoa(n) + " [" + strconv.Itoa(n) + "]float32",
			"type I32x" + strconv.Itoa(n) + " [" + strconv.Itoa(n) + "]uint32",
			"func (F32x" + strconv.Itoa(n) + "Ops) MulAdd(",
			"return Width" + strconv.Itoa(n),
		}
		for _, want := range wants {
			if !strings.Contains(content, want) {
				t.Errorf("render(%d) missing %q", n, want)
			}
		}
	}
}

func TestGenerateWritesFile(t *testing.T) {
	dir := t.TempDir()
	if err := generate(dir, "lanes", 4); err != nil {
		t.Fatalf("generate: %v", err)
	}
	content, err := os.ReadFile(filepath.Join(dir, "ops_f32x4.gen.go"))
	if err != nil {
		t.Fatalf("read generated file: %v", err)
	}
	if !strings.Contains(string(content), "package lanes") {
		t.Errorf("generated file does not use the requested package name")
	}
}
