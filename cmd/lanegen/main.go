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

// Command lanegen generates the portable fixed-width Float32Ops
// implementations of package hwy (F32x4Ops, F32x8Ops, F32x16Ops).
//
// Usage:
//
//	lanegen -output ./hwy -widths 4,8,16
//
// Or via go:generate from the hwy package:
//
//	//go:generate go run ../cmd/lanegen -output .
//
// Each width is written to ops_f32x<N>.gen.go and run through
// golang.org/x/tools/imports, which formats the file and adds the imports
// the template leaves out.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

var (
	outputDir  = flag.String("output", ".", "Output directory")
	widthsFlag = flag.String("widths", "4,8,16", "Comma-separated lane counts to generate")
	packageOut = flag.String("pkg", "hwy", "Output package name")
)

// supportedWidths are the lane counts package hwy declares Width constants for.
var supportedWidths = map[int]bool{4: true, 8: true, 16: true}

var laneTmpl = template.Must(template.New("lanes").Parse(laneTemplate))

func main() {
	flag.Parse()

	widths, err := parseWidths(*widthsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	for _, n := range widths {
		if err := generate(*outputDir, *packageOut, n); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// parseWidths parses a comma-separated list of lane counts.
func parseWidths(s string) ([]int, error) {
	var widths []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid width %q: %w", part, err)
		}
		if !supportedWidths[n] {
			return nil, fmt.Errorf("unsupported width %d (want 4, 8 or 16)", n)
		}
		widths = append(widths, n)
	}
	if len(widths) == 0 {
		return nil, fmt.Errorf("no widths specified")
	}
	return widths, nil
}

// render returns the formatted source for an n-lane implementation.
func render(pkg string, n int) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Package string
		N       int
	}{pkg, n}
	if err := laneTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render width %d: %w", n, err)
	}

	filename := fileName(n)
	formatted, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	return formatted, nil
}

func generate(dir, pkg string, n int) error {
	src, err := render(pkg, n)
	if err != nil {
		return err
	}
	filename := filepath.Join(dir, fileName(n))
	if err := os.WriteFile(filename, src, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

func fileName(n int) string {
	return fmt.Sprintf("ops_f32x%d.gen.go", n)
}
