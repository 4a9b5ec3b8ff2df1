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

// Command powcheck runs the parity matrix of every pow kernel the CPU can
// execute against the reference implementations and prints pass/fail with
// timing.
//
// Usage:
//
//	powcheck [-seed N] [-width 32] [-height 32] [-kernel name] [-v]
//
// Each dimension is also run one pixel wider and one row shorter. Setting
// HWY_NO_SIMD=1 restricts the run to kernels that need no vector unit.
// The exit status is 1 if any case fails.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ajroetker/go-pixkern/hwy"
	"github.com/ajroetker/go-pixkern/hwy/contrib/math"
	"github.com/ajroetker/go-pixkern/internal/parity"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	seed    uint64
	width   int
	height  int
	kernel  string
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("powcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Uint64Var(&cfg.seed, "seed", 1, "Random seed for generated inputs")
	fs.IntVar(&cfg.width, "width", 32, "Plane width in pixels")
	fs.IntVar(&cfg.height, "height", 32, "Plane height in pixels")
	fs.StringVar(&cfg.kernel, "kernel", "", "Only check the named kernel")
	fs.BoolVar(&cfg.verbose, "v", false, "Print passing cases and debug logs")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return cfg, fmt.Errorf("invalid size %dx%d", cfg.width, cfg.height)
	}
	return cfg, nil
}

func selectKernels(cfg config, caps hwy.Caps) ([]math.Kernel, error) {
	if cfg.kernel == "" {
		return math.Runnable(caps), nil
	}
	k, err := math.ByName(cfg.kernel)
	if err != nil {
		return nil, err
	}
	if !k.Runnable(caps) {
		return nil, fmt.Errorf("kernel %q (%s lanes) cannot run on %s", k.Name, k.Width, caps)
	}
	return []math.Kernel{k}, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	hwy.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer hwy.SetLogger(nil)

	caps := hwy.DetectCaps()
	kernels, err := selectKernels(cfg, caps)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	scalar, err := math.ByName("scalar")
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(stdout, "cpu:     %s\n", caps.CPU)
	fmt.Fprintf(stdout, "caps:    %s\n", caps)
	fmt.Fprintf(stdout, "default: %s\n", math.Lookup(caps).Name)
	names := make([]string, len(kernels))
	for i, k := range kernels {
		names[i] = k.Name
	}
	fmt.Fprintf(stdout, "kernels: %v\n\n", names)

	dims := []parity.Dims{{Width: cfg.width, Height: cfg.height}}
	rep := parity.NewReporter(stdout, cfg.verbose)

	var errs []error
	collect := func(_ []parity.Result, err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	collect(parity.RunMatrix(parity.PowMatrix(kernels, dims, cfg.seed), rep))
	for _, m := range parity.Pow8Matrix(scalar, kernels, dims, cfg.seed) {
		collect(parity.RunMatrix(m, rep))
	}
	collect(parity.RunMatrix(parity.PowConstMatrix(kernels, dims, cfg.seed), rep))
	collect(parity.RunMatrix(parity.Gamma8Matrix(kernels, dims, cfg.seed), rep))

	fmt.Fprintln(stdout)
	rep.Summary()

	if err := errors.Join(errs...); err != nil {
		hwy.Logger().Debug("powcheck: failures", "err", err)
		return 1
	}
	return 0
}
