// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs row bands of a 2D kernel on a fixed set of
// goroutines. A Pool is created once and reused for many images, so a
// parallel call costs one channel send per band rather than a goroutine
// spawn.
//
// Usage:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	pool.Rows(img.Height(), func(y0, y1 int) {
//	    for y := y0; y < y1; y++ {
//	        processRow(y)
//	    }
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of workers. The zero value is not usable; call
// New.
type Pool struct {
	workers   int
	jobs      chan job
	closeOnce sync.Once
	closed    atomic.Bool
}

type job struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool with n workers. If n <= 0 it uses GOMAXPROCS.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: n,
		jobs:    make(chan job, n*2),
	}
	for range n {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for j := range p.jobs {
		j.run()
		j.done.Done()
	}
}

// Workers returns the number of workers.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers after pending bands finish. Calling Close more
// than once is safe. A closed pool runs work on the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.jobs)
	})
}

// Rows splits [0, height) into one contiguous band per worker and calls
// fn(y0, y1) for each band concurrently. It blocks until every band is
// done. Bands never overlap.
func (p *Pool) Rows(height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	workers := min(p.workers, height)
	if workers == 1 || p.closed.Load() {
		fn(0, height)
		return
	}

	band := (height + workers - 1) / workers
	var wg sync.WaitGroup
	for y0 := 0; y0 < height; y0 += band {
		y1 := min(y0+band, height)
		wg.Add(1)
		p.jobs <- job{run: func() { fn(y0, y1) }, done: &wg}
	}
	wg.Wait()
}

// RowsBatched hands out bands of batch rows on demand, so workers that
// finish early take more bands. Use it when row cost varies.
func (p *Pool) RowsBatched(height, batch int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	batch = max(batch, 1)
	bands := (height + batch - 1) / batch
	workers := min(p.workers, bands)
	if workers == 1 || p.closed.Load() {
		fn(0, height)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.jobs <- job{
			run: func() {
				for {
					y0 := int(next.Add(int64(batch))) - batch
					if y0 >= height {
						return
					}
					fn(y0, min(y0+batch, height))
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}
