// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parallel provides the worker pool used to run independent
// units of work, such as per-entity bounds computation, across goroutines.
package parallel

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Pool runs independent units of work using up to [Pool.Workers]
// goroutines. Callers only submit work and wait for it; they never
// manage goroutine lifetimes.
type Pool interface {
	// Workers returns the number of workers available.
	Workers() int

	// Run calls fn for every i in [0, n), passing the index of the
	// worker running it, which is always less than Workers.
	// Calls with the same worker index never run concurrently.
	// Run returns after every call has returned, with the first
	// non-nil error, if any. Remaining items still run after an error.
	Run(n int, fn func(worker, i int) error) error
}

// Group is a [Pool] that spreads work over a fixed number of goroutines
// that pull item indexes from a shared counter.
type Group struct {
	workers int
}

// NewPool returns a new [Group] with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Group {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Group{workers: workers}
}

func (p *Group) Workers() int {
	return p.workers
}

func (p *Group) Run(n int, fn func(worker, i int) error) error {
	if n <= 0 {
		return nil
	}
	nw := min(p.workers, n)
	var next atomic.Int64
	var g errgroup.Group
	for w := range nw {
		g.Go(func() error {
			var first error
			for {
				i := int(next.Add(1) - 1)
				if i >= n {
					return first
				}
				if err := fn(w, i); err != nil && first == nil {
					first = err
				}
			}
		})
	}
	return g.Wait()
}

// Sequential is a [Pool] with a single worker that runs all work
// on the calling goroutine, in index order.
type Sequential struct{}

func (Sequential) Workers() int {
	return 1
}

func (Sequential) Run(n int, fn func(worker, i int) error) error {
	var first error
	for i := range n {
		if err := fn(0, i); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// MapReduce maps every i in [0, n) through mapFn on the pool, keeping
// the values for which it returns true. Each worker accumulates its own
// partial list; the partial lists are merged once all work is done.
// The order of the returned values is unspecified. The values collected
// so far are returned along with any error from the pool.
func MapReduce[T any](p Pool, n int, mapFn func(i int) (T, bool)) ([]T, error) {
	parts := make([][]T, p.Workers())
	err := p.Run(n, func(worker, i int) error {
		if v, ok := mapFn(i); ok {
			parts[worker] = append(parts[worker], v)
		}
		return nil
	})
	total := 0
	for _, pt := range parts {
		total += len(pt)
	}
	res := make([]T, 0, total)
	for _, pt := range parts {
		res = append(res, pt...)
	}
	return res, err
}
