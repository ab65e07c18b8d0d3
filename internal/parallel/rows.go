// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package parallel splits row-oriented pixel work across goroutines.
//
// Work is cut into contiguous, non-overlapping bands of rows, so a band
// function may write its rows of a shared buffer without synchronization.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MinRowsPerBand is the smallest band handed to a goroutine. Smaller jobs
// run on the calling goroutine.
const MinRowsPerBand = 32

// Rows calls fn for contiguous bands covering [0, n), running up to
// workers bands at a time. If workers is 0 or negative, GOMAXPROCS is used.
// Rows returns after every band has finished.
func Rows(n, workers int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	bands := min(workers, n/MinRowsPerBand)
	if bands <= 1 {
		fn(0, n)
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range bands {
		lo := i * n / bands
		hi := (i + 1) * n / bands
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}
