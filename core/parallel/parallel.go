// Package parallel provides a small worker helper for fanning pure
// per-index work across CPU cores.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits items across up to NumCPU workers and calls fn with the
// half-open range [start, end) each worker owns. fn must be safe to run
// concurrently for disjoint ranges.
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// Ceiling division so every item lands in exactly one chunk.
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// ParallelizeWithThreshold runs fn sequentially over [0, items) when items is
// at or below threshold, and parallelizes otherwise. Small inputs are not
// worth the goroutine overhead.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}

	Parallelize(items, fn)
}
