// Package parallel splits independent index ranges across goroutines.
//
// Callers must make every index independent: no two indices may write
// the same memory. Results are then identical to a sequential loop.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how work is split.
type Config struct {
	Workers  int // Maximum goroutines; <= 1 runs sequentially.
	MinChunk int // Minimum indices per goroutine.
}

// DefaultConfig uses one worker per CPU and chunks of at least 64 slices.
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.NumCPU(),
		MinChunk: 64,
	}
}

// Sequential returns a Config that never starts goroutines.
func Sequential() Config {
	return Config{Workers: 1}
}

// Range calls fn on disjoint [start, end) chunks that cover [0, n)
// and returns once every call has finished.
func Range(n int, cfg Config, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	minChunk := max(cfg.MinChunk, 1)
	if cfg.Workers <= 1 || n < 2*minChunk {
		fn(0, n)
		return
	}

	chunk := max((n+cfg.Workers-1)/cfg.Workers, minChunk)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// For calls fn(i) for every i in [0, n).
func For(n int, cfg Config, fn func(i int)) {
	Range(n, cfg, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}
