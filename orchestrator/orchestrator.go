// Package orchestrator implements the bulk-synchronous worker pool (C9)
// that every PSL round runs under: a fixed-size pool partitions [0, n) into
// contiguous chunks, one per worker, and joins before returning control —
// the "round barrier" the concurrency model depends on for visibility of
// cross-vertex label reads. There is no work stealing and no suspension
// inside a round; the only blocking point is the join at round end.
//
// This generalizes the teacher's hand-rolled sync.WaitGroup chunking
// (ligra_light_parallel.go, parlay_go/append.go) into a reusable pool, using
// errgroup as the join primitive.
package orchestrator

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool runs chunked work across a fixed number of workers.
type Pool struct {
	NumWorkers int
}

// New returns a Pool with numWorkers workers. A non-positive numWorkers
// falls back to the host's hardware concurrency, matching the teacher's
// parlay_go helpers and the original CLI's `-t` default.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	return &Pool{NumWorkers: numWorkers}
}

// Run partitions [0, n) into ceil(n/NumWorkers)-sized contiguous chunks and
// invokes fn(workerID, start, end) once per chunk, concurrently. Run does
// not return until every worker's goroutine has joined.
func (p *Pool) Run(n int, fn func(workerID, start, end int)) {
	if n == 0 {
		return
	}
	chunkSize := (n + p.NumWorkers - 1) / p.NumWorkers

	var g errgroup.Group
	for t := 0; t < p.NumWorkers; t++ {
		start := t * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			break
		}
		workerID := t
		g.Go(func() error {
			fn(workerID, start, end)
			return nil
		})
	}
	_ = g.Wait() // fn never returns an error; Wait only provides the join barrier
}
