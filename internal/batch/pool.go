// Package batch runs a fixed batch of independent jobs — one per
// example scenario — across a bounded pool of goroutines, collecting
// results in submission order regardless of completion order.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// Job is one independent unit of work submitted to a Pool.
type Job func(ctx context.Context) (string, error)

// Result pairs a Job's outcome with its index in the submitted batch.
type Result struct {
	Index  int
	Output string
	Err    error
}

// Pool runs a fixed set of jobs with at most maxWorkers running
// concurrently. Unlike a long-lived worker pool, a Pool is built for
// one batch and discarded — there is no dynamic scaling or
// backpressure, since the batch size is known up front.
type Pool struct {
	maxWorkers int
}

// NewPool returns a Pool bounded at maxWorkers; maxWorkers <= 0 defaults
// to the number of CPUs.
func NewPool(maxWorkers int) *Pool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}
	return &Pool{maxWorkers: maxWorkers}
}

// Run executes jobs, at most p.maxWorkers at a time, and returns their
// results in the same order jobs were given — NOT completion order.
// Run does not stop early on the first error; every job always runs,
// and the caller inspects each Result.Err.
func (p *Pool) Run(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))
	sem := make(chan struct{}, p.maxWorkers)
	var wg sync.WaitGroup

	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job Job) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				results[i] = Result{Index: i, Err: err}
				return
			}
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				results[i] = Result{Index: i, Err: ctx.Err()}
				return
			}
			defer func() { <-sem }()

			out, err := runJob(ctx, job)
			results[i] = Result{Index: i, Output: out, Err: err}
		}(i, job)
	}
	wg.Wait()
	return results
}

// runJob recovers a panicking job into an error result, so one
// misbehaving example cannot take down the whole batch.
func runJob(ctx context.Context, job Job) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panicked: %v", r)
		}
	}()
	return job(ctx)
}
